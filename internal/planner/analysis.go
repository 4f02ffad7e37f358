package planner

import (
	"gdpr-store.backend/internal/domain/entities"
)

type goalStrategy struct {
	focus           string
	metrics         []string
	recommendations []string
}

var goalStrategies = map[string]goalStrategy{
	"save_time": {
		focus:   "Time optimization and parallel processing",
		metrics: []string{"Time saved per execution", "Processing speed improvement", "Manual hours reduced"},
		recommendations: []string{
			"Implement parallel processing where possible",
			"Use batch operations for bulk tasks",
			"Cache frequently accessed data",
			"Automate repetitive decision points",
		},
	},
	"reduce_errors": {
		focus:   "Error prevention and validation",
		metrics: []string{"Error rate reduction", "Data accuracy improvement", "Exception handling coverage"},
		recommendations: []string{
			"Add comprehensive input validation",
			"Implement data quality checks",
			"Create error handling workflows",
			"Add confirmation steps for critical actions",
		},
	},
	"improve_compliance": {
		focus:   "Audit trails and regulatory adherence",
		metrics: []string{"Audit trail completeness", "Compliance score", "Documentation coverage"},
		recommendations: []string{
			"Log all process steps with timestamps",
			"Implement approval workflows",
			"Create compliance checkpoints",
			"Generate audit reports automatically",
		},
	},
	"enhance_visibility": {
		focus:   "Monitoring and reporting",
		metrics: []string{"Process visibility score", "Reporting accuracy", "Real-time monitoring coverage"},
		recommendations: []string{
			"Create real-time dashboards",
			"Implement status notifications",
			"Add progress tracking",
			"Generate automated reports",
		},
	},
	"standardize_process": {
		focus:   "Consistency and best practices",
		metrics: []string{"Process consistency score", "Standard adherence rate", "Variation reduction"},
		recommendations: []string{
			"Define clear process templates",
			"Implement standard workflows",
			"Add quality gates",
			"Create process documentation",
		},
	},
}

type triggerImplementation struct {
	setup          string
	considerations []string
	tools          []string
}

var triggerImplementations = map[string]triggerImplementation{
	"email": {
		setup:          "Email monitoring with filters and parsing",
		considerations: []string{"Email parsing accuracy", "Attachment handling", "Spam filtering"},
		tools:          []string{"Email APIs", "Natural language processing", "File parsers"},
	},
	"form_submission": {
		setup:          "Webhook integration with form platforms",
		considerations: []string{"Data validation", "Form field mapping", "Error handling"},
		tools:          []string{"Webhook handlers", "Form APIs", "Data validators"},
	},
	"system_record": {
		setup:          "Database triggers or API webhooks",
		considerations: []string{"Real-time vs batch processing", "Data consistency", "System integration"},
		tools:          []string{"Database triggers", "API integrations", "Event streaming"},
	},
	"schedule": {
		setup:          "Cron jobs or scheduled tasks",
		considerations: []string{"Timing optimization", "Resource availability", "Failure recovery"},
		tools:          []string{"Task schedulers", "Monitoring systems", "Retry mechanisms"},
	},
	"manual": {
		setup:          "User interface with trigger buttons",
		considerations: []string{"User permissions", "Input validation", "Progress feedback"},
		tools:          []string{"Web interfaces", "Mobile apps", "Notification systems"},
	},
}

var implementationPhases = map[string][]string{
	"phase_1_discovery": {
		"Map current process flow in detail",
		"Identify all stakeholders and their roles",
		"Document current pain points and bottlenecks",
		"Analyze data flow and dependencies",
	},
	"phase_2_design": {
		"Create automated workflow diagram",
		"Define error handling scenarios",
		"Design user interfaces and notifications",
		"Plan integration points with existing systems",
	},
	"phase_3_development": {
		"Build core automation logic",
		"Implement trigger mechanisms",
		"Create monitoring and logging",
		"Develop user interfaces",
	},
	"phase_4_testing": {
		"Unit test individual components",
		"Integration test with existing systems",
		"User acceptance testing",
		"Performance and load testing",
	},
	"phase_5_deployment": {
		"Deploy to production environment",
		"Train users on new process",
		"Monitor initial performance",
		"Gather feedback and iterate",
	},
}

// AnalyzeProcess assembles the automation analysis for a process. Goal
// and trigger lookups fall back to save_time and manual.
func AnalyzeProcess(input entities.ProcessAnalysisInput) *entities.ProcessAnalysis {
	goal, ok := goalStrategies[input.PrimaryGoal]
	if !ok {
		goal = goalStrategies["save_time"]
	}
	trigger, ok := triggerImplementations[input.TriggerType]
	if !ok {
		trigger = triggerImplementations["manual"]
	}

	return &entities.ProcessAnalysis{
		ProcessOverview: entities.ProcessOverview{
			Name:            input.ProcessName,
			PrimaryGoal:     input.PrimaryGoal,
			FocusArea:       goal.focus,
			TriggerType:     input.TriggerType,
			TriggerDetails:  input.TriggerDetails,
			SuccessCriteria: input.SuccessOutcome,
		},
		Strategy: entities.AutomationStrategy{
			KeyRecommendations:      goal.recommendations,
			SuccessMetrics:          goal.metrics,
			ImplementationApproach:  trigger.setup,
			TechnicalConsiderations: trigger.considerations,
			RecommendedTools:        trigger.tools,
		},
		Phases: implementationPhases,
		RiskAssessment: entities.ProcessRiskAssessment{
			TechnicalRisks: []string{
				"System integration complexity",
				"Data quality and validation issues",
				"Performance bottlenecks",
				"Security vulnerabilities",
			},
			BusinessRisks: []string{
				"User adoption challenges",
				"Process disruption during transition",
				"Compliance and regulatory issues",
				"Change management resistance",
			},
			MitigationStrategies: []string{
				"Implement comprehensive testing",
				"Create rollback procedures",
				"Provide thorough user training",
				"Establish monitoring and alerting",
			},
		},
		Success: entities.SuccessFramework{
			KPIs:               goal.metrics,
			MonitoringApproach: "Real-time dashboards with automated alerts",
			ReviewSchedule:     "Weekly performance reviews for first month, then monthly",
			OptimizationPlan:   "Continuous improvement based on user feedback and performance data",
		},
		NextSteps: []string{
			"Conduct detailed process mapping session with stakeholders",
			"Create technical specification document",
			"Estimate development timeline and resources",
			"Set up development environment and tools",
			"Begin Phase 1: Discovery and documentation",
		},
		CurrentSteps: input.CurrentSteps,
		Stakeholders: input.Stakeholders,
		Frequency:    input.Frequency,
		PainPoints:   input.PainPoints,
		UserID:       input.UserID,
	}
}
