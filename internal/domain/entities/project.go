package entities

import "time"

// CostRange is an estimated project budget window
type CostRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// ComplexityDetails describes what a complexity tier implies
type ComplexityDetails struct {
	Timeline     string   `json:"timeline"`
	TeamSize     string   `json:"team_size"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
}

// ProjectParams are the raw parameters of a plan request
type ProjectParams struct {
	ProjectName   string `json:"project_name"`
	ProjectType   string `json:"project_type"`
	Complexity    string `json:"complexity"`
	TechStack     string `json:"tech_stack"`
	DeadlineWeeks int    `json:"deadline_weeks"`
	UserID        string `json:"user_id"`
}

// ProjectRequirement is the stored recommendation generated for a
// plan request. Read-only after creation.
type ProjectRequirement struct {
	ID                       string            `json:"id"`
	ProjectName              string            `json:"project_name"`
	ProjectType              string            `json:"project_type"`
	Complexity               string            `json:"complexity"`
	TechStack                string            `json:"tech_stack"`
	DeadlineWeeks            int               `json:"deadline_weeks"`
	SuggestedArchitecture    string            `json:"suggested_architecture"`
	ComplexityDetails        ComplexityDetails `json:"complexity_details"`
	Phases                   []string          `json:"phases"`
	Risks                    []string          `json:"risks"`
	EstimatedCostRange       CostRange         `json:"estimated_cost_range"`
	RecommendedTeamStructure []string          `json:"recommended_team_structure"`
	TextPlan                 string            `json:"text_plan"`
	PlanFilename             string            `json:"plan_filename"`
	UserID                   string            `json:"user_id"`
	CreatedAt                time.Time         `json:"created_at"`
}

// TemplateRequest records a served template lookup
type TemplateRequest struct {
	ID        string    `json:"id"`
	UseCase   string    `json:"use_case"`
	Templates []string  `json:"templates"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AdvancedTemplateRequest records a served template enhancement
type AdvancedTemplateRequest struct {
	ID               string    `json:"id"`
	BaseTemplate     string    `json:"base_template"`
	Style            string    `json:"style"`
	EnhancedTemplate string    `json:"enhanced_template"`
	UserID           string    `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// ProcessAnalysisInput are the parameters of an automation analysis
type ProcessAnalysisInput struct {
	ProcessName    string `json:"process_name"`
	PrimaryGoal    string `json:"primary_goal"`
	TriggerType    string `json:"trigger_type"`
	TriggerDetails string `json:"trigger_details"`
	SuccessOutcome string `json:"success_outcome"`
	CurrentSteps   string `json:"current_steps"`
	Stakeholders   string `json:"stakeholders"`
	Frequency      string `json:"frequency"`
	PainPoints     string `json:"pain_points"`
	UserID         string `json:"user_id"`
}

// ProcessOverview summarizes the analyzed process
type ProcessOverview struct {
	Name            string `json:"name"`
	PrimaryGoal     string `json:"primary_goal"`
	FocusArea       string `json:"focus_area"`
	TriggerType     string `json:"trigger_type"`
	TriggerDetails  string `json:"trigger_details"`
	SuccessCriteria string `json:"success_criteria"`
}

// AutomationStrategy is the recommended approach for a process
type AutomationStrategy struct {
	KeyRecommendations      []string `json:"key_recommendations"`
	SuccessMetrics          []string `json:"success_metrics"`
	ImplementationApproach  string   `json:"implementation_approach"`
	TechnicalConsiderations []string `json:"technical_considerations"`
	RecommendedTools        []string `json:"recommended_tools"`
}

// ProcessRiskAssessment lists the risks of automating a process
type ProcessRiskAssessment struct {
	TechnicalRisks       []string `json:"technical_risks"`
	BusinessRisks        []string `json:"business_risks"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}

// SuccessFramework describes how automation success is measured
type SuccessFramework struct {
	KPIs               []string `json:"kpis"`
	MonitoringApproach string   `json:"monitoring_approach"`
	ReviewSchedule     string   `json:"review_schedule"`
	OptimizationPlan   string   `json:"optimization_plan"`
}

// ProcessAnalysis is the stored automation analysis document
type ProcessAnalysis struct {
	ID              string                `json:"id"`
	ProcessOverview ProcessOverview       `json:"process_overview"`
	Strategy        AutomationStrategy    `json:"automation_strategy"`
	Phases          map[string][]string   `json:"detailed_implementation"`
	RiskAssessment  ProcessRiskAssessment `json:"risk_assessment"`
	Success         SuccessFramework      `json:"success_framework"`
	NextSteps       []string              `json:"next_steps"`
	CurrentSteps    string                `json:"current_steps"`
	Stakeholders    string                `json:"stakeholders"`
	Frequency       string                `json:"frequency"`
	PainPoints      string                `json:"pain_points"`
	UserID          string                `json:"user_id"`
	CreatedAt       time.Time             `json:"created_at"`
}
