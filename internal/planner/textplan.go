package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gdpr-store.backend/internal/domain/entities"
)

// GenerateTextPlan renders the downloadable plan document for a
// collected requirement. The generation time is passed in so the
// output is reproducible.
func GenerateTextPlan(req *entities.ProjectRequirement, generatedAt time.Time) string {
	weeks := req.DeadlineWeeks
	phaseDuration := ceilDiv(weeks, len(req.Phases))
	coreEnd := int(math.Ceil(float64(weeks) * 0.4))
	featureEnd := int(math.Ceil(float64(weeks) * 0.8))

	var b strings.Builder

	b.WriteString("                        PROJECT DEVELOPMENT PLAN & GUIDELINES\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", req.ProjectName)
	fmt.Fprintf(&b, "Project Type: %s\n", strings.ToUpper(req.ProjectType))
	fmt.Fprintf(&b, "Complexity Level: %s\n", strings.ToUpper(req.Complexity))
	fmt.Fprintf(&b, "Generated Date: %s\n", generatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Estimated Timeline: %s\n", req.ComplexityDetails.Timeline)
	fmt.Fprintf(&b, "Budget Range: $%s - $%s %s\n\n",
		formatMoney(req.EstimatedCostRange.Min),
		formatMoney(req.EstimatedCostRange.Max),
		req.EstimatedCostRange.Currency)

	b.WriteString("                                EXECUTIVE SUMMARY\n\n")
	fmt.Fprintf(&b, "This document provides comprehensive guidelines and a detailed implementation plan\nfor the %s project. The project is classified as a %s\ncomplexity %s application using %s technology stack.\n\n",
		req.ProjectName, req.Complexity, req.ProjectType, req.TechStack)
	b.WriteString("Key Success Factors:\n")
	writeBullets(&b,
		"Clear project scope and requirements definition",
		"Proper team structure and role allocation",
		"Risk mitigation strategies implementation",
		"Adherence to best practices and coding standards",
		"Regular progress monitoring and quality assurance")

	b.WriteString("\n                              TECHNICAL ARCHITECTURE\n\n")
	fmt.Fprintf(&b, "Recommended Architecture:\n%s\n\n", req.SuggestedArchitecture)
	fmt.Fprintf(&b, "Technology Stack:\n%s\n\n", req.TechStack)
	b.WriteString("Key Architectural Principles:\n")
	writeBullets(&b,
		"Scalability: Design for future growth and increased load",
		"Maintainability: Write clean, documented, and testable code",
		"Security: Implement security best practices from day one",
		"Performance: Optimize for speed and efficiency",
		"Reliability: Build robust error handling and recovery mechanisms")
	b.WriteString("\nTechnical Requirements:\n")
	writeBullets(&b, req.ComplexityDetails.Technologies...)

	b.WriteString("\n                              DEVELOPMENT PHASES\n")
	for i, phase := range req.Phases {
		fmt.Fprintf(&b, "\nPHASE %d: %s\n%s\n", i+1, phase, strings.Repeat("-", 50))
		fmt.Fprintf(&b, "Duration: %d weeks\n", phaseDuration)
		b.WriteString("Key Activities:\n")
		writeBullets(&b,
			"Detailed planning and requirement analysis",
			"Design and architecture documentation",
			"Implementation with code reviews",
			"Testing and quality assurance",
			"Documentation and knowledge transfer")
	}

	b.WriteString("\n                                TEAM STRUCTURE\n\n")
	fmt.Fprintf(&b, "Recommended Team Size: %s\n\n", req.ComplexityDetails.TeamSize)
	b.WriteString("Team Composition:\n")
	writeBullets(&b, req.RecommendedTeamStructure...)
	b.WriteString("\nTeam Responsibilities:\n")
	writeBullets(&b,
		"Project Manager: Overall coordination, timeline management, stakeholder communication",
		"Lead Developer: Technical leadership, architecture decisions, code reviews",
		"Developers: Feature implementation, unit testing, documentation",
		"UI/UX Designer: User interface design, user experience optimization",
		"QA Tester: Test planning, execution, bug reporting and tracking",
		"DevOps Engineer: Infrastructure setup, deployment automation, monitoring")

	b.WriteString("\n                                RISK ASSESSMENT\n\n")
	b.WriteString("Identified Risks:\n")
	writeBullets(&b, req.Risks...)
	b.WriteString("\nRisk Mitigation Strategies:\n")
	writeBullets(&b,
		"Conduct regular risk assessment meetings",
		"Implement comprehensive testing at all levels",
		"Maintain clear communication channels",
		"Create detailed documentation and knowledge sharing",
		"Establish backup plans for critical components",
		"Monitor project progress against milestones")

	b.WriteString("\n                              QUALITY GUIDELINES\n\n")
	b.WriteString("Code Quality Standards:\n")
	writeBullets(&b,
		"Follow language-specific coding conventions",
		"Implement comprehensive unit and integration tests",
		"Maintain minimum 80% code coverage",
		"Conduct peer code reviews for all changes",
		"Use automated linting and formatting tools",
		"Document all public APIs and complex logic")
	b.WriteString("\nTesting Strategy:\n")
	writeBullets(&b,
		"Unit Testing: Test individual components and functions",
		"Integration Testing: Test component interactions",
		"System Testing: Test complete system functionality",
		"User Acceptance Testing: Validate against requirements",
		"Performance Testing: Ensure scalability and speed",
		"Security Testing: Identify and fix vulnerabilities")

	b.WriteString("\n                              PROJECT MILESTONES\n\n")
	b.WriteString("Week 1-2: Project Setup & Planning\n")
	writeBullets(&b,
		"Team onboarding and role assignment",
		"Development environment setup",
		"Project structure and repository creation",
		"Initial architecture documentation")
	fmt.Fprintf(&b, "\nWeek 3-%d: Core Development\n", coreEnd)
	writeBullets(&b,
		"Implement core functionality",
		"Set up basic infrastructure",
		"Create initial user interfaces",
		"Establish testing framework")
	fmt.Fprintf(&b, "\nWeek %d-%d: Feature Development\n", coreEnd+1, featureEnd)
	writeBullets(&b,
		"Implement advanced features",
		"Integration with external services",
		"Performance optimization",
		"Security implementation")
	fmt.Fprintf(&b, "\nWeek %d-%d: Testing & Deployment\n", featureEnd+1, weeks)
	writeBullets(&b,
		"Comprehensive testing and bug fixes",
		"Performance tuning and optimization",
		"Production deployment preparation",
		"Documentation completion and handover")

	b.WriteString("\n                              SUCCESS METRICS\n\n")
	b.WriteString("Technical Metrics:\n")
	writeBullets(&b,
		"Code quality score (>8/10)",
		"Test coverage (>80%)",
		"Performance benchmarks met",
		"Security vulnerabilities (0 critical, <5 medium)",
		"Documentation completeness (100%)")
	b.WriteString("\nBusiness Metrics:\n")
	writeBullets(&b,
		"On-time delivery",
		"Budget adherence",
		"Stakeholder satisfaction",
		"User adoption rate",
		"System uptime and reliability")

	b.WriteString("\n                              COMMUNICATION PLAN\n\n")
	b.WriteString("Regular Meetings:\n")
	writeBullets(&b,
		"Daily standups (15 minutes)",
		"Weekly progress reviews (1 hour)",
		"Bi-weekly stakeholder updates (30 minutes)",
		"Monthly retrospectives (1 hour)")
	b.WriteString("\nReporting:\n")
	writeBullets(&b,
		"Weekly status reports",
		"Monthly budget and timeline updates",
		"Risk assessment reports",
		"Quality metrics dashboard")

	b.WriteString("\n                              DEPLOYMENT STRATEGY\n\n")
	b.WriteString("Environment Strategy:\n")
	writeBullets(&b,
		"Development: Local development and unit testing",
		"Staging: Integration testing and user acceptance testing",
		"Production: Live system with monitoring and backup")
	b.WriteString("\nDeployment Process:\n")
	writeBullets(&b,
		"Automated CI/CD pipeline",
		"Blue-green deployment for zero downtime",
		"Rollback procedures for quick recovery",
		"Monitoring and alerting setup",
		"Performance and security monitoring")

	b.WriteString("\n                              MAINTENANCE PLAN\n\n")
	b.WriteString("Post-Launch Activities:\n")
	writeBullets(&b,
		"Monitor system performance and user feedback",
		"Regular security updates and patches",
		"Feature enhancements based on user needs",
		"Performance optimization and scaling",
		"Documentation updates and team training")
	b.WriteString("\nLong-term Support:\n")
	writeBullets(&b,
		"Quarterly system health checks",
		"Annual technology stack reviews",
		"Continuous improvement implementation",
		"Knowledge transfer and team development")

	b.WriteString("\n                                  CONCLUSION\n\n")
	fmt.Fprintf(&b, "This comprehensive plan provides the foundation for successful delivery of the\n%s project. Following these guidelines will ensure high-quality\ndeliverables, efficient team collaboration, and successful project outcomes.\n\n",
		req.ProjectName)
	b.WriteString("Key Success Factors:\n")
	writeBullets(&b,
		"Adherence to the defined timeline and milestones",
		"Consistent application of quality standards",
		"Proactive risk management and mitigation",
		"Regular communication and stakeholder engagement",
		"Continuous monitoring and improvement")
	b.WriteString("\nFor questions or clarifications, please contact the project team lead.\n\n")
	b.WriteString("                              END OF DOCUMENT")

	return b.String()
}

func writeBullets(b *strings.Builder, items ...string) {
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// formatMoney renders an integer amount with thousands separators
func formatMoney(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
