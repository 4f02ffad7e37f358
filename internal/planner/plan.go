// Package planner holds the pure generators behind project plans,
// prompt templates, automation analyses and compliance reports. All
// lookups fall back to a default bucket instead of failing.
package planner

import (
	"math"
	"regexp"

	"gdpr-store.backend/internal/domain/entities"
)

var architectures = map[string]string{
	"webapp":     "SPA with component-based architecture and state management",
	"api":        "REST or GraphQL service with modular monolith design",
	"mobile":     "Cross-platform mobile app with native performance optimization",
	"desktop":    "Electron or native desktop application with system integration",
	"ml":         "ML pipeline with model registry, feature store, and MLOps",
	"cli":        "Command-line tool with modular commands and plugin architecture",
	"service":    "Microservice or serverless function design with event-driven architecture",
	"ecommerce":  "E-commerce platform with payment integration and inventory management",
	"cms":        "Content Management System with headless architecture",
	"dashboard":  "Analytics dashboard with real-time data visualization",
	"game":       "Game development with physics engine and multiplayer support",
	"iot":        "IoT system with device management and real-time data processing",
	"blockchain": "Blockchain application with smart contracts and DeFi integration",
	"social":     "Social media platform with real-time messaging and content feeds",
}

const defaultArchitecture = "General layered architecture"

var complexityDetails = map[string]entities.ComplexityDetails{
	"simple": {
		Timeline:     "2-4 weeks",
		TeamSize:     "1-2 developers",
		Features:     []string{"Basic CRUD operations", "Simple UI", "Basic authentication"},
		Technologies: []string{"Single framework", "Simple database", "Basic deployment"},
	},
	"medium": {
		Timeline:     "1-3 months",
		TeamSize:     "2-4 developers",
		Features:     []string{"Advanced features", "User management", "API integrations", "Responsive design"},
		Technologies: []string{"Multiple frameworks", "Database optimization", "CI/CD pipeline"},
	},
	"high": {
		Timeline:     "3-6 months",
		TeamSize:     "4-8 developers",
		Features:     []string{"Complex business logic", "Advanced security", "Performance optimization", "Analytics"},
		Technologies: []string{"Microservices", "Multiple databases", "Advanced deployment", "Monitoring"},
	},
	"enterprise": {
		Timeline:     "6-12 months",
		TeamSize:     "8+ developers",
		Features:     []string{"Enterprise integrations", "Advanced security", "Scalability", "Compliance"},
		Technologies: []string{"Distributed systems", "Enterprise tools", "Advanced monitoring", "Multi-region deployment"},
	},
}

var projectPhases = map[string][]string{
	"webapp": {
		"Requirements & UX/UI Design",
		"Frontend Development",
		"Backend API Development",
		"Integration & Testing",
		"Deployment & Optimization",
	},
	"mobile": {
		"Platform Strategy & Design",
		"Native/Cross-platform Development",
		"API Integration",
		"Testing on Multiple Devices",
		"App Store Deployment",
	},
	"api": {
		"API Design & Documentation",
		"Core Development",
		"Security Implementation",
		"Performance Testing",
		"Production Deployment",
	},
	"ml": {
		"Data Collection & Preprocessing",
		"Model Development & Training",
		"Model Validation & Testing",
		"MLOps Pipeline Setup",
		"Production Deployment & Monitoring",
	},
	"default": {
		"Requirement gathering & scoping",
		"Architecture & design",
		"Implementation & testing",
		"Deployment & monitoring",
	},
}

var projectRisks = map[string][]string{
	"webapp":    {"Browser compatibility", "Performance bottlenecks", "Security vulnerabilities", "SEO challenges"},
	"mobile":    {"Platform fragmentation", "App store approval", "Device compatibility", "Performance on older devices"},
	"api":       {"Rate limiting issues", "Security breaches", "Scalability problems", "Breaking changes"},
	"ml":        {"Data quality issues", "Model drift", "Computational costs", "Regulatory compliance"},
	"ecommerce": {"Payment security", "Inventory management", "Scalability during sales", "Fraud prevention"},
	"default":   {"Scope creep", "Tight deadlines", "Integration challenges", "Resource constraints"},
}

var baseCosts = map[string]entities.CostRange{
	"simple":     {Min: 5000, Max: 15000},
	"medium":     {Min: 15000, Max: 50000},
	"high":       {Min: 50000, Max: 150000},
	"enterprise": {Min: 150000, Max: 500000},
}

var teamStructures = map[string]map[string][]string{
	"webapp": {
		"simple":     {"Frontend Developer", "Backend Developer"},
		"medium":     {"Frontend Developer", "Backend Developer", "UI/UX Designer", "QA Tester"},
		"high":       {"Senior Frontend Developer", "Senior Backend Developer", "UI/UX Designer", "DevOps Engineer", "QA Tester", "Project Manager"},
		"enterprise": {"Lead Frontend Developer", "Senior Backend Developer", "UI/UX Designer", "DevOps Engineer", "Security Specialist", "QA Team Lead", "Project Manager", "Product Owner"},
	},
	"mobile": {
		"simple":     {"Mobile Developer"},
		"medium":     {"iOS Developer", "Android Developer", "UI/UX Designer"},
		"high":       {"Senior Mobile Developer", "Backend Developer", "UI/UX Designer", "QA Tester", "DevOps Engineer"},
		"enterprise": {"Lead Mobile Developer", "iOS Specialist", "Android Specialist", "Backend Team", "UI/UX Team", "QA Team", "DevOps Team", "Project Manager"},
	},
	"api": {
		"simple":     {"Backend Developer"},
		"medium":     {"Senior Backend Developer", "Database Specialist"},
		"high":       {"Lead Backend Developer", "Database Architect", "DevOps Engineer", "Security Specialist"},
		"enterprise": {"Backend Team Lead", "Microservices Architects", "Database Team", "DevOps Team", "Security Team", "API Documentation Specialist"},
	},
	"default": {
		"simple":     {"Full-stack Developer"},
		"medium":     {"Frontend Developer", "Backend Developer", "Designer"},
		"high":       {"Senior Developers", "Architect", "DevOps Engineer", "QA Tester"},
		"enterprise": {"Development Team", "Architecture Team", "DevOps Team", "QA Team", "Project Management"},
	},
}

var planFilenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// CalculateCostRange scales the complexity base budget by the deadline.
// The multiplier is weeks/12 clamped to [0.8, 2.0]; unknown complexity
// falls back to medium.
func CalculateCostRange(complexity string, weeks int) entities.CostRange {
	base, ok := baseCosts[complexity]
	if !ok {
		base = baseCosts["medium"]
	}
	multiplier := math.Max(0.8, math.Min(2.0, float64(weeks)/12))
	return entities.CostRange{
		Min:      int(math.Round(float64(base.Min) * multiplier)),
		Max:      int(math.Round(float64(base.Max) * multiplier)),
		Currency: "USD",
	}
}

// TeamStructure resolves the recommended roles for a project type and
// complexity, falling back to the default type and medium tier.
func TeamStructure(projectType, complexity string) []string {
	teams, ok := teamStructures[projectType]
	if !ok {
		teams = teamStructures["default"]
	}
	team, ok := teams[complexity]
	if !ok {
		team = teams["medium"]
	}
	return team
}

// PlanFilename derives the download filename from the project name
func PlanFilename(projectName string) string {
	return planFilenameSanitizer.ReplaceAllString(projectName, "_") + "_Project_Plan.txt"
}

// CollectRequirements assembles the full project recommendation for the
// given parameters. The result is not yet persisted; the caller fills in
// user and storage fields.
func CollectRequirements(params entities.ProjectParams) *entities.ProjectRequirement {
	architecture, ok := architectures[params.ProjectType]
	if !ok {
		architecture = defaultArchitecture
	}
	details, ok := complexityDetails[params.Complexity]
	if !ok {
		details = complexityDetails["medium"]
	}
	phases, ok := projectPhases[params.ProjectType]
	if !ok {
		phases = projectPhases["default"]
	}
	risks, ok := projectRisks[params.ProjectType]
	if !ok {
		risks = projectRisks["default"]
	}

	req := &entities.ProjectRequirement{
		ProjectName:              params.ProjectName,
		ProjectType:              params.ProjectType,
		Complexity:               params.Complexity,
		TechStack:                params.TechStack,
		DeadlineWeeks:            params.DeadlineWeeks,
		SuggestedArchitecture:    architecture,
		ComplexityDetails:        details,
		Phases:                   phases,
		Risks:                    risks,
		EstimatedCostRange:       CalculateCostRange(params.Complexity, params.DeadlineWeeks),
		RecommendedTeamStructure: TeamStructure(params.ProjectType, params.Complexity),
		PlanFilename:             PlanFilename(params.ProjectName),
		UserID:                   params.UserID,
	}
	return req
}
