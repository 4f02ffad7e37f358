package models

import (
	"time"
)

type ProjectRequirement struct {
	ID                       string `gorm:"type:uuid;primaryKey"`
	ProjectName              string `gorm:"type:varchar(255);not null"`
	ProjectType              string `gorm:"type:varchar(100);not null"`
	Complexity               string `gorm:"type:varchar(50);not null"`
	TechStack                string `gorm:"type:varchar(255)"`
	DeadlineWeeks            int
	SuggestedArchitecture    string `gorm:"type:varchar(255)"`
	ComplexityDetails        string `gorm:"type:jsonb;default:'{}'"`
	Phases                   string `gorm:"type:jsonb;default:'[]'"`
	Risks                    string `gorm:"type:jsonb;default:'[]'"`
	EstimatedCostRange       string `gorm:"type:jsonb;default:'{}'"`
	RecommendedTeamStructure string `gorm:"type:jsonb;default:'[]'"`
	TextPlan                 string `gorm:"type:text"`
	PlanFilename             string `gorm:"type:varchar(255)"`
	UserID                   string `gorm:"type:varchar(255);not null;index"`
	CreatedAt                time.Time `gorm:"index"`
}

type TemplateRequest struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UseCase   string `gorm:"type:varchar(100);not null"`
	Templates string `gorm:"type:jsonb;default:'[]'"`
	UserID    string `gorm:"type:varchar(255);index"`
	CreatedAt time.Time
}

type AdvancedTemplateRequest struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	BaseTemplate     string `gorm:"type:varchar(100);not null"`
	Style            string `gorm:"type:varchar(100);not null"`
	EnhancedTemplate string `gorm:"type:text"`
	UserID           string `gorm:"type:varchar(255);index"`
	CreatedAt        time.Time
}

type ProcessAnalysis struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	ProcessOverview string `gorm:"type:jsonb;default:'{}'"`
	Strategy        string `gorm:"type:jsonb;default:'{}'"`
	Phases          string `gorm:"type:jsonb;default:'{}'"`
	RiskAssessment  string `gorm:"type:jsonb;default:'{}'"`
	Success         string `gorm:"type:jsonb;default:'{}'"`
	NextSteps       string `gorm:"type:jsonb;default:'[]'"`
	CurrentSteps    string `gorm:"type:text"`
	Stakeholders    string `gorm:"type:text"`
	Frequency       string `gorm:"type:varchar(100)"`
	PainPoints      string `gorm:"type:text"`
	UserID          string `gorm:"type:varchar(255);not null;index"`
	CreatedAt       time.Time
}

func (ProcessAnalysis) TableName() string {
	return "process_analyses"
}
