package models

import (
	"time"

	"gorm.io/datatypes"
)

// Proficiency levels, ordered basic < intermediate < advanced.
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Requirement importance tiers.
const (
	ImportanceCritical  = "critical"
	ImportancePreferred = "preferred"
)

// Gap types.
const (
	GapMissing  = "missing"
	GapLevelGap = "level_gap"
)

// Skill is a single skill found in a resume.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// Requirement is a skill demanded by a job description. Level is optional
// and treated as "basic" when empty.
type Requirement struct {
	Name       string `json:"name"`
	Importance string `json:"importance"`
	Category   string `json:"category"`
	Level      string `json:"level,omitempty"`
}

// Gap is a required skill that is either missing from the resume or present
// at an insufficient level.
type Gap struct {
	Skill        string `json:"skill"`
	Importance   string `json:"importance"`
	Category     string `json:"category"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	CurrentLevel string `json:"current_level,omitempty"`
	TargetLevel  string `json:"target_level,omitempty"`
}

// LevelGap describes how far a current level falls short of a required one.
type LevelGap struct {
	TargetLevel string `json:"target_level"`
	GapSize     int    `json:"gap_size"`
}

// Resource is a learning resource attached to a task.
type Resource struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	Platform   string `json:"platform"`
	Priority   string `json:"priority"`
	Duration   string `json:"duration,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Channel    string `json:"channel,omitempty"`
}

// Task is one remediation unit in an action plan, mapped 1:1 from a Gap.
type Task struct {
	ID             string     `json:"id"`
	Skill          string     `json:"skill"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	EstimatedHours int        `json:"estimated_hours"`
	Timeline       string     `json:"timeline"`
	Priority       string     `json:"priority"`
	CurrentLevel   string     `json:"current_level,omitempty"`
	TargetLevel    string     `json:"target_level"`
	Resources      []Resource `json:"resources"`
	Completed      bool       `json:"completed"`
}

// SkillCoverage counts how the resume covers the job requirements.
type SkillCoverage struct {
	ResumeSkills   int `json:"resume_skills"`
	RequiredSkills int `json:"required_skills"`
	MatchingSkills int `json:"matching_skills"`
}

// Summary is the narrative part of an analysis.
type Summary struct {
	ReadinessLevel  string        `json:"readiness_level"`
	StrongestAreas  []string      `json:"strongest_areas"`
	WeakestAreas    []string      `json:"weakest_areas"`
	Recommendations []string      `json:"recommendations"`
	SkillCoverage   SkillCoverage `json:"skill_coverage"`
}

// AnalysisResult bundles everything the gap analyzer produces for one
// resume/job pair.
type AnalysisResult struct {
	ExtractedSkills []Skill       `json:"extracted_skills"`
	RequiredSkills  []Requirement `json:"required_skills"`
	SkillGaps       []Gap         `json:"skill_gaps"`
	ReadinessScore  float64       `json:"readiness_score"`
	ExperienceYears int           `json:"experience_years"`
	EducationLevel  string        `json:"education_level"`
	Summary         Summary       `json:"summary"`
}

// PlanSummary is the roll-up attached to an action plan.
type PlanSummary struct {
	TotalTasks        int      `json:"total_tasks"`
	CriticalTasks     int      `json:"critical_tasks"`
	HighPriorityTasks int      `json:"high_priority_tasks"`
	TotalHours        int      `json:"total_hours"`
	Timeline          string   `json:"timeline"`
	FocusAreas        []string `json:"focus_areas"`
	Recommendations   []string `json:"recommendations"`
}

// ActionPlanData is a freshly generated plan before it is persisted.
type ActionPlanData struct {
	AnalysisID            uint        `json:"analysis_id"`
	Tasks                 []Task      `json:"tasks"`
	TotalHours            int         `json:"total_hours"`
	Timeline              string      `json:"timeline"`
	Summary               PlanSummary `json:"summary"`
	CompletedTasks        []string    `json:"completed_tasks"`
	UpdatedReadinessScore *float64    `json:"updated_readiness_score"`
}

// Analysis is the persisted record of one resume/job comparison. It is never
// mutated after creation.
type Analysis struct {
	ID              uint                             `json:"id" gorm:"primaryKey"`
	ResumeText      string                           `json:"resume_text" gorm:"type:text"`
	JobDescription  string                           `json:"job_description" gorm:"type:text"`
	ExtractedSkills datatypes.JSONSlice[Skill]       `json:"extracted_skills"`
	RequiredSkills  datatypes.JSONSlice[Requirement] `json:"required_skills"`
	SkillGaps       datatypes.JSONSlice[Gap]         `json:"skill_gaps"`
	ReadinessScore  float64                          `json:"readiness_score"`
	CreatedAt       time.Time                        `json:"created_at"`
}

// ActionPlan is the persisted plan for an analysis. CompletedTasks is user
// progress and survives plan regeneration.
type ActionPlan struct {
	ID                    uint                        `json:"id" gorm:"primaryKey"`
	AnalysisID            uint                        `json:"analysis_id" gorm:"index"`
	Tasks                 datatypes.JSONSlice[Task]   `json:"tasks"`
	CompletedTasks        datatypes.JSONSlice[string] `json:"completed_tasks"`
	UpdatedReadinessScore *float64                    `json:"updated_readiness_score"`
	CreatedAt             time.Time                   `json:"created_at"`
}
