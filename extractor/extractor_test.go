package extractor

import (
	"testing"

	"github.com/whenkunda-blip/c-coach/models"
)

func findSkill(skills []models.Skill, name string) *models.Skill {
	for i := range skills {
		if skills[i].Name == name {
			return &skills[i]
		}
	}
	return nil
}

func findRequirement(reqs []models.Requirement, name string) *models.Requirement {
	for i := range reqs {
		if reqs[i].Name == name {
			return &reqs[i]
		}
	}
	return nil
}

func TestSkillsFromResume(t *testing.T) {
	resume := `
	Python developer with strong Django background.
	Built dashboards with React and deployed on AWS using Docker.
	`

	skills := SkillsFromResume(resume)
	if len(skills) == 0 {
		t.Fatal("Expected skills to be extracted, got none")
	}

	for _, name := range []string{"Python", "Django", "React", "AWS", "Docker"} {
		if findSkill(skills, name) == nil {
			t.Errorf("Expected skill %s to be extracted", name)
		}
	}

	python := findSkill(skills, "Python")
	if python.Category != "Programming" {
		t.Errorf("Expected Python category Programming, got %s", python.Category)
	}
}

func TestSkillsFromResumeWordBoundaries(t *testing.T) {
	// "Golang" must not register the taxonomy skill "Go".
	skills := SkillsFromResume("Experienced Golang developer")
	if findSkill(skills, "Go") != nil {
		t.Error("Skill Go matched inside the word Golang")
	}

	skills = SkillsFromResume("I write Go services")
	if findSkill(skills, "Go") == nil {
		t.Error("Expected standalone Go to match")
	}

	// "JavaScript" must not register "Java".
	skills = SkillsFromResume("JavaScript specialist")
	if findSkill(skills, "Java") != nil {
		t.Error("Skill Java matched inside the word JavaScript")
	}
}

func TestSkillsFromResumeLevels(t *testing.T) {
	cases := []struct {
		name   string
		resume string
		level  string
	}{
		{"senior context", "Senior Python engineer leading a platform team", "advanced"},
		{"mid context", "Experienced with 3-5 years using Python daily", "intermediate"},
		{"entry context", "Junior developer learning Python", "basic"},
		{"no context", "Python", "basic"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skills := SkillsFromResume(tc.resume)
			python := findSkill(skills, "Python")
			if python == nil {
				t.Fatal("Expected Python to be extracted")
			}
			if python.Level != tc.level {
				t.Errorf("Expected level %s, got %s", tc.level, python.Level)
			}
		})
	}
}

func TestSkillsFromResumeEmpty(t *testing.T) {
	skills := SkillsFromResume("")
	if skills == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(skills) != 0 {
		t.Errorf("Expected no skills from empty text, got %d", len(skills))
	}
}

func TestRequirementsFromJob(t *testing.T) {
	reqs := RequirementsFromJob("We need a backend engineer. Python is required and Django is essential.")
	if len(reqs) == 0 {
		t.Fatal("Expected requirements to be extracted, got none")
	}

	python := findRequirement(reqs, "Python")
	if python == nil {
		t.Fatal("Expected Python requirement")
	}
	if python.Importance != models.ImportanceCritical {
		t.Errorf("Expected Python to be critical, got %s", python.Importance)
	}

	django := findRequirement(reqs, "Django")
	if django == nil {
		t.Fatal("Expected Django requirement")
	}
	if django.Importance != models.ImportanceCritical {
		t.Errorf("Expected Django to be critical, got %s", django.Importance)
	}

	// Keyword scanning is windowed around the skill mention, so preferred
	// phrasing is checked on its own input to keep the windows clean.
	reqs = RequirementsFromJob("React is nice to have for this position.")
	react := findRequirement(reqs, "React")
	if react == nil {
		t.Fatal("Expected React requirement")
	}
	if react.Importance != models.ImportancePreferred {
		t.Errorf("Expected React to be preferred, got %s", react.Importance)
	}
}

func TestRequirementsFromJobDefaultImportance(t *testing.T) {
	reqs := RequirementsFromJob("The team uses Docker.")
	docker := findRequirement(reqs, "Docker")
	if docker == nil {
		t.Fatal("Expected Docker requirement")
	}
	if docker.Importance != models.ImportancePreferred {
		t.Errorf("Expected default importance preferred, got %s", docker.Importance)
	}
}

func TestRequirementsFromJobEmpty(t *testing.T) {
	reqs := RequirementsFromJob("")
	if reqs == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(reqs) != 0 {
		t.Errorf("Expected no requirements from empty text, got %d", len(reqs))
	}
}

func TestExperienceYears(t *testing.T) {
	cases := []struct {
		text  string
		years int
	}{
		{"5 years of experience", 5},
		{"3+ years in software development", 3},
		{"No experience mentioned", 0},
		{"experience of 7 years with databases", 7},
		{"10+ years of experience building services", 10},
		{"", 0},
	}

	for _, tc := range cases {
		if got := ExperienceYears(tc.text); got != tc.years {
			t.Errorf("ExperienceYears(%q) = %d, want %d", tc.text, got, tc.years)
		}
	}
}

func TestEducationLevel(t *testing.T) {
	cases := []struct {
		text  string
		level string
	}{
		{"PhD in Computer Science", "PhD"},
		{"Masters degree in Engineering", "Masters"},
		{"MBA from a business school", "Masters"},
		{"Bachelors of Science", "Bachelors"},
		{"BS in Mathematics", "Bachelors"},
		{"Associate degree in IT", "Associate"},
		{"High school diploma", "High School"},
		{"No education listed", "Unknown"},
		{"", "Unknown"},
	}

	for _, tc := range cases {
		if got := EducationLevel(tc.text); got != tc.level {
			t.Errorf("EducationLevel(%q) = %s, want %s", tc.text, got, tc.level)
		}
	}
}

func TestEducationLevelPriority(t *testing.T) {
	// PhD outranks Masters even when both appear.
	text := "Masters in Physics followed by a PhD in Astronomy"
	if got := EducationLevel(text); got != "PhD" {
		t.Errorf("Expected PhD to win over Masters, got %s", got)
	}
}
