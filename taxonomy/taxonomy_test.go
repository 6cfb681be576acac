package taxonomy

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Static tables failed validation: %v", err)
	}
}

func TestValidateCatchesBrokenTemplate(t *testing.T) {
	TaskTemplates["BrokenSkill"] = map[string]TaskTemplate{
		"beginner": {Title: "Broken", EstimatedHours: 0, Timeline: "Week 1"},
	}
	defer delete(TaskTemplates, "BrokenSkill")

	if err := Validate(); err == nil {
		t.Error("Expected validation error for zero-hour template")
	}
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		skill    string
		category string
	}{
		{"Python", "Programming"},
		{"React", "Web Development"},
		{"AWS", "Cloud & DevOps"},
		{"Leadership", "Soft Skills"},
		{"NotARealSkill", "Other"},
	}

	for _, tc := range cases {
		if got := CategoryOf(tc.skill); got != tc.category {
			t.Errorf("CategoryOf(%s) = %s, want %s", tc.skill, got, tc.category)
		}
	}
}

func TestPatternWordBoundaries(t *testing.T) {
	goPattern := Pattern("Go")
	if goPattern == nil {
		t.Fatal("Expected a compiled pattern for Go")
	}
	if goPattern.MatchString("golang developer at google") {
		t.Error("Go pattern matched inside larger words")
	}
	if !goPattern.MatchString("services written in go") {
		t.Error("Go pattern missed a standalone mention")
	}

	javaPattern := Pattern("Java")
	if javaPattern.MatchString("javascript expert") {
		t.Error("Java pattern matched inside javascript")
	}
}

func TestAllSkillsHaveCategories(t *testing.T) {
	if len(AllSkills) == 0 {
		t.Fatal("Expected flattened skill list to be populated")
	}
	for _, skill := range AllSkills {
		if CategoryOf(skill) == "Other" {
			t.Errorf("Skill %s has no category", skill)
		}
		if Pattern(skill) == nil {
			t.Errorf("Skill %s has no compiled pattern", skill)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	if _, ok := DocURL("Python"); !ok {
		t.Error("Expected docs entry for Python")
	}
	if _, ok := DocURL("Figma"); ok {
		t.Error("Did not expect docs entry for Figma")
	}

	course, ok := CourseFor("Python", "intermediate")
	if !ok {
		t.Fatal("Expected intermediate Python course")
	}
	if course.Title != "Advanced Python" {
		t.Errorf("Unexpected course title: %q", course.Title)
	}

	if _, ok := CourseFor("Python", "nonexistent"); ok {
		t.Error("Did not expect course for nonexistent level")
	}

	if _, ok := VideoFor("React", "beginner"); !ok {
		t.Error("Expected beginner React video")
	}

	tmpl, ok := TemplateFor("Git", "beginner")
	if !ok {
		t.Fatal("Expected beginner Git template")
	}
	if tmpl.EstimatedHours != 10 {
		t.Errorf("Expected 10 hours for Git beginner, got %d", tmpl.EstimatedHours)
	}
}
