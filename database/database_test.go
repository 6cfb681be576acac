package database

import (
	"path/filepath"
	"testing"

	"gorm.io/datatypes"

	"github.com/whenkunda-blip/c-coach/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedAnalysis(t *testing.T, db *DB) *models.Analysis {
	t.Helper()
	analysis := &models.Analysis{
		ResumeText:     "Python developer",
		JobDescription: "Python and React required",
		SkillGaps: datatypes.NewJSONSlice([]models.Gap{
			{Skill: "React", Importance: "critical", Type: "missing"},
		}),
		ReadinessScore: 40.0,
	}
	if err := db.CreateAnalysis(analysis); err != nil {
		t.Fatalf("Failed to create analysis: %v", err)
	}
	return analysis
}

func TestCreateAndGetAnalysis(t *testing.T) {
	db := testDB(t)
	analysis := seedAnalysis(t, db)

	loaded, err := db.GetAnalysis(analysis.ID)
	if err != nil {
		t.Fatalf("Failed to load analysis: %v", err)
	}
	if loaded.ResumeText != analysis.ResumeText {
		t.Errorf("Resume text mismatch: %q", loaded.ResumeText)
	}
	if loaded.ReadinessScore != 40.0 {
		t.Errorf("Expected score 40.0, got %.1f", loaded.ReadinessScore)
	}
	if len(loaded.SkillGaps) != 1 || loaded.SkillGaps[0].Skill != "React" {
		t.Errorf("Skill gaps did not round-trip: %+v", loaded.SkillGaps)
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	db := testDB(t)
	if _, err := db.GetAnalysis(12345); err == nil {
		t.Error("Expected error for missing analysis")
	}
}

func TestGetPlanByAnalysisMissing(t *testing.T) {
	db := testDB(t)
	plan, err := db.GetPlanByAnalysis(12345)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if plan != nil {
		t.Errorf("Expected nil plan, got %+v", plan)
	}
}

func TestPlanLifecycle(t *testing.T) {
	db := testDB(t)
	analysis := seedAnalysis(t, db)

	plan := &models.ActionPlan{
		AnalysisID: analysis.ID,
		Tasks: datatypes.NewJSONSlice([]models.Task{
			{ID: "task_react_intermediate", Skill: "React", EstimatedHours: 25},
		}),
		CompletedTasks: datatypes.NewJSONSlice([]string{}),
	}
	if err := db.CreatePlan(plan); err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}

	loaded, err := db.GetPlanByAnalysis(analysis.ID)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected plan to exist")
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].ID != "task_react_intermediate" {
		t.Errorf("Tasks did not round-trip: %+v", loaded.Tasks)
	}
}

func TestRegeneratePlanPreservesCompletedTasks(t *testing.T) {
	db := testDB(t)
	analysis := seedAnalysis(t, db)

	plan := &models.ActionPlan{
		AnalysisID: analysis.ID,
		Tasks: datatypes.NewJSONSlice([]models.Task{
			{ID: "task_react_intermediate", Skill: "React", EstimatedHours: 25},
		}),
		CompletedTasks: datatypes.NewJSONSlice([]string{"task_react_intermediate"}),
	}
	if err := db.CreatePlan(plan); err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}

	newTasks := []models.Task{
		{ID: "task_react_intermediate", Skill: "React", EstimatedHours: 25},
		{ID: "task_python_intermediate", Skill: "Python", EstimatedHours: 30},
	}
	if err := db.RegeneratePlan(analysis.ID, newTasks, nil); err != nil {
		t.Fatalf("Failed to regenerate plan: %v", err)
	}

	loaded, err := db.GetPlanByAnalysis(analysis.ID)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}
	if len(loaded.Tasks) != 2 {
		t.Errorf("Expected 2 tasks after regeneration, got %d", len(loaded.Tasks))
	}
	if len(loaded.CompletedTasks) != 1 || loaded.CompletedTasks[0] != "task_react_intermediate" {
		t.Errorf("Completed tasks not preserved across regeneration: %v", loaded.CompletedTasks)
	}
}

func TestRegeneratePlanMissing(t *testing.T) {
	db := testDB(t)
	if err := db.RegeneratePlan(999, nil, nil); err == nil {
		t.Error("Expected error regenerating a nonexistent plan")
	}
}

func TestSavePlanTogglesCompletion(t *testing.T) {
	db := testDB(t)
	analysis := seedAnalysis(t, db)

	plan := &models.ActionPlan{
		AnalysisID: analysis.ID,
		Tasks: datatypes.NewJSONSlice([]models.Task{
			{ID: "task_react_intermediate", Skill: "React", EstimatedHours: 25},
		}),
		CompletedTasks: datatypes.NewJSONSlice([]string{}),
	}
	if err := db.CreatePlan(plan); err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}

	plan.CompletedTasks = datatypes.NewJSONSlice([]string{"task_react_intermediate"})
	score := 70.0
	plan.UpdatedReadinessScore = &score
	if err := db.SavePlan(plan); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	loaded, err := db.GetPlanByAnalysis(analysis.ID)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}
	if len(loaded.CompletedTasks) != 1 {
		t.Errorf("Expected 1 completed task, got %d", len(loaded.CompletedTasks))
	}
	if loaded.UpdatedReadinessScore == nil || *loaded.UpdatedReadinessScore != 70.0 {
		t.Errorf("Updated readiness score did not round-trip: %v", loaded.UpdatedReadinessScore)
	}
}

func TestGetStats(t *testing.T) {
	db := testDB(t)
	seedAnalysis(t, db)
	seedAnalysis(t, db)

	analyses, plans, err := db.GetStats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if analyses != 2 {
		t.Errorf("Expected 2 analyses, got %d", analyses)
	}
	if plans != 0 {
		t.Errorf("Expected 0 plans, got %d", plans)
	}
}
