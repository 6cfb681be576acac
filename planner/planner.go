// Package planner turns a list of skill gaps into a prioritized action plan
// with learning resources from the static catalogs.
package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/whenkunda-blip/c-coach/models"
	"github.com/whenkunda-blip/c-coach/taxonomy"
)

// Timeline math assumes this many learning hours per week.
const hoursPerWeek = 10

var importanceRank = map[string]int{
	models.ImportanceCritical:  0,
	"high":                     1,
	models.ImportancePreferred: 2,
}

func rankOf(importance string) int {
	if importance == "" {
		importance = models.ImportancePreferred
	}
	if rank, ok := importanceRank[importance]; ok {
		return rank
	}
	return 3
}

// GeneratePlan builds an action plan from skill gaps. Gaps are handled in
// importance order; unknown gap types are skipped. The only error is a
// malformed task template, which is a data bug rather than bad user input.
func GeneratePlan(analysisID uint, skillGaps []models.Gap) (models.ActionPlanData, error) {
	sorted := make([]models.Gap, len(skillGaps))
	copy(sorted, skillGaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankOf(sorted[i].Importance) < rankOf(sorted[j].Importance)
	})

	tasks := []models.Task{}
	totalHours := 0
	for _, gap := range sorted {
		var task *models.Task
		var err error
		switch gap.Type {
		case models.GapMissing:
			task, err = taskForMissingSkill(gap)
		case models.GapLevelGap:
			task, err = taskForSkillImprovement(gap)
		default:
			continue
		}
		if err != nil {
			return models.ActionPlanData{}, err
		}
		tasks = append(tasks, *task)
		totalHours += task.EstimatedHours
	}

	timeline := CalculateTimeline(totalHours)

	return models.ActionPlanData{
		AnalysisID:            analysisID,
		Tasks:                 tasks,
		TotalHours:            totalHours,
		Timeline:              timeline,
		Summary:               planSummary(tasks, totalHours, timeline),
		CompletedTasks:        []string{},
		UpdatedReadinessScore: nil,
	}, nil
}

func taskForMissingSkill(gap models.Gap) (*models.Task, error) {
	targetLevel := determineTargetLevel(gap)

	tmpl, ok := taxonomy.TemplateFor(gap.Skill, targetLevel)
	if !ok {
		tmpl = taxonomy.TaskTemplate{
			Title:          fmt.Sprintf("Learn %s", gap.Skill),
			Description:    fmt.Sprintf("Study and practice %s to meet job requirements", gap.Skill),
			EstimatedHours: 20,
			Timeline:       "Week 1-3",
			Priority:       priorityOf(gap),
		}
	}
	if err := checkTemplate(gap.Skill, targetLevel, tmpl); err != nil {
		return nil, err
	}

	return &models.Task{
		ID:             TaskID(gap.Skill, targetLevel),
		Skill:          gap.Skill,
		Title:          tmpl.Title,
		Description:    tmpl.Description,
		EstimatedHours: tmpl.EstimatedHours,
		Timeline:       tmpl.Timeline,
		Priority:       priorityOf(gap),
		TargetLevel:    targetLevel,
		Resources:      learningResources(gap.Skill, targetLevel),
		Completed:      false,
	}, nil
}

func taskForSkillImprovement(gap models.Gap) (*models.Task, error) {
	currentLevel := gap.CurrentLevel
	if currentLevel == "" {
		currentLevel = models.LevelBasic
	}
	targetLevel := gap.TargetLevel
	if targetLevel == "" {
		targetLevel = models.LevelIntermediate
	}

	tmpl, ok := taxonomy.TemplateFor(gap.Skill, targetLevel)
	if !ok {
		tmpl = taxonomy.TaskTemplate{
			Title:          fmt.Sprintf("Improve %s from %s to %s", gap.Skill, currentLevel, targetLevel),
			Description:    fmt.Sprintf("Enhance your %s skills to reach %s level", gap.Skill, targetLevel),
			EstimatedHours: 15,
			Timeline:       "Week 1-2",
			Priority:       priorityOf(gap),
		}
	}
	if err := checkTemplate(gap.Skill, targetLevel, tmpl); err != nil {
		return nil, err
	}

	return &models.Task{
		ID:             TaskID(gap.Skill, targetLevel),
		Skill:          gap.Skill,
		Title:          tmpl.Title,
		Description:    tmpl.Description,
		EstimatedHours: tmpl.EstimatedHours,
		Timeline:       tmpl.Timeline,
		Priority:       priorityOf(gap),
		CurrentLevel:   currentLevel,
		TargetLevel:    targetLevel,
		Resources:      learningResources(gap.Skill, targetLevel),
		Completed:      false,
	}, nil
}

// determineTargetLevel picks the level a missing skill should be learned to.
// Always intermediate for now, regardless of what the job asks for.
// TODO: derive from the requirement's own level once product decides.
func determineTargetLevel(gap models.Gap) string {
	return models.LevelIntermediate
}

func priorityOf(gap models.Gap) string {
	if gap.Importance == "" {
		return models.ImportancePreferred
	}
	return gap.Importance
}

func checkTemplate(skill, level string, tmpl taxonomy.TaskTemplate) error {
	if tmpl.EstimatedHours <= 0 {
		return fmt.Errorf("task template %s/%s: estimated hours must be positive, got %d", skill, level, tmpl.EstimatedHours)
	}
	if tmpl.Title == "" {
		return fmt.Errorf("task template %s/%s: missing title", skill, level)
	}
	return nil
}

// TaskID builds the deterministic task identifier used as the completion
// toggle key. Stable across regenerations for the same skill and level.
func TaskID(skill, targetLevel string) string {
	slug := strings.ReplaceAll(strings.ToLower(skill), " ", "_")
	return fmt.Sprintf("task_%s_%s", slug, targetLevel)
}

// learningResources assembles resources in fixed quality order: official
// docs, then a structured course, then a free video. Any of the three may be
// absent from the catalogs.
func learningResources(skill, targetLevel string) []models.Resource {
	resources := []models.Resource{}

	if url, ok := taxonomy.DocURL(skill); ok {
		resources = append(resources, models.Resource{
			Name:     fmt.Sprintf("Official Documentation: %s", skill),
			URL:      url,
			Type:     "documentation",
			Platform: "Official",
			Priority: "reference",
		})
	}

	if course, ok := taxonomy.CourseFor(skill, targetLevel); ok {
		resources = append(resources, models.Resource{
			Name:       fmt.Sprintf("LinkedIn Learning: %s", course.Title),
			URL:        course.URL,
			Type:       "course",
			Platform:   "LinkedIn Learning",
			Priority:   "primary",
			Duration:   course.Duration,
			Instructor: course.Instructor,
		})
	}

	if video, ok := taxonomy.VideoFor(skill, targetLevel); ok {
		resources = append(resources, models.Resource{
			Name:     fmt.Sprintf("YouTube: %s", video.Title),
			URL:      video.URL,
			Type:     "video",
			Platform: "YouTube",
			Priority: "secondary",
			Duration: video.Duration,
			Channel:  video.Channel,
		})
	}

	return resources
}

// CalculateTimeline renders total learning hours as a human timeline,
// assuming hoursPerWeek hours of study per week.
func CalculateTimeline(totalHours int) string {
	weeks := int(math.Round(float64(totalHours) / hoursPerWeek))
	if weeks < 1 {
		weeks = 1
	}

	switch {
	case weeks == 1:
		return "1 week"
	case weeks <= 4:
		return fmt.Sprintf("%d weeks", weeks)
	default:
		months := math.Round(float64(weeks)/4*10) / 10
		return fmt.Sprintf("%.1f months", months)
	}
}

func planSummary(tasks []models.Task, totalHours int, timeline string) models.PlanSummary {
	criticalCount := 0
	highCount := 0
	for _, task := range tasks {
		switch task.Priority {
		case models.ImportanceCritical:
			criticalCount++
		case "high":
			highCount++
		}
	}

	seen := make(map[string]bool)
	focusAreas := []string{}
	for _, task := range tasks {
		if !seen[task.Skill] {
			seen[task.Skill] = true
			focusAreas = append(focusAreas, task.Skill)
		}
	}

	return models.PlanSummary{
		TotalTasks:        len(tasks),
		CriticalTasks:     criticalCount,
		HighPriorityTasks: highCount,
		TotalHours:        totalHours,
		Timeline:          timeline,
		FocusAreas:        focusAreas,
		Recommendations: []string{
			fmt.Sprintf("Complete %d critical tasks first", criticalCount),
			fmt.Sprintf("Allocate %d hours over %s", totalHours, timeline),
			"Use LinkedIn Learning courses for structured learning",
			"Practice with real projects to reinforce skills",
		},
	}
}

// TotalHours sums estimated hours across tasks. Used by views that need the
// roll-up for a persisted plan.
func TotalHours(tasks []models.Task) int {
	total := 0
	for _, task := range tasks {
		total += task.EstimatedHours
	}
	return total
}
