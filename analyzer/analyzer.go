// Package analyzer compares extracted resume skills against job requirements
// and scores how ready the candidate is for the role.
package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/whenkunda-blip/c-coach/extractor"
	"github.com/whenkunda-blip/c-coach/models"
)

// Critical requirements carry 80% of the readiness score, everything else
// shares the remaining 20%. Fixed policy, not configurable.
const (
	criticalWeight  = 0.8
	preferredWeight = 0.2
)

var importanceRank = map[string]int{
	models.ImportanceCritical:  0,
	"high":                     1,
	models.ImportancePreferred: 2,
}

func rankOf(importance string) int {
	if rank, ok := importanceRank[importance]; ok {
		return rank
	}
	return 3
}

// Analyze runs the full skill gap analysis for a resume/job pair.
func Analyze(resumeText, jobDescription string) models.AnalysisResult {
	resumeSkills := extractor.SkillsFromResume(resumeText)
	requiredSkills := extractor.RequirementsFromJob(jobDescription)

	gaps := CalculateGaps(resumeSkills, requiredSkills)
	score := ReadinessScore(resumeSkills, requiredSkills)

	return models.AnalysisResult{
		ExtractedSkills: resumeSkills,
		RequiredSkills:  requiredSkills,
		SkillGaps:       gaps,
		ReadinessScore:  score,
		ExperienceYears: extractor.ExperienceYears(resumeText),
		EducationLevel:  extractor.EducationLevel(resumeText),
		Summary:         buildSummary(resumeSkills, requiredSkills, score),
	}
}

// CalculateGaps diffs resume skills against requirements. A requirement is
// either satisfied, missing, or present at too low a level.
func CalculateGaps(resumeSkills []models.Skill, requiredSkills []models.Requirement) []models.Gap {
	bySkillName := make(map[string]models.Skill, len(resumeSkills))
	for _, skill := range resumeSkills {
		name := strings.ToLower(skill.Name)
		if _, seen := bySkillName[name]; !seen {
			bySkillName[name] = skill
		}
	}

	gaps := []models.Gap{}
	for _, required := range requiredSkills {
		resumeSkill, have := bySkillName[strings.ToLower(required.Name)]
		if !have {
			gaps = append(gaps, models.Gap{
				Skill:       required.Name,
				Importance:  required.Importance,
				Category:    required.Category,
				Type:        models.GapMissing,
				Description: fmt.Sprintf("Missing %s - %s skill", required.Name, required.Importance),
			})
			continue
		}

		requiredLevel := required.Level
		if requiredLevel == "" {
			requiredLevel = models.LevelBasic
		}
		levelGap := AssessLevelGap(resumeSkill.Level, requiredLevel)
		if levelGap == nil {
			continue
		}
		gaps = append(gaps, models.Gap{
			Skill:        required.Name,
			Importance:   required.Importance,
			Category:     required.Category,
			Type:         models.GapLevelGap,
			Description:  fmt.Sprintf("Improve %s from %s to %s", required.Name, resumeSkill.Level, levelGap.TargetLevel),
			CurrentLevel: resumeSkill.Level,
			TargetLevel:  levelGap.TargetLevel,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return rankOf(gaps[i].Importance) < rankOf(gaps[j].Importance)
	})
	return gaps
}

// AssessLevelGap reports how far currentLevel falls short of requiredLevel,
// or nil when it is sufficient. Unknown levels count as basic.
func AssessLevelGap(currentLevel, requiredLevel string) *models.LevelGap {
	hierarchy := map[string]int{
		models.LevelBasic:        1,
		models.LevelIntermediate: 2,
		models.LevelAdvanced:     3,
	}

	current, ok := hierarchy[currentLevel]
	if !ok {
		current = 1
	}
	required, ok := hierarchy[requiredLevel]
	if !ok {
		required = 1
	}

	if current >= required {
		return nil
	}
	return &models.LevelGap{
		TargetLevel: requiredLevel,
		GapSize:     required - current,
	}
}

// ReadinessScore computes the weighted 0-100 fit score. No requirements at
// all means a perfect 100.0.
func ReadinessScore(resumeSkills []models.Skill, requiredSkills []models.Requirement) float64 {
	if len(requiredSkills) == 0 {
		return 100.0
	}

	resumeNames := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeNames[strings.ToLower(skill.Name)] = true
	}

	var critical, preferred []models.Requirement
	for _, required := range requiredSkills {
		if required.Importance == models.ImportanceCritical {
			critical = append(critical, required)
		} else {
			preferred = append(preferred, required)
		}
	}

	var criticalMatch, preferredMatch float64
	if len(critical) > 0 {
		matches := 0
		for _, required := range critical {
			if resumeNames[strings.ToLower(required.Name)] {
				matches++
			}
		}
		criticalMatch = float64(matches) / float64(len(critical)) * criticalWeight
	}
	if len(preferred) > 0 {
		matches := 0
		for _, required := range preferred {
			if resumeNames[strings.ToLower(required.Name)] {
				matches++
			}
		}
		preferredMatch = float64(matches) / float64(len(preferred)) * preferredWeight
	}

	return math.Round((criticalMatch+preferredMatch)*1000) / 10
}

func buildSummary(resumeSkills []models.Skill, requiredSkills []models.Requirement, score float64) models.Summary {
	resumeByCategory := make(map[string]int)
	for _, skill := range resumeSkills {
		resumeByCategory[skill.Category]++
	}

	requiredByCategory := make(map[string]int)
	var categoryOrder []string
	for _, required := range requiredSkills {
		if _, seen := requiredByCategory[required.Category]; !seen {
			categoryOrder = append(categoryOrder, required.Category)
		}
		requiredByCategory[required.Category]++
	}

	var strongest, weakest []string
	for _, category := range categoryOrder {
		resumeCount := resumeByCategory[category]
		if resumeCount >= requiredByCategory[category] {
			strongest = append(strongest, category)
		} else if resumeCount == 0 {
			weakest = append(weakest, category)
		}
	}
	strongest = truncate(strongest, 3)
	weakest = truncate(weakest, 3)

	recommendations := []string{}
	switch {
	case score < 60:
		recommendations = append(recommendations, "Focus on developing critical missing skills first")
	case score < 80:
		recommendations = append(recommendations, "Strengthen your application by improving key skills")
	default:
		recommendations = append(recommendations, "You're well-positioned for this role")
	}
	if len(weakest) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Consider focusing on: %s", strings.Join(weakest, ", ")))
	}

	resumeNames := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeNames[strings.ToLower(skill.Name)] = true
	}
	matching := 0
	for _, required := range requiredSkills {
		if resumeNames[strings.ToLower(required.Name)] {
			matching++
		}
	}

	return models.Summary{
		ReadinessLevel:  ReadinessLevel(score),
		StrongestAreas:  strongest,
		WeakestAreas:    weakest,
		Recommendations: recommendations,
		SkillCoverage: models.SkillCoverage{
			ResumeSkills:   len(resumeSkills),
			RequiredSkills: len(requiredSkills),
			MatchingSkills: matching,
		},
	}
}

// ReadinessLevel labels a readiness score.
func ReadinessLevel(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Strong"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
