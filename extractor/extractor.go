// Package extractor finds skill mentions, experience, and education in free
// text using the static taxonomy. All functions are pure and tolerate empty
// input.
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/whenkunda-blip/c-coach/models"
	"github.com/whenkunda-blip/c-coach/taxonomy"
)

// contextWindow is how many characters around the first mention of a skill
// are scanned for level/importance keywords.
const contextWindow = 100

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*of?\s*experience`),
	regexp.MustCompile(`experience\s*of?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`in\s*(\d+)\+?\s*years?`),
}

type educationTier struct {
	level    string
	patterns []*regexp.Regexp
}

// Checked in order; the first matching tier wins, so a resume with both a
// PhD and a Masters reports PhD.
var educationTiers = []educationTier{
	{"PhD", compileWords("phd", "doctorate")},
	{"Masters", compileWords("masters?", "ms", "ma", "mba")},
	{"Bachelors", compileWords("bachelors?", "bs", "ba")},
	{"Associate", compileWords("associate", "aa", "as")},
	{"High School", compileWords("high school", "hs diploma", "ged")},
}

func compileWords(words ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`\b` + w + `\b`)
	}
	return patterns
}

// SkillsFromResume extracts taxonomy skills mentioned in resume text, with a
// proficiency level inferred from nearby experience keywords.
func SkillsFromResume(resumeText string) []models.Skill {
	if resumeText == "" {
		return []models.Skill{}
	}

	text := strings.ToLower(resumeText)
	found := []models.Skill{}
	for _, skill := range taxonomy.AllSkills {
		if !taxonomy.Pattern(skill).MatchString(text) {
			continue
		}
		found = append(found, models.Skill{
			Name:     skill,
			Level:    determineSkillLevel(text, strings.ToLower(skill)),
			Category: taxonomy.CategoryOf(skill),
		})
	}
	return found
}

// RequirementsFromJob extracts taxonomy skills mentioned in a job
// description, with an importance inferred from nearby keywords.
func RequirementsFromJob(jobText string) []models.Requirement {
	if jobText == "" {
		return []models.Requirement{}
	}

	text := strings.ToLower(jobText)
	required := []models.Requirement{}
	for _, skill := range taxonomy.AllSkills {
		if !taxonomy.Pattern(skill).MatchString(text) {
			continue
		}
		required = append(required, models.Requirement{
			Name:       skill,
			Importance: determineSkillImportance(text, strings.ToLower(skill)),
			Category:   taxonomy.CategoryOf(skill),
		})
	}
	return required
}

// determineSkillLevel scans the context around the first mention of a skill
// for experience-tier keywords. Repeated mentions are not re-scored.
func determineSkillLevel(text, skill string) string {
	context, ok := contextAround(text, skill)
	if !ok {
		return models.LevelBasic
	}

	for _, tier := range taxonomy.ExperienceTiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(context, keyword) {
				return tier.Level
			}
		}
	}
	return models.LevelBasic
}

func determineSkillImportance(text, skill string) string {
	context, ok := contextAround(text, skill)
	if !ok {
		return models.ImportancePreferred
	}

	for _, keyword := range taxonomy.CriticalKeywords {
		if strings.Contains(context, keyword) {
			return models.ImportanceCritical
		}
	}
	for _, keyword := range taxonomy.PreferredKeywords {
		if strings.Contains(context, keyword) {
			return models.ImportancePreferred
		}
	}
	return models.ImportancePreferred
}

// contextAround returns a window of contextWindow characters on either side
// of the first plain occurrence of skill in text.
func contextAround(text, skill string) (string, bool) {
	idx := strings.Index(text, skill)
	if idx == -1 {
		return "", false
	}

	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + contextWindow
	if end > len(text) {
		end = len(text)
	}
	return text[start:end], true
}

// ExperienceYears extracts years of experience from text. The first pattern
// that matches wins; multiple mentions are not aggregated.
func ExperienceYears(text string) int {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	for _, pattern := range yearsPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years
		}
	}
	return 0
}

// EducationLevel extracts the highest education level mentioned in text,
// or "Unknown" when none is found.
func EducationLevel(text string) string {
	if text == "" {
		return "Unknown"
	}

	lower := strings.ToLower(text)
	for _, tier := range educationTiers {
		for _, pattern := range tier.patterns {
			if pattern.MatchString(lower) {
				return tier.level
			}
		}
	}
	return "Unknown"
}
