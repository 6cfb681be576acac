package handlers

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/whenkunda-blip/c-coach/ai"
	"github.com/whenkunda-blip/c-coach/analyzer"
	"github.com/whenkunda-blip/c-coach/database"
	"github.com/whenkunda-blip/c-coach/models"
	"github.com/whenkunda-blip/c-coach/planner"
	"github.com/whenkunda-blip/c-coach/scraper"
	"github.com/whenkunda-blip/c-coach/textproc"
)

func HomeHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	totalAnalyses, totalPlans, err := db.GetStats()
	if err != nil {
		totalAnalyses, totalPlans = 0, 0
	}

	recentAnalyses, _ := db.GetRecentAnalyses(5)

	return c.Render("home", fiber.Map{
		"Title":          "Career Coach - Skill Gap Analyzer",
		"TotalAnalyses":  totalAnalyses,
		"TotalPlans":     totalPlans,
		"RecentAnalyses": recentAnalyses,
	})
}

func UploadPageHandler(c *fiber.Ctx) error {
	return c.Render("upload", fiber.Map{
		"Title": "Upload Resume",
	})
}

func UploadHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)
	fetcher := c.Locals("fetcher").(*scraper.Fetcher)
	uploadDir := c.Locals("uploadDir").(string)

	fileHeader, err := c.FormFile("resume_file")
	if err != nil {
		return renderUploadError(c, "Please upload a resume file.")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !textproc.AllowedExtensions[ext] {
		return renderUploadError(c, "Invalid file type for resume. Please upload PDF, DOCX, or TXT.")
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return c.Status(500).SendString("Error preparing upload directory")
	}

	dest := filepath.Join(uploadDir, uuid.NewString()+ext)
	if err := c.SaveFile(fileHeader, dest); err != nil {
		return c.Status(500).SendString("Error saving uploaded file")
	}
	defer func() {
		if err := os.Remove(dest); err != nil {
			log.Printf("Error cleaning up upload %s: %v", dest, err)
		}
	}()

	resumeText, err := textproc.ExtractTextFromFile(dest)
	if err != nil {
		return renderUploadError(c, fmt.Sprintf("Error processing resume: %v", err))
	}
	resumeText = textproc.CleanText(resumeText)

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		if jobURL := c.FormValue("job_url"); jobURL != "" {
			jobDescription, err = fetcher.FetchJobPosting(jobURL)
			if err != nil {
				return renderUploadError(c, fmt.Sprintf("Error fetching job posting: %v", err))
			}
		}
	}
	jobDescription = textproc.CleanText(jobDescription)

	if resumeText == "" {
		return renderUploadError(c, "Please upload a resume file.")
	}
	if jobDescription == "" {
		return renderUploadError(c, "Please provide a job description or a job posting URL.")
	}

	result := analyzer.Analyze(resumeText, jobDescription)

	analysis := models.Analysis{
		ResumeText:      resumeText,
		JobDescription:  jobDescription,
		ExtractedSkills: datatypes.NewJSONSlice(result.ExtractedSkills),
		RequiredSkills:  datatypes.NewJSONSlice(result.RequiredSkills),
		SkillGaps:       datatypes.NewJSONSlice(result.SkillGaps),
		ReadinessScore:  result.ReadinessScore,
	}
	if err := db.CreateAnalysis(&analysis); err != nil {
		return c.Status(500).SendString("Error saving analysis: " + err.Error())
	}

	return c.Redirect(fmt.Sprintf("/analysis/%d", analysis.ID))
}

func renderUploadError(c *fiber.Ctx, message string) error {
	return c.Status(400).Render("upload", fiber.Map{
		"Title": "Upload Resume",
		"Error": message,
	})
}

func AnalysisHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).SendString("Invalid analysis id")
	}

	analysis, err := db.GetAnalysis(uint(id))
	if err != nil {
		return c.Status(404).SendString("Analysis not found")
	}

	return c.Render("analysis", fiber.Map{
		"Analysis":       analysis,
		"ReadinessLevel": analyzer.ReadinessLevel(analysis.ReadinessScore),
	})
}

func ActionPlanHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).SendString("Invalid analysis id")
	}

	analysis, err := db.GetAnalysis(uint(id))
	if err != nil {
		return c.Status(404).SendString("Analysis not found")
	}

	plan, err := db.GetPlanByAnalysis(analysis.ID)
	if err != nil {
		return c.Status(500).SendString("Error loading action plan")
	}

	// Lazily materialize the plan on first view. This path owns the full
	// row, completed tasks included.
	if plan == nil && len(analysis.SkillGaps) > 0 {
		data, err := planner.GeneratePlan(analysis.ID, analysis.SkillGaps)
		if err != nil {
			return c.Status(500).SendString("Error generating action plan: " + err.Error())
		}
		plan = &models.ActionPlan{
			AnalysisID:            analysis.ID,
			Tasks:                 datatypes.NewJSONSlice(data.Tasks),
			CompletedTasks:        datatypes.NewJSONSlice(data.CompletedTasks),
			UpdatedReadinessScore: data.UpdatedReadinessScore,
		}
		if err := db.CreatePlan(plan); err != nil {
			return c.Status(500).SendString("Error saving action plan: " + err.Error())
		}
	}

	return c.Render("action_plan", planViewData(analysis, plan))
}

func GenerateActionPlanHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).SendString("Invalid analysis id")
	}

	analysis, err := db.GetAnalysis(uint(id))
	if err != nil {
		return c.Status(404).SendString("Analysis not found")
	}

	if len(analysis.SkillGaps) == 0 {
		return c.Redirect(fmt.Sprintf("/analysis/%d", analysis.ID))
	}

	data, err := planner.GeneratePlan(analysis.ID, analysis.SkillGaps)
	if err != nil {
		return c.Status(500).SendString("Error generating action plan: " + err.Error())
	}

	existing, err := db.GetPlanByAnalysis(analysis.ID)
	if err != nil {
		return c.Status(500).SendString("Error loading action plan")
	}

	if existing != nil {
		// Tasks-only rewrite. Completed tasks are user progress and must
		// survive regeneration.
		if err := db.RegeneratePlan(analysis.ID, data.Tasks, data.UpdatedReadinessScore); err != nil {
			return c.Status(500).SendString("Error updating action plan: " + err.Error())
		}
	} else {
		plan := models.ActionPlan{
			AnalysisID:            analysis.ID,
			Tasks:                 datatypes.NewJSONSlice(data.Tasks),
			CompletedTasks:        datatypes.NewJSONSlice(data.CompletedTasks),
			UpdatedReadinessScore: data.UpdatedReadinessScore,
		}
		if err := db.CreatePlan(&plan); err != nil {
			return c.Status(500).SendString("Error saving action plan: " + err.Error())
		}
	}

	return c.Redirect(fmt.Sprintf("/action-plan/%d", analysis.ID))
}

func CompleteTaskHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).SendString("Invalid analysis id")
	}
	taskID := c.Params("taskID")

	plan, err := db.GetPlanByAnalysis(uint(id))
	if err != nil || plan == nil {
		return c.Status(404).SendString("Action plan not found")
	}

	completed := make([]string, 0, len(plan.CompletedTasks))
	found := false
	for _, existing := range plan.CompletedTasks {
		if existing == taskID {
			found = true
			continue
		}
		completed = append(completed, existing)
	}
	if !found {
		completed = append(completed, taskID)
	}
	plan.CompletedTasks = datatypes.NewJSONSlice(completed)

	// Score only moves while there is recorded progress; untoggling the
	// last task leaves the previous updated score in place.
	if len(completed) > 0 {
		analysis, err := db.GetAnalysis(uint(id))
		if err == nil {
			totalTasks := len(plan.Tasks)
			if totalTasks == 0 {
				totalTasks = 1
			}
			progress := float64(len(completed)) / float64(totalTasks) * 100
			original := analysis.ReadinessScore
			improvement := progress / 100 * (100 - original)
			updated := math.Min(100, original+improvement)
			plan.UpdatedReadinessScore = &updated
		}
	}

	if err := db.SavePlan(plan); err != nil {
		return c.Status(500).SendString("Error saving task progress: " + err.Error())
	}

	return c.Redirect(fmt.Sprintf("/action-plan/%d", id))
}

func CoachNoteHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)
	coach := c.Locals("coach").(*ai.Coach)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid analysis id"})
	}

	analysis, err := db.GetAnalysis(uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Analysis not found"})
	}

	note, err := coach.CoachNote(analysis)
	if err != nil {
		// Fallback note is still usable, just log the API failure.
		log.Printf("Coach note generation degraded: %v", err)
	}

	return c.JSON(fiber.Map{"coach_note": note})
}

func APIAnalysisHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid analysis id"})
	}

	analysis, err := db.GetAnalysis(uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Analysis not found"})
	}

	return c.JSON(analysis)
}

func APIActionPlanHandler(c *fiber.Ctx) error {
	db := c.Locals("db").(*database.DB)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid analysis id"})
	}

	plan, err := db.GetPlanByAnalysis(uint(id))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error loading action plan"})
	}
	if plan == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Action plan not found"})
	}

	return c.JSON(plan)
}

func HealthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func planViewData(analysis *models.Analysis, plan *models.ActionPlan) fiber.Map {
	data := fiber.Map{
		"Analysis": analysis,
		"Plan":     plan,
	}
	if plan == nil {
		return data
	}

	totalHours := planner.TotalHours(plan.Tasks)
	completedSet := make(map[string]bool, len(plan.CompletedTasks))
	for _, taskID := range plan.CompletedTasks {
		completedSet[taskID] = true
	}

	data["TotalHours"] = totalHours
	data["Timeline"] = planner.CalculateTimeline(totalHours)
	data["CompletedSet"] = completedSet
	data["CompletedCount"] = len(plan.CompletedTasks)
	if plan.UpdatedReadinessScore != nil {
		data["UpdatedScore"] = *plan.UpdatedReadinessScore
	}
	return data
}
