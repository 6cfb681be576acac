package database

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/whenkunda-blip/c-coach/models"
)

type DB struct {
	*gorm.DB
}

// InitDB opens the sqlite database and migrates the schema.
func InitDB(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Reduce log noise
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Analysis{},
		&models.ActionPlan{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return &DB{db}, nil
}

// CreateAnalysis persists a new analysis record.
func (db *DB) CreateAnalysis(analysis *models.Analysis) error {
	result := db.Create(analysis)
	return result.Error
}

// GetAnalysis loads an analysis by id.
func (db *DB) GetAnalysis(id uint) (*models.Analysis, error) {
	var analysis models.Analysis
	result := db.First(&analysis, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &analysis, nil
}

// GetPlanByAnalysis loads the action plan for an analysis. Returns
// (nil, nil) when none exists yet.
func (db *DB) GetPlanByAnalysis(analysisID uint) (*models.ActionPlan, error) {
	var plan models.ActionPlan
	result := db.First(&plan, "analysis_id = ?", analysisID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &plan, nil
}

// CreatePlan persists a brand new action plan, completed tasks included.
// This is the full-write path used when a plan is first materialized.
func (db *DB) CreatePlan(plan *models.ActionPlan) error {
	result := db.Create(plan)
	return result.Error
}

// RegeneratePlan replaces the tasks and updated score of an existing plan
// without touching completed_tasks, so user progress survives regeneration.
func (db *DB) RegeneratePlan(analysisID uint, tasks []models.Task, updatedScore *float64) error {
	result := db.Model(&models.ActionPlan{}).
		Where("analysis_id = ?", analysisID).
		Updates(map[string]interface{}{
			"tasks":                   datatypes.NewJSONSlice(tasks),
			"updated_readiness_score": updatedScore,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SavePlan writes the whole plan row. Used by the completion-toggle path,
// which owns the row for the duration of the request.
func (db *DB) SavePlan(plan *models.ActionPlan) error {
	result := db.Save(plan)
	return result.Error
}

// GetStats returns counts for the landing page.
func (db *DB) GetStats() (totalAnalyses, totalPlans int, err error) {
	var analyses int64
	if result := db.Model(&models.Analysis{}).Count(&analyses); result.Error != nil {
		return 0, 0, result.Error
	}
	var plans int64
	if result := db.Model(&models.ActionPlan{}).Count(&plans); result.Error != nil {
		return 0, 0, result.Error
	}
	return int(analyses), int(plans), nil
}

// GetRecentAnalyses returns the newest analyses for the landing page.
func (db *DB) GetRecentAnalyses(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	result := db.Order("created_at DESC").Limit(limit).Find(&analyses)
	return analyses, result.Error
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
