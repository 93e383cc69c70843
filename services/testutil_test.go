package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points database.DB at a fresh in-memory store for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(database.Models()...))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		database.DB = prev
	})
	return db
}

// seedClient inserts a client organization for tests.
func seedClient(t *testing.T, name, slug, email string) models.Client {
	t.Helper()
	client := models.Client{Name: name, Slug: slug, ContactEmail: email}
	require.NoError(t, database.DB.Create(&client).Error)
	return client
}

// seedProject inserts a bare project for tests.
func seedProject(t *testing.T, clientID, title string) models.Project {
	t.Helper()
	project := models.Project{
		Title:     title,
		Status:    models.ProjectStatusInProgress,
		ClientID:  clientID,
		CreatedBy: uuid.NewString(),
	}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}

// seedStage inserts one stage with an explicit order and status.
func seedStage(t *testing.T, projectID, title string, order int, status models.StageStatus) models.Stage {
	t.Helper()
	stage := models.Stage{
		ProjectID: projectID,
		Title:     title,
		SortOrder: order,
		Status:    status,
	}
	require.NoError(t, database.DB.Create(&stage).Error)
	return stage
}

// seedTemplate inserts the standard template used by project creation.
func seedTemplate(t *testing.T) models.ProjectTemplate {
	t.Helper()
	tpl := models.ProjectTemplate{
		Key:  "standard",
		Name: "Standard delivery",
		Stages: []models.TemplateStage{
			{SortOrder: 1, Title: "Intake", Type: "intake", Owner: models.StageOwnerClient},
			{SortOrder: 2, Title: "Design", Type: "design", Owner: models.StageOwnerProvider},
			{SortOrder: 3, Title: "Build", Type: "build", Owner: models.StageOwnerProvider},
			{SortOrder: 4, Title: "Handoff", Type: "handoff", Owner: models.StageOwnerProvider},
		},
	}
	require.NoError(t, database.DB.Create(&tpl).Error)
	return tpl
}

func setStatus(projectID string, status models.ProjectStatus) error {
	return database.DB.Model(&models.Project{}).Where("id = ?", projectID).
		Update("status", status).Error
}

func setDeadline(projectID string, deadline *time.Time) error {
	return database.DB.Model(&models.Project{}).Where("id = ?", projectID).
		Update("deadline", deadline).Error
}

// testActor is the provider identity used across service tests.
var testActor = Actor{Type: models.ActorProvider, ID: "test-provider", Name: "tester"}
