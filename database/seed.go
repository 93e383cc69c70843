package database

import (
	"log"

	"github.com/limayamil/flowsync/models"
)

// defaultTemplate is the stage blueprint used when a project is created
// without an explicit template.
var defaultTemplate = models.ProjectTemplate{
	Key:  "standard",
	Name: "Standard delivery",
	Stages: []models.TemplateStage{
		{SortOrder: 1, Title: "Intake", Type: "intake", Owner: models.StageOwnerClient},
		{SortOrder: 2, Title: "Design", Type: "design", Owner: models.StageOwnerProvider},
		{SortOrder: 3, Title: "Build", Type: "build", Owner: models.StageOwnerProvider},
		{SortOrder: 4, Title: "Review", Type: "review", Owner: models.StageOwnerClient},
		{SortOrder: 5, Title: "Handoff", Type: "handoff", Owner: models.StageOwnerProvider},
	},
}

// Seed inserts the built-in project template if it is not present yet.
// Safe to call on every startup.
func Seed() {
	var count int64
	if err := DB.Model(&models.ProjectTemplate{}).Where("key = ?", defaultTemplate.Key).Count(&count).Error; err != nil {
		log.Printf("Warning: template seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	tpl := defaultTemplate
	if err := DB.Create(&tpl).Error; err != nil {
		log.Printf("Warning: failed to seed default template: %v", err)
		return
	}
	log.Printf("✅ Seeded default project template %q (%d stages)", tpl.Key, len(tpl.Stages))
}
