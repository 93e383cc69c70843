package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByClientID retrieves all projects for one client, newest first
func (r *ProjectRepository) FindByClientID(clientID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("client_id = ?", clientID).Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// WithStages loads a project with its stages (and their components) in order
func (r *ProjectRepository) WithStages(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("Stages.Components").
		Preload("Client").
		First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// UpdateFields applies a partial update to a project
func (r *ProjectRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	return result.Error
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return database.DB
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	clientID string,
	status string,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}

	if status != "" {
		db = db.Where("status = ?", status)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(title LIKE ? OR description LIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
