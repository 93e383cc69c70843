package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// ClientRepository handles database operations for clients
type ClientRepository struct{}

// NewClientRepository creates a new client repository instance
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// FindByID retrieves a client by its ID
func (r *ClientRepository) FindByID(id string) (models.Client, error) {
	var client models.Client
	result := database.DB.First(&client, "id = ?", id)
	return client, result.Error
}

// FindBySlug retrieves a client by its URL slug
func (r *ClientRepository) FindBySlug(slug string) (models.Client, error) {
	var client models.Client
	result := database.DB.First(&client, "slug = ?", slug)
	return client, result.Error
}

// FindAll retrieves all clients ordered by name
func (r *ClientRepository) FindAll() ([]models.Client, error) {
	var clients []models.Client
	result := database.DB.Order("name asc").Find(&clients)
	return clients, result.Error
}

// SlugExists checks whether a slug is already taken
func (r *ClientRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Client{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Create inserts a new client into the database
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	result := database.DB.Create(&client)
	return client, result.Error
}

// Update modifies an existing client
func (r *ClientRepository) Update(client models.Client) error {
	result := database.DB.Save(&client)
	return result.Error
}
