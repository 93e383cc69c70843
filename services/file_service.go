package services

import (
	"fmt"
	"io"
	"log"

	"github.com/limayamil/flowsync/lib/storage"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// FileService handles file uploads: bytes go to the blob store, metadata
// rows to the database.
type FileService struct {
	fileRepo    *repositories.FileRepository
	projectRepo *repositories.ProjectRepository
	stageRepo   *repositories.StageRepository
	blobs       storage.BlobStore
	activity    *ActivityService
}

// NewFileService creates a new file service instance
func NewFileService(blobs storage.BlobStore) *FileService {
	return &FileService{
		fileRepo:    repositories.NewFileRepository(),
		projectRepo: repositories.NewProjectRepository(),
		stageRepo:   repositories.NewStageRepository(),
		blobs:       blobs,
		activity:    NewActivityService(),
	}
}

// Upload stores the payload and records its metadata row.
func (s *FileService) Upload(projectID string, stageID *string, name, contentType string, r io.Reader, actor Actor) (models.File, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.File{}, err
	}
	if stageID != nil {
		stage, err := s.stageRepo.FindByID(*stageID)
		if err != nil || stage.ProjectID != projectID {
			return models.File{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, *stageID)
		}
	}

	path, size, err := s.blobs.Save(projectID, name, r)
	if err != nil {
		return models.File{}, err
	}

	file := models.File{
		ProjectID:    projectID,
		StageID:      stageID,
		UploaderType: actor.Type,
		UploaderID:   actor.ID,
		Name:         name,
		Path:         path,
		ContentType:  contentType,
		Size:         size,
	}
	created, err := s.fileRepo.Create(file)
	if err != nil {
		// metadata row failed; drop the orphaned blob
		if derr := s.blobs.Delete(path); derr != nil {
			log.Printf("Warning: failed to clean up blob %s: %v", path, derr)
		}
		return models.File{}, err
	}

	s.activity.Record(projectID, actor, "file.uploaded", map[string]interface{}{
		"fileId": created.ID,
		"name":   created.Name,
		"size":   created.Size,
	})
	return created, nil
}

// Open returns a reader for a stored file's bytes plus its metadata.
func (s *FileService) Open(projectID, fileID string) (models.File, io.ReadCloser, error) {
	file, err := s.fileRepo.FindByID(fileID)
	if err != nil {
		return models.File{}, nil, err
	}
	if file.ProjectID != projectID {
		return models.File{}, nil, fmt.Errorf("%w: file %s is not part of the project", ErrNotFound, fileID)
	}

	rc, err := s.blobs.Open(file.Path)
	if err != nil {
		return models.File{}, nil, err
	}
	return file, rc, nil
}

// Delete removes a file's metadata row and its blob.
func (s *FileService) Delete(projectID, fileID string, actor Actor) error {
	file, err := s.fileRepo.FindByID(fileID)
	if err != nil {
		return err
	}
	if file.ProjectID != projectID {
		return fmt.Errorf("%w: file %s is not part of the project", ErrNotFound, fileID)
	}

	if err := s.fileRepo.Delete(projectID, fileID); err != nil {
		return err
	}
	if err := s.blobs.Delete(file.Path); err != nil {
		log.Printf("Warning: failed to delete blob %s: %v", file.Path, err)
	}

	s.activity.Record(projectID, actor, "file.deleted", map[string]interface{}{
		"fileId": fileID,
		"name":   file.Name,
	})
	return nil
}

// ListFiles returns the file rows of a project.
func (s *FileService) ListFiles(projectID string) ([]models.File, error) {
	return s.fileRepo.FindByProjectID(projectID)
}
