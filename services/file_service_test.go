package services

import (
	"io"
	"strings"
	"testing"

	"github.com/limayamil/flowsync/lib/storage"
	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileService(t *testing.T) *FileService {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return NewFileService(store)
}

func TestUploadAndOpen(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := newTestFileService(t)
	file, err := svc.Upload(project.ID, nil, "brief.pdf", "application/pdf", strings.NewReader("payload"), testActor)
	require.NoError(t, err)
	assert.Equal(t, "brief.pdf", file.Name)
	assert.EqualValues(t, 7, file.Size)
	assert.Equal(t, models.ActorProvider, file.UploaderType)

	got, rc, err := svc.Open(project.ID, file.ID)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, file.ID, got.ID)
}

func TestUploadToStage(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Intake", 1, models.StageStatusWaitingClient)

	svc := newTestFileService(t)
	file, err := svc.Upload(project.ID, &stage.ID, "logo.png", "image/png", strings.NewReader("img"), clientActor)
	require.NoError(t, err)
	require.NotNil(t, file.StageID)
	assert.Equal(t, stage.ID, *file.StageID)

	// a stage from another project is rejected before any bytes land
	other := seedProject(t, client.ID, "App")
	foreign := seedStage(t, other.ID, "Intake", 1, models.StageStatusTodo)
	_, err = svc.Upload(project.ID, &foreign.ID, "logo.png", "image/png", strings.NewReader("img"), clientActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFile(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := newTestFileService(t)
	file, err := svc.Upload(project.ID, nil, "brief.pdf", "application/pdf", strings.NewReader("payload"), testActor)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(project.ID, file.ID, testActor))

	files, err := svc.ListFiles(project.ID)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, _, err = svc.Open(project.ID, file.ID)
	assert.Error(t, err)
}

func TestFileScopedToProject(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	other := seedProject(t, client.ID, "App")

	svc := newTestFileService(t)
	file, err := svc.Upload(project.ID, nil, "brief.pdf", "application/pdf", strings.NewReader("payload"), testActor)
	require.NoError(t, err)

	_, _, err = svc.Open(other.ID, file.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(other.ID, file.ID, testActor), ErrNotFound)
}
