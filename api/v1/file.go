package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/services"
)

// fileService is wired by RegisterRoutes because it needs the blob store.
var fileService *services.FileService

// ListFiles returns the file metadata rows of a project
// @Router /projects/{id}/files [get]
func ListFiles(c *gin.Context) {
	files, err := fileService.ListFiles(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, files)
}

// UploadFile accepts a multipart upload for a project (optionally scoped
// to a stage via the stageId form field)
// @Router /projects/{id}/files [post]
func UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  gin.H{"file": []string{"a file upload is required"}},
		})
		return
	}

	var stageID *string
	if v := c.PostForm("stageId"); v != "" {
		stageID = &v
	}

	src, err := header.Open()
	if err != nil {
		serviceError(c, err)
		return
	}
	defer src.Close()

	file, err := fileService.Upload(
		c.Param("id"),
		stageID,
		header.Filename,
		header.Header.Get("Content-Type"),
		src,
		currentActor(c),
	)
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, file)
}

// DownloadFile streams a stored file back to the caller
// @Router /projects/{id}/files/{fileId} [get]
func DownloadFile(c *gin.Context) {
	file, rc, err := fileService.Open(c.Param("id"), c.Param("fileId"))
	if err != nil {
		serviceError(c, err)
		return
	}
	defer rc.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", "attachment; filename=\""+file.Name+"\"")
	c.DataFromReader(http.StatusOK, file.Size, contentType, rc, nil)
}

// DeleteFile removes a file row and its blob
// @Router /projects/{id}/files/{fileId} [delete]
func DeleteFile(c *gin.Context) {
	if err := fileService.Delete(c.Param("id"), c.Param("fileId"), currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "File deleted successfully",
	})
}
