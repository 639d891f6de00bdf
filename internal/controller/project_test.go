package controller_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProject(t *testing.T) {
	ts := newTestServer(t)
	token, userId := ts.registerUser(t, "alice@example.com")

	projectId := ts.createProject(t, token, "Kitchen Remodel")

	w := ts.doJSON(t, http.MethodGet, "/api/projects/"+projectId, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var project struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		UserID string `json:"userId"`
	}
	dataField(t, w, "project", &project)
	assert.Equal(t, projectId, project.ID)
	assert.Equal(t, "Kitchen Remodel", project.Name)
	assert.Equal(t, userId, project.UserID)

	w = ts.doJSON(t, http.MethodGet, "/api/projects", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []struct {
		ID string `json:"id"`
	}
	dataField(t, w, "projects", &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, projectId, projects[0].ID)
}

func TestCreateProjectValidation(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")

	w := ts.doJSON(t, http.MethodPost, "/api/projects", gin.H{
		"description": "no name",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.doJSON(t, http.MethodPost, "/api/projects", gin.H{
		"name":        "   ",
		"description": "whitespace name",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectOwnerIsolation(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.registerUser(t, "alice@example.com")
	bobToken, _ := ts.registerUser(t, "bob@example.com")

	projectId := ts.createProject(t, aliceToken, "Kitchen Remodel")

	// Bob sees neither the project nor a hint that it exists.
	w := ts.doJSON(t, http.MethodGet, "/api/projects/"+projectId, nil, bobToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.doJSON(t, http.MethodDelete, "/api/projects/"+projectId, nil, bobToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.doJSON(t, http.MethodGet, "/api/projects", nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []struct {
		ID string `json:"id"`
	}
	dataField(t, w, "projects", &projects)
	assert.Empty(t, projects)

	// Alice still owns it.
	w = ts.doJSON(t, http.MethodGet, "/api/projects/"+projectId, nil, aliceToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	w := ts.doJSON(t, http.MethodGet, "/api/projects", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.doJSON(t, http.MethodPost, "/api/projects", gin.H{
		"name":        "Kitchen Remodel",
		"description": "desc",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadProjectFile(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")
	projectId := ts.createProject(t, token, "Kitchen Remodel")

	content := []byte("%PDF-1.4 fake report body")
	w := ts.doUpload(t, fmt.Sprintf("/api/projects/%s/upload", projectId), "report.pdf", content, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var file struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		FileType string `json:"fileType"`
		FilePath string `json:"filePath"`
		FileSize int64  `json:"fileSize"`
	}
	dataField(t, w, "file", &file)
	assert.Equal(t, "report.pdf", file.Name)
	assert.Equal(t, "pdf", file.FileType)
	assert.Equal(t, int64(len(content)), file.FileSize)

	// The bytes are on disk under the generated storage name.
	stored, err := os.ReadFile(filepath.Join(ts.uploadDir, file.FilePath))
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	// And they stream back through the static route.
	req := httptest.NewRequest(http.MethodGet, "/static/uploads/"+file.FilePath, nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes())

	// The project now lists the file.
	w = ts.doJSON(t, http.MethodGet, "/api/projects/"+projectId, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var project struct {
		Files []struct {
			ID string `json:"id"`
		} `json:"files"`
	}
	dataField(t, w, "project", &project)
	require.Len(t, project.Files, 1)
	assert.Equal(t, file.ID, project.Files[0].ID)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")
	projectId := ts.createProject(t, token, "Kitchen Remodel")

	w := ts.doUpload(t, fmt.Sprintf("/api/projects/%s/upload", projectId), "malware.exe", []byte("MZ"), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was stored.
	entries, err := os.ReadDir(ts.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadExcelFile(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")
	projectId := ts.createProject(t, token, "Kitchen Remodel")

	w := ts.doUpload(t, fmt.Sprintf("/api/projects/%s/upload", projectId), "budget.xlsx", []byte("PK fake sheet"), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var file struct {
		FileType string `json:"fileType"`
	}
	dataField(t, w, "file", &file)
	assert.Equal(t, "excel", file.FileType)
}

func TestUploadToForeignProject(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.registerUser(t, "alice@example.com")
	bobToken, _ := ts.registerUser(t, "bob@example.com")
	projectId := ts.createProject(t, aliceToken, "Kitchen Remodel")

	w := ts.doUpload(t, fmt.Sprintf("/api/projects/%s/upload", projectId), "plan.pdf", []byte("%PDF-1.4"), bobToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBodySizeLimit(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")
	projectId := ts.createProject(t, token, "Kitchen Remodel")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/projects/%s/upload", projectId), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	req.ContentLength = ts.app.Config.Upload.MaxBytes + 1

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestDeleteProjectCascades(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")
	projectId := ts.createProject(t, token, "Kitchen Remodel")
	fileId, storageName := ts.uploadFile(t, token, projectId, "plan.pdf", []byte("%PDF-1.4 fake"))
	_, secondStorageName := ts.uploadFile(t, token, projectId, "budget.xlsx", []byte("PK fake sheet"))

	w := ts.doJSON(t, http.MethodPost, "/api/annotations", gin.H{
		"project_id": projectId,
		"file_id":    fileId,
		"type":       "note",
		"x":          10.0,
		"y":          20.0,
		"width":      5.0,
		"height":     5.0,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.doJSON(t, http.MethodPost, "/api/discussions", gin.H{
		"project_id": projectId,
		"message":    "looks good",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.doJSON(t, http.MethodDelete, "/api/projects/"+projectId, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Project row, child rows and stored bytes are all gone.
	w = ts.doJSON(t, http.MethodGet, "/api/projects/"+projectId, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := os.Stat(filepath.Join(ts.uploadDir, storageName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(ts.uploadDir, secondStorageName))
	assert.True(t, os.IsNotExist(err))

	w = ts.doJSON(t, http.MethodGet, "/api/annotations/project/"+projectId, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var annotations []struct{}
	dataField(t, w, "annotations", &annotations)
	assert.Empty(t, annotations)

	w = ts.doJSON(t, http.MethodGet, "/api/discussions/project/"+projectId, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var discussions []struct{}
	dataField(t, w, "discussions", &discussions)
	assert.Empty(t, discussions)
}
