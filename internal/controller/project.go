package controller

import (
	"errors"
	"net/http"

	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	*baseController
}

const (
	ErrProjectIdRequired = "project ID is required"
	ErrProjectNotFound   = "project not found"
	ErrNoFileProvided    = "no file provided"
	ErrNoFileSelected    = "no file selected"
	ErrInvalidFileType   = "invalid file type, only PDF and Excel files allowed"
)

func (pc ProjectController) GetProjectList(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projects, err := pc.app.Repository.Project.ListByOwner(ctx, nil, user.ID)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list projects", util.GenerateErrorMessages(err), nil)
		return
	}

	if projects == nil {
		projects = []model.Project{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects": projects,
	})
}

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	type Request struct {
		Name        string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		Description string `json:"description" form:"description" binding:"required,strNotEmpty"`
	}
	var body Request

	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.Create(ctx, nil, &model.Project{
		Name:        body.Name,
		Description: body.Description,
		UserID:      user.ID,
	})
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithCode(ctx, http.StatusCreated, gin.H{
		"project": project,
	})
}

func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByIdAndOwner(ctx, nil, projectId, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
			return
		}

		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) UploadProjectFile(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByIdAndOwner(ctx, nil, projectId, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
			return
		}

		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			util.ResponseFailed(ctx, http.StatusRequestEntityTooLarge,
				"File is larger than the maximum allowed size (50MB)",
				util.GenerateErrorMessages(err, "file"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusBadRequest, "No file provided", util.GenerateErrorMessages(errors.New(ErrNoFileProvided), "file"), nil)
		return
	}

	if file.Filename == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No file selected", util.GenerateErrorMessages(errors.New(ErrNoFileSelected), "file"), nil)
		return
	}

	ext := util.FileExtension(file.Filename)
	fileType, allowed := constant.AllowedUploadExtensions[ext]
	if !allowed {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid file type. Only PDF and Excel files allowed", util.GenerateErrorMessages(errors.New(ErrInvalidFileType), "file"), nil)
		return
	}

	sanitized := util.SanitizeFilename(file.Filename)
	storageName, err := util.AddUniquePrefixToFileName(sanitized)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store file", util.GenerateErrorMessages(err), nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read uploaded file", util.GenerateErrorMessages(err), nil)
		return
	}
	defer src.Close()

	size, err := pc.app.Storage.Save(ctx, storageName, src)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store file", util.GenerateErrorMessages(err), nil)
		return
	}

	projectFile, err := pc.app.Repository.ProjectFile.Create(ctx, nil, &model.ProjectFile{
		Name:      sanitized,
		FileType:  fileType,
		FilePath:  storageName,
		FileSize:  size,
		ProjectID: project.ID,
	})
	if err != nil {
		// drop the stored bytes if the record could not be written
		if removeErr := pc.app.Storage.Remove(ctx, storageName); removeErr != nil {
			pc.app.Logger.Errorf("Failed to remove stored file %s: %v", storageName, removeErr)
		}

		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to record file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithCode(ctx, http.StatusCreated, gin.H{
		"file": projectFile,
	})
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByIdAndOwner(ctx, nil, projectId, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
			return
		}

		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project", util.GenerateErrorMessages(err), nil)
		return
	}

	// Stored bytes are removed best effort, a missing object must not
	// block the delete.
	for _, file := range project.Files {
		if err := pc.app.Storage.Remove(ctx, file.FilePath); err != nil {
			pc.app.Logger.Errorf("Failed to remove stored file %s: %v", file.FilePath, err)
		}
	}

	if err := pc.app.Repository.Project.DeleteWithFiles(ctx, nil, project.ID); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"message": "Project deleted successfully",
	})
}
