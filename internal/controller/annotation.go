package controller

import (
	"errors"
	"net/http"

	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnnotationController struct {
	*baseController
}

const (
	ErrAnnotationNotFound = "annotation not found"
	ErrFileNotFound       = "file not found"
)

func (ac AnnotationController) GetAnnotationsByFile(ctx *gin.Context) {
	fileId := ctx.Params.ByName("fileId")
	if fileId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File ID is required", util.GenerateErrorMessages(errors.New("file ID is required"), "fileId"), nil)
		return
	}

	annotations, err := ac.app.Repository.Annotation.ListByFile(ctx, nil, fileId)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list annotations", util.GenerateErrorMessages(err), nil)
		return
	}

	if annotations == nil {
		annotations = []model.Annotation{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"annotations": annotations,
	})
}

func (ac AnnotationController) GetAnnotationsByProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	annotations, err := ac.app.Repository.Annotation.ListByProject(ctx, nil, projectId)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list annotations", util.GenerateErrorMessages(err), nil)
		return
	}

	if annotations == nil {
		annotations = []model.Annotation{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"annotations": annotations,
	})
}

func (ac AnnotationController) CreateAnnotation(ctx *gin.Context) {
	type Request struct {
		ProjectID string   `json:"project_id" form:"project_id" binding:"required"`
		FileID    string   `json:"file_id" form:"file_id" binding:"required"`
		Type      string   `json:"type" form:"type" binding:"required,strNotEmpty"`
		X         *float64 `json:"x" form:"x" binding:"required"`
		Y         *float64 `json:"y" form:"y" binding:"required"`
		Width     *float64 `json:"width" form:"width" binding:"required"`
		Height    *float64 `json:"height" form:"height" binding:"required"`
		Text      string   `json:"text" form:"text"`
		Color     string   `json:"color" form:"color"`
		Page      uint     `json:"page" form:"page"`
	}
	var body Request

	user, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Page == 0 {
		body.Page = 1
	}

	// Caller supplied ids are checked for existence before the row is
	// written, dangling annotations serve nobody.
	if _, err := ac.app.Repository.Project.GetById(ctx, nil, body.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project_id"), nil)
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := ac.app.Repository.ProjectFile.GetById(ctx, nil, body.FileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(errors.New(ErrFileNotFound), "file_id"), nil)
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	annotation, err := ac.app.Repository.Annotation.Create(ctx, nil, &model.Annotation{
		BaseAnnotateModel: model.BaseAnnotateModel{
			Page:      body.Page,
			X:         *body.X,
			Y:         *body.Y,
			Width:     *body.Width,
			Height:    *body.Height,
			ProjectID: body.ProjectID,
		},
		Type:   body.Type,
		Text:   body.Text,
		Color:  body.Color,
		FileID: file.ID,
		UserID: user.ID,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithCode(ctx, http.StatusCreated, gin.H{
		"annotation": annotation,
	})
}

func (ac AnnotationController) DeleteAnnotation(ctx *gin.Context) {
	annotationId := ctx.Params.ByName("annotationId")
	if annotationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Annotation ID is required", util.GenerateErrorMessages(errors.New("annotation ID is required"), "annotationId"), nil)
		return
	}

	user, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ac.app.Repository.Annotation.DeleteByAuthor(ctx, nil, annotationId, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Annotation not found", util.GenerateErrorMessages(errors.New(ErrAnnotationNotFound), "annotation"), nil)
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"message": "Annotation deleted",
	})
}
