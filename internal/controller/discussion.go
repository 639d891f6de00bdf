package controller

import (
	"errors"
	"net/http"

	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiscussionController struct {
	*baseController
}

func (dc DiscussionController) GetDiscussionsByProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	discussions, err := dc.app.Repository.Discussion.ListByProject(ctx, nil, projectId)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list discussions", util.GenerateErrorMessages(err), nil)
		return
	}

	if discussions == nil {
		discussions = []model.Discussion{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"discussions": discussions,
	})
}

func (dc DiscussionController) CreateDiscussion(ctx *gin.Context) {
	type Request struct {
		ProjectID string `json:"project_id" form:"project_id" binding:"required"`
		Message   string `json:"message" form:"message" binding:"required,strNotEmpty"`
	}
	var body Request

	user, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID and message are required", util.GenerateErrorMessages(err), nil)
		return
	}

	// Existence is checked up front so a bad id reads as 404 instead of
	// tripping the foreign key.
	if _, err := dc.app.Repository.Project.GetById(ctx, nil, body.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project_id"), nil)
			return
		}

		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create discussion", util.GenerateErrorMessages(err), nil)
		return
	}

	discussion, err := dc.app.Repository.Discussion.Create(ctx, nil, &model.Discussion{
		ProjectID: body.ProjectID,
		UserID:    user.ID,
		Message:   body.Message,
	})
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create discussion", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithCode(ctx, http.StatusCreated, gin.H{
		"discussion": discussion,
	})
}
