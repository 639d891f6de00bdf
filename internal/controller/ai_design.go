package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Sovanra/DesignDeck/internal/ai"
	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AIDesignController struct {
	*baseController
}

const (
	ErrAINotConfigured = "OpenAI API not configured"
	// Analysis looks at this many project files at most.
	maxAnalyzedFiles = 3
)

// resolves the project for the authenticated caller, writing the
// 401/404/500 response itself when it returns nil.
func (aic AIDesignController) getOwnedProject(ctx *gin.Context) *model.Project {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return nil
	}

	user, err := aic.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return nil
	}

	project, err := aic.app.Repository.Project.GetByIdAndOwner(ctx, nil, projectId, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
			return nil
		}

		aic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project", util.GenerateErrorMessages(err), nil)
		return nil
	}

	return project
}

func (aic AIDesignController) requireProvider(ctx *gin.Context) bool {
	if !aic.app.AI.Configured() {
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "OpenAI API not configured",
			util.GenerateErrorMessages(errors.New(ErrAINotConfigured)), gin.H{
				"message": "Please set OPENAI_API_KEY environment variable to use AI features",
			})
		return false
	}
	return true
}

// buildFileContext extracts text from the project's PDF files to ground the
// prompt. Best effort only, unreadable files degrade to empty context.
func (aic AIDesignController) buildFileContext(ctx *gin.Context, project *model.Project) (string, int) {
	fileContext := ""
	analyzed := 0

	for _, file := range project.Files {
		if analyzed >= maxAnalyzedFiles {
			break
		}
		analyzed++

		if file.FileType != constant.FileTypePdf {
			continue
		}

		src, _, err := aic.app.Storage.Open(ctx, file.FilePath)
		if err != nil {
			aic.app.Logger.Debugf("Skipping file %s for analysis: %v", file.FilePath, err)
			continue
		}

		text, err := ai.ExtractPdfText(src, ai.MaxContextChars)
		src.Close()
		if err != nil {
			aic.app.Logger.Debugf("Failed to extract text from %s: %v", file.FilePath, err)
			continue
		}

		if text != "" {
			fileContext += fmt.Sprintf("\n\nFile: %s\nContent:\n%s\n", file.Name, text)
		}
	}

	if len(fileContext) > ai.MaxContextChars {
		fileContext = fileContext[:ai.MaxContextChars]
	}

	return fileContext, len(project.Files)
}

func (aic AIDesignController) Analyze(ctx *gin.Context) {
	project := aic.getOwnedProject(ctx)
	if project == nil {
		return
	}

	if !aic.requireProvider(ctx) {
		return
	}

	fileContext, filesAnalyzed := aic.buildFileContext(ctx, project)

	analysis, err := aic.app.AI.Complete(ctx, ai.AnalyzePrompt(project.Name, project.Description, fileContext))
	if err != nil {
		aic.app.Logger.Errorf("AI analysis failed: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Analysis failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projectId":     project.ID,
		"analysis":      analysis,
		"filesAnalyzed": filesAnalyzed,
	})
}

func (aic AIDesignController) ColorPalette(ctx *gin.Context) {
	type Request struct {
		Style    string `json:"style" form:"style"`
		RoomType string `json:"room_type" form:"room_type"`
	}
	var body Request

	project := aic.getOwnedProject(ctx)
	if project == nil {
		return
	}

	if !aic.requireProvider(ctx) {
		return
	}

	// body is optional, defaults mirror a typical first request
	_ = ctx.ShouldBind(&body)
	if body.Style == "" {
		body.Style = "modern"
	}
	if body.RoomType == "" {
		body.RoomType = "living room"
	}

	palette, err := aic.app.AI.Complete(ctx, ai.ColorPalettePrompt(project.Name, project.Description, body.Style, body.RoomType))
	if err != nil {
		aic.app.Logger.Errorf("AI color palette failed: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Color palette generation failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"palette":  palette,
		"style":    body.Style,
		"roomType": body.RoomType,
	})
}

func (aic AIDesignController) MaterialRecommendations(ctx *gin.Context) {
	type Request struct {
		Budget         string `json:"budget" form:"budget"`
		Sustainability bool   `json:"sustainability" form:"sustainability"`
	}
	var body Request

	project := aic.getOwnedProject(ctx)
	if project == nil {
		return
	}

	if !aic.requireProvider(ctx) {
		return
	}

	_ = ctx.ShouldBind(&body)
	if body.Budget == "" {
		body.Budget = "medium"
	}

	recommendations, err := aic.app.AI.Complete(ctx, ai.MaterialPrompt(project.Name, project.Description, body.Budget, body.Sustainability))
	if err != nil {
		aic.app.Logger.Errorf("AI material recommendations failed: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Material recommendation failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"recommendations":     recommendations,
		"budgetLevel":         body.Budget,
		"sustainabilityFocus": body.Sustainability,
	})
}

func (aic AIDesignController) CostEstimate(ctx *gin.Context) {
	type Request struct {
		SquareFootage float64 `json:"square_footage" form:"square_footage"`
		Scope         string  `json:"scope" form:"scope"`
		Location      string  `json:"location" form:"location"`
	}
	var body Request

	project := aic.getOwnedProject(ctx)
	if project == nil {
		return
	}

	if !aic.requireProvider(ctx) {
		return
	}

	_ = ctx.ShouldBind(&body)
	if body.Scope == "" {
		body.Scope = "full renovation"
	}
	if body.Location == "" {
		body.Location = "United States"
	}

	estimate, err := aic.app.AI.Complete(ctx, ai.CostEstimatePrompt(project.Name, project.Description, body.SquareFootage, body.Scope, body.Location))
	if err != nil {
		aic.app.Logger.Errorf("AI cost estimate failed: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Cost estimation failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"estimate":      estimate,
		"squareFootage": body.SquareFootage,
		"scope":         body.Scope,
		"location":      body.Location,
	})
}

func (aic AIDesignController) QuickSuggestion(ctx *gin.Context) {
	type Request struct {
		Question string `json:"question" form:"question" binding:"required,strNotEmpty"`
	}
	var body Request

	if !aic.requireProvider(ctx) {
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Question is required", util.GenerateErrorMessages(err), nil)
		return
	}

	suggestion, err := aic.app.AI.Complete(ctx, ai.QuickSuggestionPrompt(body.Question))
	if err != nil {
		aic.app.Logger.Errorf("AI quick suggestion failed: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Suggestion failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"suggestion": suggestion,
	})
}
