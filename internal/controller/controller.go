package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	appcontext "github.com/Sovanra/DesignDeck/internal/app_context"
	"github.com/Sovanra/DesignDeck/internal/auth"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index      *IndexController
	Auth       *AuthController
	Project    *ProjectController
	File       *FileController
	Annotation *AnnotationController
	Discussion *DiscussionController
	AIDesign   *AIDesignController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:      &IndexController{baseController: bc},
		Auth:       &AuthController{baseController: bc},
		Project:    &ProjectController{baseController: bc},
		File:       &FileController{baseController: bc},
		Annotation: &AnnotationController{baseController: bc},
		Discussion: &DiscussionController{baseController: bc},
		AIDesign:   &AIDesignController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}
