package controller

import (
	"errors"
	"net/http"

	"github.com/Sovanra/DesignDeck/internal/auth"
	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

const (
	ErrUserAlreadyExists  = "user already exists"
	ErrInvalidCredentials = "invalid credentials"
)

func (ac AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Name     string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required,min=6"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	existing, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}
	if existing != nil && existing.ID != "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User already exists", util.GenerateErrorMessages(errors.New(ErrUserAlreadyExists), "email"), nil)
		return
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.Create(ctx, nil, &model.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: hashed,
		Role:     constant.UserRoleUser,
	})
	if err != nil {
		// unique email index can still race the existence check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "User already exists", util.GenerateErrorMessages(errors.New(ErrUserAlreadyExists), "email"), nil)
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: user.ID})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to establish session", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithCode(ctx, http.StatusCreated, gin.H{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	// Same generic error whether the email is unknown or the password is
	// wrong, so login cannot probe for registered emails.
	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid credentials", util.GenerateErrorMessages(errors.New(ErrInvalidCredentials)), nil)
		return
	}

	if !util.ComparePassword(user.Password, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid credentials", util.GenerateErrorMessages(errors.New(ErrInvalidCredentials)), nil)
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: user.ID})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to establish session", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// RefreshAccessToken trades a valid refresh token (Authorization:
// Refresh <token>) for a fresh token pair. The account is re-resolved so a
// deleted user cannot keep minting sessions.
func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	claims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if claims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid refresh token type", util.GenerateErrorMessages(errors.New("invalid refresh token type"), "unauthorized"), nil)
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, claims.User.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(errors.New("account no longer exists"), "unauthorized"), nil)
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: user.ID})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to refresh session", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"token":        newAccessToken,
		"refreshToken": newRefreshToken,
	})
}

// Logout is a server-side no-op in stateless token mode. Clients drop the
// token. Calling it twice is fine.
func (ac AuthController) Logout(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "Logged out",
	})
}

func (ac AuthController) Me(ctx *gin.Context) {
	authUser, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err), nil)
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get user", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}
