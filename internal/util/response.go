package util

import (
	"net/http"

	constant "github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func BuildResponseSuccess(data any) Response {
	return Response{
		Success: true,
		Message: constant.REQUEST_SUCCESSFUL,
		Data:    data,
	}
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ResponseSuccessWithCode(ctx, http.StatusOK, data)
}

func ResponseSuccessWithCode(ctx *gin.Context, code int, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(code, BuildResponseSuccess(data))
	ctx.Abort()
}

func BuildResponseFailed(message string, err any, data any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}

	if err == nil {
		err = gin.H{}
	}

	if data == nil {
		data = gin.H{}
	}

	return Response{
		Success: false,
		Message: message,
		Error:   message,
		Errors:  err,
		Data:    data,
	}
}

func ResponseFailed(ctx *gin.Context, code int, message string, err any, data any) {
	ctx.JSON(code, BuildResponseFailed(message, err, data))
	ctx.Abort()
}
