package controller

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
)

type FileController struct {
	*baseController
}

// ServeUpload streams stored file bytes by generated name, regardless of
// which storage driver holds them.
func (fc FileController) ServeUpload(ctx *gin.Context) {
	filename := ctx.Params.ByName("filename")
	if filename == "" {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(errors.New(ErrFileNotFound), "filename"), nil)
		return
	}

	// names never contain separators, reject anything that tries
	if filepath.Base(filename) != filename {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(errors.New(ErrFileNotFound), "filename"), nil)
		return
	}

	src, size, err := fc.app.Storage.Open(ctx, filename)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(errors.New(ErrFileNotFound), "filename"), nil)
		return
	}
	defer src.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx.DataFromReader(http.StatusOK, size, contentType, src, nil)
}
