package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Health(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"app":         util.GetAppName(),
		"status":      "ok",
		"environment": ic.app.Config.ENV,
	})
}

// SpaFallback serves the pre-built frontend bundle. Unknown API paths get a
// JSON 404, everything else falls through to index.html so the client
// router can take over.
func (ic IndexController) SpaFallback(distDir string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			util.ResponseFailed(ctx, http.StatusNotFound, "Resource not found", nil, nil)
			return
		}

		requested := filepath.Join(distDir, filepath.Clean("/"+ctx.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			ctx.File(requested)
			return
		}

		ctx.File(filepath.Join(distDir, "index.html"))
	}
}
