package appcontext

import (
	"github.com/Sovanra/DesignDeck/internal/ai"
	"github.com/Sovanra/DesignDeck/internal/auth"
	"github.com/Sovanra/DesignDeck/internal/config"
	filestorage "github.com/Sovanra/DesignDeck/internal/file_storage"
	"github.com/Sovanra/DesignDeck/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// JWTService manages JWT operations for authentication such as generate, verify token.
	JWTService auth.JWTInterface

	// Storage holds uploaded file bytes (local directory or object storage).
	Storage filestorage.Storage

	// AI is the upstream completion provider for design analysis.
	AI ai.CompletionProvider
}
