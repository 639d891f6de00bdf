package main

import (
	"github.com/Sovanra/DesignDeck/internal/ai"
	appcontext "github.com/Sovanra/DesignDeck/internal/app_context"
	"github.com/Sovanra/DesignDeck/internal/auth"
	"github.com/Sovanra/DesignDeck/internal/config"
	"github.com/Sovanra/DesignDeck/internal/controller"
	"github.com/Sovanra/DesignDeck/internal/database"
	"github.com/Sovanra/DesignDeck/internal/env"
	filestorage "github.com/Sovanra/DesignDeck/internal/file_storage"
	"github.com/Sovanra/DesignDeck/internal/middleware"
	ratelimiter "github.com/Sovanra/DesignDeck/internal/rate_limiter"
	"github.com/Sovanra/DesignDeck/internal/repository"
	"github.com/Sovanra/DesignDeck/internal/route"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	if err := database.Migrate(db); err != nil {
		logger.Panic(err)
	}

	if err := database.SeedDemoUser(db); err != nil {
		logger.Panic(err)
	}

	var storage filestorage.Storage
	switch cfg.Upload.Driver {
	case "minio":
		storage, err = filestorage.NewMinioStorage(cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}
	default:
		storage, err = filestorage.NewLocalStorage(cfg.Upload.Directory)
		if err != nil {
			logger.Panic(err)
		}
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err = v.RegisterValidation("cmin", util.CustomMin); err != nil {
			return
		}
		if err = v.RegisterValidation("cmax", util.CustomMax); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		JWTService: jwtService,
		Storage:    storage,
		AI:         ai.NewOpenAIProvider(cfg.AI),
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)
	r.Use(_middleware.BodySizeLimitMiddleware)

	_controller := controller.NewController(&app)

	rApi := r.Group("/api")
	rApi.GET("/health", _controller.Index.Health)

	route.Auth(rApi, _controller.Auth, _middleware)
	route.Projects(rApi, _controller.Project, _middleware)
	route.Annotations(rApi, _controller.Annotation, _middleware)
	route.Discussions(rApi, _controller.Discussion, _middleware)
	route.AIDesign(rApi, _controller.AIDesign, _middleware)

	r.GET("/static/uploads/:filename", _controller.File.ServeUpload)

	// Everything else is the single-page app.
	r.NoRoute(_controller.Index.SpaFallback("dist"))

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
