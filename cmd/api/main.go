package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	appcontext "github.com/phuchoang/InteriorHub/internal/app_context"
	"github.com/phuchoang/InteriorHub/internal/auth"
	"github.com/phuchoang/InteriorHub/internal/config"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/database"
	"github.com/phuchoang/InteriorHub/internal/env"
	filestorage "github.com/phuchoang/InteriorHub/internal/file_storage"
	"github.com/phuchoang/InteriorHub/internal/mailer"
	"github.com/phuchoang/InteriorHub/internal/middleware"
	ratelimiter "github.com/phuchoang/InteriorHub/internal/rate_limiter"
	"github.com/phuchoang/InteriorHub/internal/repository"
	"github.com/phuchoang/InteriorHub/internal/route"
	"github.com/phuchoang/InteriorHub/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()
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

	// Media storage is optional. Without it, uploaded images are kept as raw
	// base64 payloads instead of public URLs.
	var s3 *minio.Client
	if cfg.Minio.Configured() {
		s3, err = filestorage.NewMinioClient(&cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}
	} else {
		logger.Warn("Minio credentials not set, image uploads will not be stored")
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
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService, s3)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(_middleware.RecoveryHandler))

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.FrontendURLs
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.NoRoute(func(ctx *gin.Context) {
		util.ResponseFailed(ctx, http.StatusNotFound, "Route not found", gin.H{
			"path": ctx.Request.URL.Path,
		})
	})

	rApi := r.Group("/api")

	route.V1_Index(rApi, _controller.Index)
	route.V1_Auth(rApi, _controller.Auth, _middleware)
	route.V1_User(rApi, _controller.User, _middleware)
	route.V1_Category(rApi, _controller.Category, _middleware)
	route.V1_Design(rApi, _controller.Design, _middleware)
	route.V1_Blog(rApi, _controller.Blog, _middleware)
	route.V1_Information(rApi, _controller.Information, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
