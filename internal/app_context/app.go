package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/phuchoang/InteriorHub/internal/auth"
	"github.com/phuchoang/InteriorHub/internal/config"
	"github.com/phuchoang/InteriorHub/internal/mailer"
	"github.com/phuchoang/InteriorHub/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// S3 is the media storage client. Nil when storage credentials are not
	// configured; image uploads then fall back to storing raw base64 payloads.
	S3 *minio.Client
}
