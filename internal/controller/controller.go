package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	appcontext "github.com/phuchoang/InteriorHub/internal/app_context"
	"github.com/phuchoang/InteriorHub/internal/auth"
	"github.com/phuchoang/InteriorHub/internal/util"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Auth        *AuthController
	User        *UserController
	Category    *CategoryController
	Design      *DesignController
	Blog        *BlogController
	Information *InformationController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Auth:        &AuthController{baseController: bc},
		User:        &UserController{baseController: bc},
		Category:    &CategoryController{baseController: bc},
		Design:      &DesignController{baseController: bc},
		Blog:        &BlogController{baseController: bc},
		Information: &InformationController{baseController: bc},
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

// resolveImage stores an inline base64 image and returns its public URL.
// Already-hosted URLs pass through untouched. When storage is unconfigured
// or the upload fails, the raw base64 payload is kept so the request still
// succeeds.
func (b *baseController) resolveImage(ctx context.Context, image, directoryPath string) string {
	if image == "" || !util.IsBase64DataURI(image) {
		return image
	}

	if b.app.S3 == nil {
		b.app.Logger.Warn("Image storage not configured, storing raw base64 payload")
		return image
	}

	url, err := util.UploadBase64Image(ctx, image, &util.ImageUploadOptions{
		DirectoryPath: directoryPath,
		Bucket:        b.app.Config.Minio.BUCKET,
		S3:            b.app.S3,
	})
	if err != nil {
		b.app.Logger.Errorf("Image upload failed, storing raw base64 payload. Error: %v", err)
		return image
	}

	return url
}

func (b *baseController) resolveImages(ctx context.Context, images []string, directoryPath string) []string {
	resolved := make([]string, len(images))
	for i, image := range images {
		resolved[i] = b.resolveImage(ctx, image, directoryPath)
	}
	return resolved
}

// deleteStoredImage removes a previously stored asset. Cleanup is best
// effort: failures are logged and never surfaced to the caller.
func (b *baseController) deleteStoredImage(ctx context.Context, storedURL string) {
	if b.app.S3 == nil || storedURL == "" {
		return
	}

	objectName, ok := util.ObjectNameFromURL(b.app.S3, b.app.Config.Minio.BUCKET, storedURL)
	if !ok {
		return
	}

	if err := b.app.S3.RemoveObject(ctx, b.app.Config.Minio.BUCKET, objectName, minio.RemoveObjectOptions{}); err != nil {
		b.app.Logger.Errorf("Failed to delete stored image %s: %v", objectName, err)
	}
}

func (b *baseController) deleteStoredImages(ctx context.Context, storedURLs []string) {
	for _, url := range storedURLs {
		b.deleteStoredImage(ctx, url)
	}
}
