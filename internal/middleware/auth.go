package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/auth"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/util"
)

// AuthMiddleware has two gates: the bearer token must be a valid access
// token, and the user it references must still exist and be active.
func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err))
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err))
		ctx.Abort()
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid access token type", util.GenerateErrorMessages(errors.New("invalid access token type")))
		ctx.Abort()
		return
	}

	user, err := m.app.Repository.User.GetById(ctx, nil, claim.User.ID)
	if err != nil {
		m.app.Logger.Debugf("Token user not found: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(errors.New("account no longer exists")))
		ctx.Abort()
		return
	}

	if !user.IsActive {
		util.ResponseFailed(ctx, http.StatusForbidden, "Account is deactivated", util.GenerateErrorMessages(errors.New("account is deactivated")))
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

// AdminMiddleware must run after AuthMiddleware.
func (m Middleware) AdminMiddleware(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(errors.New("authentication required")))
		ctx.Abort()
		return
	}

	payload, ok := user.(auth.JWTPayload)
	if !ok || payload.Role != constant.UserRoleAdmin {
		util.ResponseFailed(ctx, http.StatusForbidden, "Admin privileges required", util.GenerateErrorMessages(errors.New("admin privileges required")))
		ctx.Abort()
		return
	}

	ctx.Next()
}
