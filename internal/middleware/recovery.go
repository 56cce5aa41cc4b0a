package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/util"
)

// RecoveryHandler converts panics into the standard 500 envelope. The stack
// trace is included outside production.
func (m Middleware) RecoveryHandler(ctx *gin.Context, err any) {
	m.app.Logger.Errorf("Panic recovered: %v\n%s", err, debug.Stack())

	body := gin.H{"message": "Internal server error"}
	if !m.app.Config.IsProduction() {
		body["panic"] = err
		body["stack"] = string(debug.Stack())
	}

	util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal server error", body)
}
