package util

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/constant"
)

// Response is the uniform JSON envelope shared by every endpoint.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func BuildResponseSuccess(code int, message string, data any) Response {
	if message == "" {
		message = constant.REQUEST_SUCCESSFUL
	}

	return Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func ResponseSuccess(ctx *gin.Context, code int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(code, BuildResponseSuccess(code, message, data))
	ctx.Abort()
}

func BuildResponseFailed(code int, message string, err any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	// Sometimes we define err type any but err type is error
	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}

	if err == nil {
		err = gin.H{}
	}

	return Response{
		Code:    code,
		Message: message,
		Error:   err,
	}
}

func ResponseFailed(ctx *gin.Context, code int, message string, err any) {
	ctx.JSON(code, BuildResponseFailed(code, message, err))
	ctx.Abort()
}
