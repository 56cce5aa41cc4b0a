package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
)

type AuthController struct {
	*baseController
}

func (ac AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required,cmin=8"`
		FullName string `json:"fullname" form:"fullname" binding:"required,strNotEmpty,cmax=100"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	hashedPassword, err := util.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err))
		return
	}

	user, err := ac.app.Repository.User.CheckDupAndCreate(ctx, nil, &model.User{
		Email:    body.Email,
		Password: hashedPassword,
		FullName: body.FullName,
		Role:     constant.UserRoleUser,
		IsActive: true,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to register", util.GenerateErrorMessages(err, "email"))
		return
	}

	refreshToken, accessToken, err := ac.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "Register successful", gin.H{
		"user":         user,
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil {
		ac.app.Logger.Debugf("Login failed for %s: %v", body.Email, err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", util.GenerateErrorMessages(errors.New("invalid email or password")))
		return
	}

	if !util.ComparePassword(user.Password, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", util.GenerateErrorMessages(errors.New("invalid email or password")))
		return
	}

	if !user.IsActive {
		util.ResponseFailed(ctx, http.StatusForbidden, "Account is deactivated", util.GenerateErrorMessages(errors.New("account is deactivated")))
		return
	}

	refreshToken, accessToken, err := ac.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to login", util.GenerateErrorMessages(err))
		return
	}

	if err := ac.app.Repository.User.UpdateLastLogin(ctx, nil, user.ID); err != nil {
		// Not part of the login contract, keep going.
		ac.app.Logger.Errorf("Failed to update last login for %s: %v", user.ID, err)
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Login successful", gin.H{
		"user":         user,
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) Logout(ctx *gin.Context) {
	user, err := ac.getAuthUser(ctx)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err))
		return
	}

	if err := ac.app.Repository.JWT.RevokeByUserId(ctx, nil, user.ID); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to logout", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Logout successful", nil)
}

func (ac AuthController) Me(ctx *gin.Context) {
	authUser, err := ac.getAuthUser(ctx)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err))
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"user": user,
	})
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err))
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err))
		return
	}

	if jwtClaims == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("jwt claim empty")))
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")))
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.Repository.JWT.RefreshToken(ctx, nil, refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err))
		return
	}

	if newRefreshToken == nil || newAccessToken == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("failed to refresh token")))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"refreshToken": newRefreshToken,
		"accessToken":  newAccessToken,
	})
}
