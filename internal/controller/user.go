package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/gorm"
)

type UserController struct {
	*baseController
}

func (uc UserController) ListUsers(ctx *gin.Context) {
	page, pageSize := util.ParsePageQuery(ctx)
	search := ctx.Query("search")

	users, totalUsers, err := uc.app.Repository.User.List(ctx, nil, search, page, pageSize)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list users", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"users":      users,
		"pagination": util.NewPagination(page, pageSize, totalUsers),
	})
}

func (uc UserController) Profile(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err))
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"user": user,
	})
}

func (uc UserController) GetUserById(ctx *gin.Context) {
	userId := ctx.Param("userId")
	if err := uuid.Validate(userId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid user id", util.GenerateErrorMessages(err, "userId"))
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err))
			return
		}
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get user", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"user": user,
	})
}

func (uc UserController) CreateUser(ctx *gin.Context) {
	type Request struct {
		Email    string            `json:"email" form:"email" binding:"required,email"`
		Password string            `json:"password" form:"password" binding:"required,cmin=8"`
		FullName string            `json:"fullname" form:"fullname" binding:"required,strNotEmpty,cmax=100"`
		Role     constant.UserRole `json:"role" form:"role" binding:"omitempty,oneof=admin user"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	if body.Role == "" {
		body.Role = constant.UserRoleUser
	}

	hashedPassword, err := util.HashPassword(body.Password)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create user", util.GenerateErrorMessages(err))
		return
	}

	user, err := uc.app.Repository.User.CheckDupAndCreate(ctx, nil, &model.User{
		Email:    body.Email,
		Password: hashedPassword,
		FullName: body.FullName,
		Role:     body.Role,
		IsActive: true,
	})
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create user", util.GenerateErrorMessages(err, "email"))
		return
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "User created", gin.H{
		"user": user,
	})
}

func (uc UserController) UpdateUser(ctx *gin.Context) {
	userId := ctx.Param("userId")
	if err := uuid.Validate(userId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid user id", util.GenerateErrorMessages(err, "userId"))
		return
	}

	type Request struct {
		FullName *string            `json:"fullname" form:"fullname" binding:"omitempty,strNotEmpty,cmax=100"`
		Password *string            `json:"password" form:"password" binding:"omitempty,cmin=8"`
		Role     *constant.UserRole `json:"role" form:"role" binding:"omitempty,oneof=admin user"`
		IsActive *bool              `json:"isActive" form:"isActive"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	updates := map[string]any{}
	if body.FullName != nil {
		updates["full_name"] = *body.FullName
	}
	if body.Password != nil {
		hashedPassword, err := util.HashPassword(*body.Password)
		if err != nil {
			uc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update user", util.GenerateErrorMessages(err))
			return
		}
		updates["password"] = hashedPassword
	}
	if body.Role != nil {
		updates["role"] = *body.Role
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	user, err := uc.app.Repository.User.Update(ctx, nil, userId, updates)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err))
			return
		}
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update user", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "User updated", gin.H{
		"user": user,
	})
}

func (uc UserController) DeleteUser(ctx *gin.Context) {
	userId := ctx.Param("userId")
	if err := uuid.Validate(userId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid user id", util.GenerateErrorMessages(err, "userId"))
		return
	}

	if err := uc.app.Repository.User.Delete(ctx, nil, userId); err != nil {
		if err == gorm.ErrRecordNotFound {
			util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err))
			return
		}
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete user", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "User deleted", nil)
}
