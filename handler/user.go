package handler

import (
	"net/http"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/middleware"
	"github.com/iamlouiesison/usefully-fin/pkg/context"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/service"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.PUT("/me", authorize, context.Wrap(u.UpdateProfile))
	g.GET("/:user_id", context.Wrap(u.Profile))
}

// Profile 用户主页
func (u *User) Profile(c *gin.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// Me 当前登录用户的主页
func (u *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// UpdateProfile 修改个人资料
func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	if err := u.UserService.UpdateProfile(c.Request.Context(), uint64(userID), &req); err != nil {
		return err
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}
