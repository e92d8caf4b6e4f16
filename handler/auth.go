package handler

import (
	"time"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/context"
	"github.com/iamlouiesison/usefully-fin/pkg/jwt"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/service"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

// Register 注册并直接下发 access token
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, err := a.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	return a.issueToken(c, user)
}

// Login 邮箱密码登录
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, err := a.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return a.issueToken(c, user)
}

func (a *Auth) issueToken(c *gin.Context, user *models.Users) error {
	expire := time.Duration(a.Config.Jwt.ExpiresTime) * time.Second
	token, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), int64(user.ID), "access", expire)
	if err != nil {
		return err
	}

	response.Success(c, &types.TokenResponse{
		AccessToken: token,
		ExpiresIn:   a.Config.Jwt.ExpiresTime,
		User:        &types.UserSummary{ID: user.ID, Name: user.Name, AvatarURL: user.AvatarURL},
	})
	return nil
}
