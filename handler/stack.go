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

type Stack struct {
	Config       *config.Config
	StackService service.IStackService
}

func (s *Stack) RegisterRouter(r gin.IRouter) {
	secret := []byte(s.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	viewer := middleware.OptionalAuth(secret)

	g := r.Group("/v1/stacks")
	g.POST("", authorize, context.Wrap(s.Create))
	g.GET("/:stack_id", viewer, context.Wrap(s.Detail))
	g.POST("/:stack_id/items", authorize, context.Wrap(s.ToggleItem))

	r.GET("/v1/users/:user_id/stacks", viewer, context.Wrap(s.ListByOwner))
}

// Create 创建收藏夹
func (s *Stack) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	stack, err := s.StackService.Create(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, stack)
	return nil
}

// ToggleItem 把资源加入/移出收藏夹，仅限所有者
func (s *Stack) ToggleItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	stackID, err := parseIDParam(c, "stack_id")
	if err != nil {
		return err
	}

	var req types.ToggleStackItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	result, err := s.StackService.ToggleItem(c.Request.Context(), uint64(userID), stackID, req.AssetID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Detail 收藏夹详情
func (s *Stack) Detail(c *gin.Context) error {
	stackID, err := parseIDParam(c, "stack_id")
	if err != nil {
		return err
	}

	viewerID := uint64(context.GetViewerID(c))
	detail, err := s.StackService.GetDetail(c.Request.Context(), viewerID, stackID)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

// ListByOwner 某用户的收藏夹列表
func (s *Stack) ListByOwner(c *gin.Context) error {
	ownerID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	viewerID := uint64(context.GetViewerID(c))
	stacks, err := s.StackService.ListByOwner(c.Request.Context(), viewerID, ownerID)
	if err != nil {
		return err
	}

	response.Success(c, stacks)
	return nil
}
