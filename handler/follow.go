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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/:user_id/follow", authorize, context.Wrap(f.Toggle))
	g.GET("/:user_id/follow", authorize, context.Wrap(f.Status))
	g.GET("/:user_id/followers/count", context.Wrap(f.FollowerCount))
	g.GET("/:user_id/following/count", context.Wrap(f.FollowingCount))
}

// Toggle 关注开关
func (f *Follow) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	result, err := f.FollowService.Toggle(c.Request.Context(), uint64(userID), targetID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Status 是否已关注
func (f *Follow) Status(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	following, err := f.FollowService.IsFollowing(c.Request.Context(), uint64(userID), targetID)
	if err != nil {
		return err
	}

	response.Success(c, &types.FollowStatusResponse{IsFollowing: following})
	return nil
}

// FollowerCount 粉丝数
func (f *Follow) FollowerCount(c *gin.Context) error {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	count, err := f.FollowService.GetFollowerCount(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}

// FollowingCount 关注数
func (f *Follow) FollowingCount(c *gin.Context) error {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	count, err := f.FollowService.GetFollowingCount(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}
