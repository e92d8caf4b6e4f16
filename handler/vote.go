package handler

import (
	"net/http"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/middleware"
	"github.com/iamlouiesison/usefully-fin/pkg/context"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/service"

	"github.com/gin-gonic/gin"
)

type Vote struct {
	Config      *config.Config
	VoteService service.IVoteService
}

func (v *Vote) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(v.Config.Jwt.Secret))
	g := r.Group("/v1/assets")
	g.POST("/:asset_id/useful", authorize, context.Wrap(v.Toggle))
	g.GET("/:asset_id/useful", authorize, context.Wrap(v.Status))
}

// Toggle 「有用」投票开关，重复请求收敛到同一状态
func (v *Vote) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		return err
	}

	result, err := v.VoteService.Toggle(c.Request.Context(), uint64(userID), assetID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Status 当前用户是否已投
func (v *Vote) Status(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		return err
	}

	voted, err := v.VoteService.CheckVoteStatus(c.Request.Context(), uint64(userID), assetID)
	if err != nil {
		return err
	}
	count, err := v.VoteService.GetUsefulCount(c.Request.Context(), assetID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"voted": voted, "useful_count": count})
	return nil
}
