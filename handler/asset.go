package handler

import (
	"net/http"
	"time"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/middleware"
	"github.com/iamlouiesison/usefully-fin/pkg/context"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/service"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/gin-gonic/gin"
)

type Asset struct {
	Config       *config.Config
	AssetService service.IAssetService
}

func (a *Asset) RegisterRouter(r gin.IRouter) {
	secret := []byte(a.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	viewer := middleware.OptionalAuth(secret)

	g := r.Group("/v1/assets")
	g.POST("", authorize, context.Wrap(a.Submit))
	g.GET("/feed", viewer, context.Wrap(a.Feed))
	g.GET("/:asset_id", viewer, context.Wrap(a.Detail))
}

// Submit 提交资源
func (a *Asset) Submit(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SubmitAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	asset, err := a.AssetService.Submit(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"id": asset.ID})
	return nil
}

// Feed 信息流，period 可取 24h / week / all
func (a *Asset) Feed(c *gin.Context) error {
	var req types.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}

	viewerID := uint64(context.GetViewerID(c))
	feed, err := a.AssetService.Feed(c.Request.Context(), viewerID, &req, time.Now())
	if err != nil {
		return err
	}

	response.Success(c, feed)
	return nil
}

// Detail 资源详情
func (a *Asset) Detail(c *gin.Context) error {
	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		return err
	}

	viewerID := uint64(context.GetViewerID(c))
	detail, err := a.AssetService.GetDetail(c.Request.Context(), viewerID, assetID)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}
