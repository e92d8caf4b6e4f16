package handler

import (
	"net/http"
	"strconv"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/middleware"
	"github.com/iamlouiesison/usefully-fin/pkg/context"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/service"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/gin-gonic/gin"
)

type Forum struct {
	Config       *config.Config
	ForumService service.IForumService
}

func (f *Forum) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))

	g := r.Group("/v1/assets")
	g.POST("/:asset_id/reviews", authorize, context.Wrap(f.CreateReview))
	g.GET("/:asset_id/reviews", context.Wrap(f.ListReviews))

	forum := r.Group("/v1/forum")
	forum.POST("/posts", authorize, context.Wrap(f.CreatePost))
	forum.GET("/posts", context.Wrap(f.ListPosts))
}

// CreateReview 给资源发表点评
func (f *Forum) CreateReview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		return err
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	review, err := f.ForumService.CreateReview(c.Request.Context(), uint64(userID), assetID, req.Body)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"id": review.ID})
	return nil
}

// ListReviews 资源点评列表
func (f *Forum) ListReviews(c *gin.Context) error {
	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		return err
	}

	page, pageSize := pagination(c)
	items, total, err := f.ForumService.ListReviews(c.Request.Context(), assetID, page, pageSize)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"reviews": items, "total": total})
	return nil
}

// CreatePost 发帖
func (f *Forum) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	post, err := f.ForumService.CreatePost(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"id": post.ID})
	return nil
}

// ListPosts 帖子列表
func (f *Forum) ListPosts(c *gin.Context) error {
	page, pageSize := pagination(c)
	result, err := f.ForumService.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(types.DefaultPageSize)))
	if pageSize > types.MaxPageSize {
		pageSize = types.MaxPageSize
	}
	return page, pageSize
}
