package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config        *config.Config
	UserService   service.IUserService
	FollowService service.IFollowService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	active := middleware.ActiveUser(u.UserService)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/users")
	g.GET("", optional, context.Wrap(u.List))
	g.GET("/me", authorize, active, context.Wrap(u.Me))
	g.GET("/subscriptions", authorize, active, context.Wrap(u.Subscriptions))
	g.GET("/:id", optional, context.Wrap(u.Get))
	g.POST("/:id/subscribe", authorize, active, context.Wrap(u.Subscribe))
	g.DELETE("/:id/subscribe", authorize, active, context.Wrap(u.Unsubscribe))
}

func (u *User) List(c *gin.Context) error {
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	page, err := u.UserService.List(c.Request.Context(), context.OptionalUserID(c), q)
	if err != nil {
		return err
	}
	response.Success(c, pageOf(c, page))
	return nil
}

func (u *User) Get(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	profile, err := u.UserService.Get(c.Request.Context(), context.OptionalUserID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.Me(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

// Subscriptions 我关注的作者及其菜谱预览
func (u *User) Subscriptions(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.SubscriptionQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	page, err := u.FollowService.ListSubscriptions(c.Request.Context(), uid, q)
	if err != nil {
		return err
	}
	response.Success(c, pageOf(c, page))
	return nil
}

func (u *User) Subscribe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, err := queryRecipesLimit(c)
	if err != nil {
		return err
	}
	sub, err := u.FollowService.Subscribe(c.Request.Context(), uid, id, limit)
	if err != nil {
		return err
	}
	response.Created(c, sub)
	return nil
}

func (u *User) Unsubscribe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := u.FollowService.Unsubscribe(c.Request.Context(), uid, id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func queryRecipesLimit(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery("recipes_limit")
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errs.InvalidField("recipes_limit", errs.CodeInvalidRecipesLimit, "recipes_limit must be an integer")
	}
	return &n, nil
}
