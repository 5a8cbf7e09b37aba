package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/models"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

type Recipe struct {
	Config          *config.Config
	RecipeService   service.IRecipeService
	RelationService service.IRelationService
	ShoppingService service.IShoppingListService
	UserService     service.IUserService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	active := middleware.ActiveUser(h.UserService)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/recipes")
	g.GET("", optional, context.Wrap(h.List))
	g.POST("", authorize, active, context.Wrap(h.Create))
	g.GET("/download_shopping_cart", authorize, active, context.Wrap(h.DownloadShoppingCart))
	g.GET("/:id", optional, context.Wrap(h.Get))
	g.PATCH("/:id", authorize, active, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, active, context.Wrap(h.Delete))
	g.GET("/:id/get-link", context.Wrap(h.GetLink))
	g.POST("/:id/favorite", authorize, active, context.Wrap(h.relation(models.RelationFavorite, true)))
	g.DELETE("/:id/favorite", authorize, active, context.Wrap(h.relation(models.RelationFavorite, false)))
	g.POST("/:id/shopping_cart", authorize, active, context.Wrap(h.relation(models.RelationShoppingCart, true)))
	g.DELETE("/:id/shopping_cart", authorize, active, context.Wrap(h.relation(models.RelationShoppingCart, false)))
}

// RegisterShortLinks mounts the public short link redirect outside /api.
func (h *Recipe) RegisterShortLinks(r gin.IRouter) {
	r.GET("/s/:code", context.Wrap(h.FollowShortLink))
}

// List 菜谱列表, 支持作者/标签/收藏/购物车过滤
func (h *Recipe) List(c *gin.Context) error {
	var q types.RecipeQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	page, err := h.RecipeService.List(c.Request.Context(), context.OptionalUserID(c), q)
	if err != nil {
		return err
	}
	response.Success(c, pageOf(c, page))
	return nil
}

func (h *Recipe) Get(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	recipe, err := h.RecipeService.Get(c.Request.Context(), context.OptionalUserID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.RecipeWriteRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	recipe, err := h.RecipeService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, recipe)
	return nil
}

func (h *Recipe) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.RecipeWriteRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	recipe, err := h.RecipeService.Update(c.Request.Context(), uid, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.RecipeService.Delete(c.Request.Context(), uid, id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

// relation returns the add or remove handler of one relation kind.
func (h *Recipe) relation(kind models.RelationKind, add bool) context.HandlerFunc {
	return func(c *gin.Context) error {
		uid, err := context.GetUserID(c)
		if err != nil {
			return err
		}
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		if !add {
			if err := h.RelationService.Remove(c.Request.Context(), uid, id, kind); err != nil {
				return err
			}
			response.NoContent(c)
			return nil
		}
		short, err := h.RelationService.Add(c.Request.Context(), uid, id, kind)
		if err != nil {
			return err
		}
		response.Created(c, short)
		return nil
	}
}

// DownloadShoppingCart 导出购物清单, 购物车为空时返回 204
func (h *Recipe) DownloadShoppingCart(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	doc, ok, err := h.ShoppingService.Export(c.Request.Context(), uid, c.Query("format"))
	if err != nil {
		return err
	}
	if !ok {
		response.NoContent(c)
		return nil
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
	return nil
}

func (h *Recipe) GetLink(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	link, err := h.RecipeService.ShortLink(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, types.ShortLinkResponse{ShortLink: link})
	return nil
}

func (h *Recipe) FollowShortLink(c *gin.Context) error {
	id, err := h.RecipeService.ResolveShortLink(c.Request.Context(), c.Param("code"))
	if err != nil {
		return err
	}
	target := strings.TrimRight(h.Config.ShortLink.BaseURL, "/") + "/recipes/" + strconv.FormatUint(id, 10)
	c.Redirect(http.StatusFound, target)
	return nil
}
