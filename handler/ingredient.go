package handler

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"

	"github.com/gin-gonic/gin"
)

type Ingredient struct {
	IngredientService service.IIngredientService
}

func (h *Ingredient) RegisterRouter(r gin.IRouter) {
	g := r.Group("/ingredients")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
}

// List 按名称前缀搜索食材
func (h *Ingredient) List(c *gin.Context) error {
	items, err := h.IngredientService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Ingredient) Get(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.IngredientService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
