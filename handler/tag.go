package handler

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"

	"github.com/gin-gonic/gin"
)

type Tag struct {
	TagService service.ITagService
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	g := r.Group("/tags")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
}

func (h *Tag) List(c *gin.Context) error {
	tags, err := h.TagService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}

func (h *Tag) Get(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tag, err := h.TagService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tag)
	return nil
}
