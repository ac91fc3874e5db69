package handler

import (
	"AppNotas/middleware"
	"AppNotas/pkg/context"
	"AppNotas/pkg/response"
	"AppNotas/service"
	"AppNotas/types"

	"github.com/gin-gonic/gin"
)

type Category struct {
	UserService     service.IUserService
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.UserService)
	g := r.Group("/categories")
	g.Use(authorize)
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.PUT("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Category) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	categories, err := h.CategoryService.ListVisible(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		return context.BindError(err, nil)
	}

	category, err := h.CategoryService.Create(c.Request.Context(), uid, req.Name)
	if err != nil {
		return err
	}
	response.Created(c, types.CategoryResponse{
		Message:  service.MsgCategoryCreated,
		Category: category,
	})
	return nil
}

func (h *Category) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, service.MsgCategoryNotFound)
	if err != nil {
		return err
	}

	var req types.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		return context.BindError(err, nil)
	}

	category, err := h.CategoryService.Update(c.Request.Context(), uid, id, req.Name)
	if err != nil {
		return err
	}
	response.Success(c, types.CategoryResponse{
		Message:  service.MsgCategoryUpdated,
		Category: category,
	})
	return nil
}

func (h *Category) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, service.MsgCategoryNotFound)
	if err != nil {
		return err
	}

	if err := h.CategoryService.Delete(c.Request.Context(), uid, id); err != nil {
		return err
	}
	response.Message(c, service.MsgCategoryDeleted)
	return nil
}
