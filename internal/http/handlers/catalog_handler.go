package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vesteevolta/backend/internal/dto"
	"github.com/vesteevolta/backend/internal/http/handlers/common"
	"github.com/vesteevolta/backend/internal/service"
)

// CatalogHandler serves the category endpoints.
type CatalogHandler struct {
	categories *service.CategoryService
}

func NewCatalogHandler(categories *service.CategoryService) *CatalogHandler {
	return &CatalogHandler{categories: categories}
}

// ListCategories GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory GET /categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory POST /categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory PUT /categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.CategoryRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory DELETE /categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
