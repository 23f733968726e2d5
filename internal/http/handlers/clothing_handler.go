package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/dto"
	"github.com/vesteevolta/backend/internal/http/handlers/common"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/service"
)

type ClothingHandler struct {
	clothings *service.ClothingService
}

func NewClothingHandler(clothings *service.ClothingService) *ClothingHandler {
	return &ClothingHandler{clothings: clothings}
}

// List GET /clothes?status=&category_id=&min_price=&max_price=
func (h *ClothingHandler) List(c *gin.Context) {
	filter := models.ClothingFilter{Status: c.Query("status")}

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			common.RespondBadRequest(c, "category_id must be a valid UUID")
			return
		}
		filter.CategoryID = &categoryID
	}

	var err error
	if filter.MinPrice, err = common.ParseDecimalQuery(c, "min_price"); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if filter.MaxPrice, err = common.ParseDecimalQuery(c, "max_price"); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	clothings, err := h.clothings.List(c.Request.Context(), filter)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, clothings)
}

// Get GET /clothes/:id
func (h *ClothingHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	clothing, err := h.clothings.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, clothing)
}

// Create POST /clothes
func (h *ClothingHandler) Create(c *gin.Context) {
	caller, err := common.CurrentIdentity(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.ClothingRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	clothing, err := h.clothings.Create(c.Request.Context(), caller, clothingInput(req))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clothing)
}

// Update PUT /clothes/:id
func (h *ClothingHandler) Update(c *gin.Context) {
	caller, err := common.CurrentIdentity(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.ClothingRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	clothing, err := h.clothings.Update(c.Request.Context(), caller, id, clothingInput(req))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, clothing)
}

// Delete DELETE /clothes/:id
func (h *ClothingHandler) Delete(c *gin.Context) {
	caller, err := common.CurrentIdentity(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.clothings.Delete(c.Request.Context(), caller, id); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories GET /clothes/:id/categories
func (h *ClothingHandler) Categories(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	categories, err := h.clothings.Categories(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ReplaceCategories PUT /clothes/:id/categories
func (h *ClothingHandler) ReplaceCategories(c *gin.Context) {
	caller, err := common.CurrentIdentity(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.ReplaceCategoriesRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.CategoryIDs))
	for _, raw := range req.CategoryIDs {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			common.RespondBadRequest(c, "category_ids must contain valid UUIDs")
			return
		}
		ids = append(ids, categoryID)
	}

	categories, err := h.clothings.ReplaceCategories(c.Request.Context(), caller, id, ids)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func clothingInput(req dto.ClothingRequest) service.ClothingInput {
	return service.ClothingInput{
		Description:        req.Description,
		RentPrice:          req.RentPrice,
		AvailabilityStatus: req.AvailabilityStatus,
	}
}
