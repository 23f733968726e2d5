package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/dto"
	"github.com/vesteevolta/backend/internal/export"
	"github.com/vesteevolta/backend/internal/http/handlers/common"
	"github.com/vesteevolta/backend/internal/service"
)

type RatingHandler struct {
	ratings *service.RatingService
}

func NewRatingHandler(ratings *service.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// Create POST /ratings. The caller is the rater.
func (h *RatingHandler) Create(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateRatingRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rentalID, err := uuid.Parse(req.RentalID)
	if err != nil {
		common.RespondBadRequest(c, "rental_id must be a valid UUID")
		return
	}
	clothingID, err := uuid.Parse(req.ClothingID)
	if err != nil {
		common.RespondBadRequest(c, "clothing_id must be a valid UUID")
		return
	}

	rating, err := h.ratings.Create(c.Request.Context(), service.CreateRatingInput{
		RentalID:   rentalID,
		RaterID:    userID,
		ClothingID: clothingID,
		Score:      req.Score,
		Comment:    req.Comment,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// ListByClothing GET /ratings/clothing/:id
func (h *RatingHandler) ListByClothing(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	ratings, err := h.ratings.GetByClothing(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListByUser GET /ratings/user/:id
func (h *RatingHandler) ListByUser(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	ratings, err := h.ratings.GetByUser(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// Delete DELETE /ratings/:id. Only the author may remove a rating.
func (h *RatingHandler) Delete(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ratings.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCSV GET /ratings/report streams every rating as a CSV download.
func (h *RatingHandler) ExportCSV(c *gin.Context) {
	ratings, err := h.ratings.List(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	var buf bytes.Buffer
	buf.WriteString(export.UTF8BOM)
	if err := export.WriteRatingsCSV(&buf, ratings); err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.RatingsFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
