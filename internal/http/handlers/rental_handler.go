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

type RentalHandler struct {
	rentals *service.RentalService
}

func NewRentalHandler(rentals *service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

// Create POST /rentals. The caller is the renter.
func (h *RentalHandler) Create(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateRentalRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	clothingID, err := uuid.Parse(req.ClothingID)
	if err != nil {
		common.RespondBadRequest(c, "clothing_id must be a valid UUID")
		return
	}
	start, err := common.ParseDate(req.StartDate)
	if err != nil {
		common.RespondBadRequest(c, "start_date must use YYYY-MM-DD")
		return
	}
	end, err := common.ParseDate(req.EndDate)
	if err != nil {
		common.RespondBadRequest(c, "end_date must use YYYY-MM-DD")
		return
	}

	rental, err := h.rentals.Create(c.Request.Context(), userID, clothingID, start, end)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// List GET /rentals
func (h *RentalHandler) List(c *gin.Context) {
	rentals, err := h.rentals.List(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// Get GET /rentals/:id
func (h *RentalHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rental, err := h.rentals.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}

// UpdateStatus PUT /rentals/:id/status
func (h *RentalHandler) UpdateStatus(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.UpdateStatusRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rental, err := h.rentals.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}

// Delete DELETE /rentals/:id returns the removed rental.
func (h *RentalHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rental, err := h.rentals.Delete(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}

// ListByUser GET /users/:id/rentals
func (h *RentalHandler) ListByUser(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rentals, err := h.rentals.ListByUser(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// ListByClothing GET /clothes/:id/rentals
func (h *RentalHandler) ListByClothing(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rentals, err := h.rentals.ListByClothing(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// ExportCSV GET /reports/rentals?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *RentalHandler) ExportCSV(c *gin.Context) {
	from, err := common.ParseDate(c.Query("from"))
	if err != nil {
		common.RespondBadRequest(c, "from must use YYYY-MM-DD")
		return
	}
	to, err := common.ParseDate(c.Query("to"))
	if err != nil {
		common.RespondBadRequest(c, "to must use YYYY-MM-DD")
		return
	}

	rows, err := h.rentals.ListByStartDateRange(c.Request.Context(), from, to)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRentalsCSV(&buf, rows); err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.RentalsFilename(from, to)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
