package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/dto"
	"github.com/vesteevolta/backend/internal/http/handlers/common"
	"github.com/vesteevolta/backend/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(s *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: s}
}

// CreateReport POST /reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateReportRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	reportedID, err := common.ParseOptionalUUID(req.ReportedID)
	if err != nil {
		common.RespondBadRequest(c, "reported_id must be a valid UUID")
		return
	}
	clothingID, err := common.ParseOptionalUUID(req.ReportedClothingID)
	if err != nil {
		common.RespondBadRequest(c, "reported_clothing_id must be a valid UUID")
		return
	}
	var rentalID *uuid.UUID
	if req.RentalID != nil && *req.RentalID != "" {
		parsed, err := uuid.Parse(*req.RentalID)
		if err != nil {
			common.RespondBadRequest(c, "rental_id must be a valid UUID")
			return
		}
		rentalID = &parsed
	}

	report, err := h.svc.Create(c.Request.Context(), userID, service.CreateReportInput{
		ReportedID:         reportedID,
		ReportedClothingID: clothingID,
		RentalID:           rentalID,
		Type:               req.Type,
		Reason:             req.Reason,
		Description:        req.Description,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport GET /reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	report, found, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	if !found {
		common.RespondNotFound(c, "report not found")
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateStatus PUT /reports/:id/status
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
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

	report, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
