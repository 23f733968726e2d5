package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vesteevolta/backend/internal/dto"
	"github.com/vesteevolta/backend/internal/http/handlers/common"
	"github.com/vesteevolta/backend/internal/service"
)

type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Create POST /rentals/:id/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	rentalID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.CreatePaymentRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	payment, err := h.payments.Create(c.Request.Context(), rentalID, req.PaymentMethod, req.Amount, req.PaymentStatus)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListByRental GET /rentals/:id/payments
func (h *PaymentHandler) ListByRental(c *gin.Context) {
	rentalID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	payments, err := h.payments.GetByRental(c.Request.Context(), rentalID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Get GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	payment, err := h.payments.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
