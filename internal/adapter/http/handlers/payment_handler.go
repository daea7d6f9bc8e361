package handlers

import (
	"errors"
	"log"
	"net/http"

	request "societyhub/internal/adapter/http/dto/request"
	response "societyhub/internal/adapter/http/dto/response"
	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase"
	"societyhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles payment recording and lookups.

type PaymentHandler struct {
	usecase usecase.IPaymentLedger
}

func NewPaymentHandler(uc usecase.IPaymentLedger) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	ref := usecase.BillRef{MaintenanceID: payload.MaintenanceID, UnitBillID: payload.UnitBillID}
	p, err := h.usecase.RecordPayment(c.Request.Context(), actor, ref, entities.PaymentMethod(payload.Method))
	if err != nil {
		log.Printf("[payment][handler] record failed user_id=%s err=%v", actor, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success payment_id=%s method=%s", p.ID, p.Method)

	c.JSON(http.StatusCreated, response.FromPayment(p))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter := usecase.PaymentsFilter{BillID: c.Query("bill_id"), BuildingID: c.Query("building_id")}
	ps, err := h.usecase.ListPayments(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(ps))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillRef), errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentsFilter),
		errors.Is(err, usecase.ErrInvalidRoleKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this building", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPayerNotOccupant):
		return pkg.NewDomainErrorSimple("NOT_OCCUPANT", "Payer does not occupy this unit", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnitBillNotFound):
		return pkg.NewDomainErrorSimple("UNIT_BILL_NOT_FOUND", "Unit maintenance bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaintenanceNotFound):
		return pkg.NewDomainErrorSimple("MAINTENANCE_NOT_FOUND", "Maintenance bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentPartiallyDone):
		return pkg.NewDomainError("PARTIAL_FAILURE", "Payment outcome unresolved; re-check bill status before retrying", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("DEPENDENCY_ERROR", "An upstream dependency failed", err, http.StatusBadGateway)
	}
}
