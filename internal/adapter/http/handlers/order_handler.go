package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	request "photostudio/internal/adapter/http/dto/request"
	response "photostudio/internal/adapter/http/dto/response"
	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase"
	"photostudio/internal/usecase/interfaces"
	"photostudio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for custom photo-service orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder submits a new custom order. The order starts pending with a
// single "Order received" history entry.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	input := usecase.CreateOrderInput{
		CustomerID:          payload.CustomerID,
		CustomerName:        payload.CustomerName,
		CustomerEmail:       payload.CustomerEmail,
		Items:               payload.ResolveItems(),
		Total:               payload.Total,
		Currency:            payload.Currency,
		ServiceType:         entities.ServiceType(payload.ServiceType),
		Urgency:             payload.ResolveUrgency(),
		DeliveryFormat:      payload.ResolveDeliveryFormat(),
		Description:         payload.Description,
		SpecialInstructions: payload.SpecialInstructions,
		Photos:              payload.ResolvePhotos(),
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), input)
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomOrder(created))
}

// ListOrders returns orders matching the optional query filters.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filters, err := parseOrderFilters(c)
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orders, err := h.usecase.FetchOrders(c.Request.Context(), filters)
	if err != nil {
		log.Printf("[order][handler] list failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomOrders(orders))
}

// GetOrder returns a single order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.FetchOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomOrder(order))
}

// UpdateOrderStatus advances the order lifecycle, appending to the status
// history and stamping any delivered files.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	update := interfaces.OrderStatusUpdate{
		Status:              entities.OrderStatus(payload.Status),
		Message:             payload.Message,
		Progress:            payload.Progress,
		EstimatedCompletion: payload.EstimatedCompletion,
	}
	for _, f := range payload.Files {
		update.Files = append(update.Files, interfaces.DeliveredFile{
			URL:  f.URL,
			Name: f.Name,
			Type: f.ResolveType(),
		})
	}

	updated, err := h.usecase.UpdateOrderStatus(c.Request.Context(), orderID, update)
	if err != nil {
		log.Printf("[order][handler] status update failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomOrder(updated))
}

// GetOrderStats returns counters and revenue derived from the collection.
func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromOrderStats(h.usecase.ComputeStats()))
}

func parseOrderFilters(c *gin.Context) (interfaces.OrderFilters, error) {
	filters := interfaces.OrderFilters{
		Status:      entities.OrderStatus(strings.TrimSpace(c.Query("status"))),
		ServiceType: entities.ServiceType(strings.TrimSpace(c.Query("serviceType"))),
		Search:      c.Query("search"),
	}
	if filters.Status != "" && !filters.Status.Valid() {
		return interfaces.OrderFilters{}, errors.New("unknown status filter")
	}

	if v := strings.TrimSpace(c.Query("dateFrom")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return interfaces.OrderFilters{}, err
		}
		filters.DateFrom = &t
	}
	if v := strings.TrimSpace(c.Query("dateTo")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return interfaces.OrderFilters{}, err
		}
		filters.DateTo = &t
	}
	return filters, nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderValidation), errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("ORDER_TERMINAL", "Order is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Order service not yet implemented", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
