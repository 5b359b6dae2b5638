package handlers

import (
	"errors"
	"log"
	"net/http"

	request "photostudio/internal/adapter/http/dto/request"
	response "photostudio/internal/adapter/http/dto/response"
	"photostudio/internal/usecase"
	"photostudio/internal/usecase/interfaces"
	"photostudio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler hands the current cart to the external checkout provider.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	cart    usecase.ICartUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, cart usecase.ICartUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, cart: cart}
}

// CreateCheckout freezes the current cart and opens a provider checkout. A
// body with explicit lineItems overrides the cart; a failure leaves the cart
// exactly as it was.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	lines := usecase.LinesFromCart(h.cart.Snapshot())
	if c.Request.ContentLength > 0 {
		var payload request.CreateCheckoutRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[checkout][handler] invalid create payload err=%v", err)
			c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
			return
		}
		if len(payload.LineItems) > 0 {
			lines = payload.ResolveLines()
		}
	}
	log.Printf("[checkout][handler] create start lines=%d", len(lines))

	session, err := h.usecase.Checkout(c.Request.Context(), lines)
	if err != nil {
		log.Printf("[checkout][handler] create failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// AddItems appends line items to an existing provider checkout.
func (h *CheckoutHandler) AddItems(c *gin.Context) {
	checkoutID := c.Param("checkout_id")

	var payload request.AddCheckoutItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.AddItemsToCheckout(c.Request.Context(), checkoutID, payload.ResolveLines())
	if err != nil {
		log.Printf("[checkout][handler] add-items failed checkout_id=%s err=%v", checkoutID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func mapCheckoutError(err error) *pkg.AppError {
	var rejected *interfaces.CheckoutRejectedError
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cannot checkout an empty cart", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCheckoutID):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_ID", "Invalid checkout id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutInFlight):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_FLIGHT", "A checkout is already in progress", http.StatusConflict)
	case errors.As(err, &rejected):
		return pkg.NewDomainErrorSimple("CHECKOUT_REJECTED", rejected.Messages(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCheckoutGateway), errors.Is(err, usecase.ErrCheckoutUnresolved):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAVAILABLE", "Checkout provider unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
