package handlers

import (
	"errors"
	"log"
	"net/http"

	request "photostudio/internal/adapter/http/dto/request"
	response "photostudio/internal/adapter/http/dto/response"
	"photostudio/internal/usecase"
	"photostudio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler handles HTTP requests for the shopping cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart returns the current cart snapshot with derived totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCart(h.usecase.Snapshot()))
}

// AddItem adds a line item; an existing variant merges quantities.
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	if err := h.usecase.AddItem(c.Request.Context(), payload.ToCartItem()); err != nil {
		log.Printf("[cart][handler] add rejected variant_id=%s err=%v", payload.VariantID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(h.usecase.Snapshot()))
}

// UpdateQuantity sets an absolute quantity for a variant; zero removes it.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	variantID := c.Param("variant_id")

	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Quantity == nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	h.usecase.UpdateQuantity(c.Request.Context(), variantID, *payload.Quantity)
	c.JSON(http.StatusOK, response.FromCart(h.usecase.Snapshot()))
}

// RemoveItem removes a variant from the cart. Removing an absent variant is
// a no-op and still returns the current cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	variantID := c.Param("variant_id")
	h.usecase.RemoveItem(c.Request.Context(), variantID)
	c.JSON(http.StatusOK, response.FromCart(h.usecase.Snapshot()))
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.usecase.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCart(h.usecase.Snapshot()))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_CART_ITEM", "Invalid cart item", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
