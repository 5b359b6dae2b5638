package request

import (
	"strings"
	"time"

	"photostudio/internal/domain/entities"
)

type OrderItemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Service     string  `json:"service"`
	Quantity    int     `json:"quantity" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type UploadedPhotoRequest struct {
	ID   string `json:"id"`
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
}

// CreateOrderRequest is the payload for submitting a custom photo-service
// order. Status, order number and tracking are assigned server-side.
type CreateOrderRequest struct {
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`

	Items    []OrderItemRequest `json:"items"`
	Total    float64            `json:"total"`
	Currency string             `json:"currency"`

	ServiceType    string `json:"serviceType" binding:"required"`
	Urgency        string `json:"urgency"`
	DeliveryFormat string `json:"deliveryFormat"`

	Description         string `json:"description" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`

	Photos []UploadedPhotoRequest `json:"photos"`
}

func (r CreateOrderRequest) ResolveItems() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ID:          it.ID,
			Name:        it.Name,
			Service:     it.Service,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Image:       it.Image,
			Description: it.Description,
		})
	}
	return items
}

func (r CreateOrderRequest) ResolvePhotos() []entities.UploadedPhoto {
	photos := make([]entities.UploadedPhoto, 0, len(r.Photos))
	for _, p := range r.Photos {
		photos = append(photos, entities.UploadedPhoto{
			ID:   p.ID,
			URL:  p.URL,
			Name: p.Name,
		})
	}
	return photos
}

func (r CreateOrderRequest) ResolveUrgency() entities.Urgency {
	if v := strings.TrimSpace(r.Urgency); v != "" {
		return entities.Urgency(v)
	}
	return entities.UrgencyStandard
}

func (r CreateOrderRequest) ResolveDeliveryFormat() entities.DeliveryFormat {
	if v := strings.TrimSpace(r.DeliveryFormat); v != "" {
		return entities.DeliveryFormat(v)
	}
	return entities.DeliveryFormatDigital
}

type DeliveredFileRequest struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateOrderStatusRequest advances an order through its lifecycle and may
// attach finished files.
type UpdateOrderStatusRequest struct {
	Status              string                 `json:"status" binding:"required"`
	Message             string                 `json:"message"`
	Progress            *int                   `json:"progress"`
	EstimatedCompletion *time.Time             `json:"estimatedCompletion"`
	Files               []DeliveredFileRequest `json:"files"`
}

func (r DeliveredFileRequest) ResolveType() entities.DeliverableType {
	switch entities.DeliverableType(strings.TrimSpace(r.Type)) {
	case entities.DeliverableTypeVideo:
		return entities.DeliverableTypeVideo
	case entities.DeliverableTypeDocument:
		return entities.DeliverableTypeDocument
	default:
		return entities.DeliverableTypeImage
	}
}
