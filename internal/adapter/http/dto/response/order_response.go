package response

import (
	"time"

	"photostudio/internal/domain/entities"
)

type StatusEventResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	UpdatedBy string    `json:"updatedBy"`
}

type OrderTrackingResponse struct {
	Progress            int                   `json:"progress"`
	EstimatedCompletion *time.Time            `json:"estimatedCompletion,omitempty"`
	ActualCompletion    *time.Time            `json:"actualCompletion,omitempty"`
	LastUpdated         time.Time             `json:"lastUpdated"`
	StatusHistory       []StatusEventResponse `json:"statusHistory"`
}

type OrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`

	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`

	Items    []entities.OrderItem `json:"items"`
	Total    float64              `json:"total"`
	Currency string               `json:"currency"`

	ServiceType    string `json:"serviceType"`
	Urgency        string `json:"urgency"`
	DeliveryFormat string `json:"deliveryFormat"`

	Description         string `json:"description"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	Photos       []entities.UploadedPhoto `json:"photos"`
	Deliverables []entities.Deliverable   `json:"deliverables,omitempty"`

	Status   string                `json:"status"`
	Tracking OrderTrackingResponse `json:"tracking"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCustomOrder(o entities.CustomOrder) OrderResponse {
	history := make([]StatusEventResponse, 0, len(o.Tracking.StatusHistory))
	for _, ev := range o.Tracking.StatusHistory {
		history = append(history, StatusEventResponse{
			Status:    string(ev.Status),
			Timestamp: ev.Timestamp,
			Message:   ev.Message,
			UpdatedBy: string(ev.UpdatedBy),
		})
	}
	return OrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		CustomerID:          o.CustomerID,
		CustomerName:        o.CustomerName,
		CustomerEmail:       o.CustomerEmail,
		Items:               o.Items,
		Total:               o.Total,
		Currency:            o.Currency,
		ServiceType:         string(o.ServiceType),
		Urgency:             string(o.Urgency),
		DeliveryFormat:      string(o.DeliveryFormat),
		Description:         o.Description,
		SpecialInstructions: o.SpecialInstructions,
		Photos:              o.Photos,
		Deliverables:        o.Deliverables,
		Status:              string(o.Status),
		Tracking: OrderTrackingResponse{
			Progress:            o.Tracking.Progress,
			EstimatedCompletion: o.Tracking.EstimatedCompletion,
			ActualCompletion:    o.Tracking.ActualCompletion,
			LastUpdated:         o.Tracking.LastUpdated,
			StatusHistory:       history,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromCustomOrders(orders []entities.CustomOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromCustomOrder(o))
	}
	return out
}

type OrderStatsResponse struct {
	Total             int     `json:"total"`
	Pending           int     `json:"pending"`
	Confirmed         int     `json:"confirmed"`
	InProgress        int     `json:"inProgress"`
	Review            int     `json:"review"`
	Completed         int     `json:"completed"`
	Delivered         int     `json:"delivered"`
	Cancelled         int     `json:"cancelled"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

func FromOrderStats(s entities.OrderStats) OrderStatsResponse {
	return OrderStatsResponse(s)
}
