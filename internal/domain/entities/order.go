package entities

import "time"

// OrderStatus represents the lifecycle of a custom photo-service order.
//
// pending -> confirmed -> in-progress -> review -> completed -> delivered,
// with cancelled reachable from any non-terminal state. delivered and
// cancelled are terminal: no further transitions are allowed out of them.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusReview     OrderStatus = "review"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Terminal reports whether no transition may leave this status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusReview, OrderStatusCompleted, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// ServiceType classifies the kind of photo work requested.
type ServiceType string

const (
	ServiceTypeRestoration ServiceType = "restoration"
	ServiceTypeEditing     ServiceType = "editing"
	ServiceTypeCreative    ServiceType = "creative"
	ServiceTypePrinting    ServiceType = "printing"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeRestoration, ServiceTypeEditing, ServiceTypeCreative, ServiceTypePrinting:
		return true
	}
	return false
}

// Urgency is the requested turnaround tier.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyRush     Urgency = "rush"
	UrgencyExpress  Urgency = "express"
)

// DeliveryFormat is how finished work is handed back to the customer.
type DeliveryFormat string

const (
	DeliveryFormatDigital DeliveryFormat = "digital"
	DeliveryFormatPrint   DeliveryFormat = "print"
	DeliveryFormatBoth    DeliveryFormat = "both"
)

// StatusActor identifies who recorded a status history entry.
type StatusActor string

const (
	StatusActorSystem   StatusActor = "system"
	StatusActorAdmin    StatusActor = "admin"
	StatusActorCustomer StatusActor = "customer"
)

// OrderItem is a priced service line inside a custom order.
type OrderItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Service     string  `json:"service"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// StatusEvent is one append-only entry in an order's status history.
type StatusEvent struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Message   string      `json:"message"`
	UpdatedBy StatusActor `json:"updatedBy"`
}

// OrderTracking carries progress state alongside the order status.
//
// Invariant: StatusHistory is append-only and its last entry's Status always
// equals the owning order's current Status.
type OrderTracking struct {
	Progress            int           `json:"progress"`
	EstimatedCompletion *time.Time    `json:"estimatedCompletion,omitempty"`
	ActualCompletion    *time.Time    `json:"actualCompletion,omitempty"`
	LastUpdated         time.Time     `json:"lastUpdated"`
	StatusHistory       []StatusEvent `json:"statusHistory"`
}

// UploadedPhoto references a customer-supplied input file.
type UploadedPhoto struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DeliverableType classifies a finished file attached to an order.
type DeliverableType string

const (
	DeliverableTypeImage    DeliverableType = "image"
	DeliverableTypeVideo    DeliverableType = "video"
	DeliverableTypeDocument DeliverableType = "document"
)

// Deliverable is a finished file produced by the studio. The deliverables
// list only ever grows; entries are stamped when the status update that
// carried them is applied.
type Deliverable struct {
	ID          string          `json:"id"`
	URL         string          `json:"url"`
	Name        string          `json:"name"`
	Type        DeliverableType `json:"type"`
	DeliveredAt time.Time       `json:"deliveredAt"`
}

// CustomOrder is a customer-submitted request for photo restoration, editing,
// creative or printing work.
type CustomOrder struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`

	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`

	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	Currency string      `json:"currency"`

	ServiceType    ServiceType    `json:"serviceType"`
	Urgency        Urgency        `json:"urgency"`
	DeliveryFormat DeliveryFormat `json:"deliveryFormat"`

	Description         string `json:"description"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	Photos       []UploadedPhoto `json:"photos"`
	Deliverables []Deliverable   `json:"deliverables,omitempty"`

	Status   OrderStatus   `json:"status"`
	Tracking OrderTracking `json:"tracking"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderStats is derived from the full order collection and never persisted
// independently. TotalRevenue excludes cancelled orders; AverageOrderValue is
// revenue over completed-or-later orders, zero when there are none.
type OrderStats struct {
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
