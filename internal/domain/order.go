package domain

import (
	"time"
)

type OrderType string

const (
	OrderRoomService OrderType = "room_service"
	OrderRestaurant  OrderType = "restaurant"
	OrderBar         OrderType = "bar"
	OrderSpa         OrderType = "spa"
	OrderLaundry     OrderType = "laundry"
	OrderMinibar     OrderType = "minibar"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderReady      OrderStatus = "ready"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderPreparing, OrderCancelled},
	OrderPreparing:  {OrderReady, OrderCancelled},
	OrderReady:      {OrderDelivering, OrderDelivered},
	OrderDelivering: {OrderDelivered},
	OrderDelivered:  {OrderCompleted},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OpenOrderStatuses are the statuses shown on the kitchen display.
var OpenOrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivering,
}

type OrderItem struct {
	ID                  string `json:"id"`
	MenuItemID          string `json:"menu_item_id"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
	UnitPrice           int64  `json:"unit_price"`
	TotalPrice          int64  `json:"total_price"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type Order struct {
	ID                  string      `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID            string      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	OrderNumber         string      `gorm:"type:text;not null" json:"order_number"`
	Type                OrderType   `gorm:"type:text;not null" json:"type"`
	Status              OrderStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	GuestID             string      `gorm:"type:text" json:"guest_id,omitempty"`
	RoomID              string      `gorm:"type:text" json:"room_id,omitempty"`
	TableNumber         string      `gorm:"type:text" json:"table_number,omitempty"`
	Items               []OrderItem `gorm:"serializer:json" json:"items"`
	Subtotal            int64       `json:"subtotal"`
	TaxAmount           int64       `json:"tax_amount"`
	ServiceCharge       int64       `json:"service_charge"`
	TotalAmount         int64       `json:"total_amount"`
	SpecialInstructions string      `gorm:"type:text" json:"special_instructions,omitempty"`
	PlacedBy            string      `gorm:"type:uuid" json:"placed_by"`
	OrderedAt           time.Time   `gorm:"type:timestamp with time zone;not null" json:"ordered_at"`
	ConfirmedAt         *time.Time  `gorm:"type:timestamp with time zone" json:"confirmed_at,omitempty"`
	PreparedAt          *time.Time  `gorm:"type:timestamp with time zone" json:"prepared_at,omitempty"`
	DeliveredAt         *time.Time  `gorm:"type:timestamp with time zone" json:"delivered_at,omitempty"`
	CreatedAt           time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

func (o Order) GetID() string       { return o.ID }
func (o Order) GetTenantID() string { return o.TenantID }

type OrderFilter struct {
	Statuses []OrderStatus `json:"statuses"`
	Type     OrderType     `json:"type"`
	GuestID  string        `json:"guest_id"`
	RoomID   string        `json:"room_id"`
	Date     string        `json:"date"`
	Search   string        `json:"search"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type OrderStats struct {
	TodaysOrders      int64 `json:"todays_orders"`
	PendingOrders     int64 `json:"pending_orders"`
	RoomServiceOpen   int64 `json:"room_service_open"`
	TodaysRevenue     int64 `json:"todays_revenue"`
	AverageOrderValue int64 `json:"average_order_value"`
}
