package domain

import (
	"time"
)

type MenuCategory string

const (
	MenuAppetizer  MenuCategory = "appetizer"
	MenuMainCourse MenuCategory = "main_course"
	MenuDessert    MenuCategory = "dessert"
	MenuBeverage   MenuCategory = "beverage"
	MenuSnack      MenuCategory = "snack"
	MenuBreakfast  MenuCategory = "breakfast"
)

// MenuItem is a per-tenant menu entry: each hotel maintains its own menu, so
// item ids from one tenant must never resolve for another.
type MenuItem struct {
	ID              string       `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID        string       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name            string       `gorm:"type:text;not null" json:"name"`
	Description     string       `gorm:"type:text" json:"description,omitempty"`
	Category        MenuCategory `gorm:"type:text;not null" json:"category"`
	Price           int64        `gorm:"not null" json:"price"`
	PreparationTime int          `gorm:"not null;default:15" json:"preparation_time"`
	IsVegetarian    bool         `gorm:"not null;default:false" json:"is_vegetarian"`
	IsAvailable     bool         `gorm:"not null;default:true" json:"is_available"`
	CreatedAt       time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

func (m MenuItem) GetID() string       { return m.ID }
func (m MenuItem) GetTenantID() string { return m.TenantID }

type MenuItemFilter struct {
	Category    MenuCategory `json:"category"`
	IsAvailable *bool        `json:"is_available"`
	Search      string       `json:"search"`
}
