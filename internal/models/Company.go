package models

import (
	"time"
)

// Company is the server-owned record of a transport company.
// Display preferences (color) are kept client side and never stored here.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyInput is the create payload.
type CompanyInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyPatch carries only the fields an update should touch.
type CompanyPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p CompanyPatch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.Phone == nil
}

// Apply copies the set fields onto c.
func (p CompanyPatch) Apply(c *Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
}

// Columns maps the set fields to their column names.
func (p CompanyPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Address != nil {
		cols["address"] = *p.Address
	}
	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}
	return cols
}
