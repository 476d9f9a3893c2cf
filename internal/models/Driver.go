package models

import (
	"errors"
	"regexp"
	"time"
)

// DriverStatus is the availability of a driver.
type DriverStatus string

const (
	StatusAvailable DriverStatus = "available"
	StatusBusy      DriverStatus = "busy"
	StatusOffline   DriverStatus = "offline"
)

// DefaultPIN is assigned to drivers created without a portal PIN.
const DefaultPIN = "1234"

var (
	ErrInvalidStatus = errors.New("status must be one of available, busy, offline")
	ErrInvalidPIN    = errors.New("pin must be 4 to 6 digits")
)

var pinPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// Valid reports whether s is a known status.
func (s DriverStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return true
	}
	return false
}

// ValidatePIN checks the portal PIN format. The PIN is stored as entered.
func ValidatePIN(pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPIN
	}
	return nil
}

type Driver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string       `gorm:"not null" json:"name"`
	Phone         string       `json:"phone"`
	LicenseNumber string       `gorm:"uniqueIndex;not null" json:"license_number"` // also the portal login id
	Status        DriverStatus `gorm:"default:available" json:"status"`
	PIN           string       `gorm:"column:pin" json:"pin"`
}

// DriverInput is the create payload. Empty Status and PIN take the defaults.
type DriverInput struct {
	Name          string       `json:"name" binding:"required"`
	Phone         string       `json:"phone"`
	LicenseNumber string       `json:"license_number" binding:"required"`
	Status        DriverStatus `json:"status"`
	PIN           string       `json:"pin"`
}

// Normalize fills defaults and validates the enumerated fields.
func (in *DriverInput) Normalize() error {
	if in.Status == "" {
		in.Status = StatusAvailable
	}
	if in.PIN == "" {
		in.PIN = DefaultPIN
	}
	if !in.Status.Valid() {
		return ErrInvalidStatus
	}
	return ValidatePIN(in.PIN)
}

// DriverPatch carries only the fields an update should touch.
type DriverPatch struct {
	Name          *string       `json:"name,omitempty"`
	Phone         *string       `json:"phone,omitempty"`
	LicenseNumber *string       `json:"license_number,omitempty"`
	Status        *DriverStatus `json:"status,omitempty"`
	PIN           *string       `json:"pin,omitempty"`
}

func (p DriverPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.LicenseNumber == nil && p.Status == nil && p.PIN == nil
}

// Validate checks the set fields only.
func (p DriverPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.PIN != nil {
		return ValidatePIN(*p.PIN)
	}
	return nil
}

// Apply copies the set fields onto d.
func (p DriverPatch) Apply(d *Driver) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.LicenseNumber != nil {
		d.LicenseNumber = *p.LicenseNumber
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.PIN != nil {
		d.PIN = *p.PIN
	}
}

// Columns maps the set fields to their column names.
func (p DriverPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 5)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}
	if p.LicenseNumber != nil {
		cols["license_number"] = *p.LicenseNumber
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.PIN != nil {
		cols["pin"] = *p.PIN
	}
	return cols
}
