// Package settings holds the company and driver settings views: listing
// merged rows, add/edit form cycles and confirmed deletes.
package settings

import (
	"context"
	"errors"

	"fleetdesk/internal/models"
)

// Remote is the Remote Data Store as the views consume it. It is
// satisfied by the HTTP client and by *store.Store.
type Remote interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, id uint, patch models.CompanyPatch) (models.Company, error)
	DeleteCompany(ctx context.Context, id uint) error

	ListDrivers(ctx context.Context) ([]models.Driver, error)
	CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error)
	UpdateDriver(ctx context.Context, id uint, patch models.DriverPatch) (models.Driver, error)
	DeleteDriver(ctx context.Context, id uint) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// AlwaysConfirm approves every prompt.
var AlwaysConfirm = ConfirmFunc(func(string) (bool, error) { return true, nil })

// ErrUnknownRow is returned for ids that are not among the loaded rows.
var ErrUnknownRow = errors.New("no such row in the loaded view")
