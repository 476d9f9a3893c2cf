package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetdesk/internal/models"
	"fleetdesk/internal/store"
)

// PINMask is displayed in place of a hidden PIN.
const PINMask = "••••"

// DriverRow is a driver record plus its display state.
type DriverRow struct {
	models.Driver
	PINVisible bool
}

// DisplayPIN returns the stored PIN verbatim when visible and the mask
// otherwise. No other transformation is applied.
func (r DriverRow) DisplayPIN() string {
	if r.PINVisible {
		return r.PIN
	}
	return PINMask
}

// DriverForm is the add/edit form. ID is zero when adding.
type DriverForm struct {
	ID            uint
	Name          string
	Phone         string
	LicenseNumber string
	Status        models.DriverStatus
	PIN           string
}

func (f DriverForm) Editing() bool { return f.ID != 0 }

func (f DriverForm) input() models.DriverInput {
	return models.DriverInput{
		Name:          f.Name,
		Phone:         f.Phone,
		LicenseNumber: f.LicenseNumber,
		Status:        f.Status,
		PIN:           f.PIN,
	}
}

// patch returns only the fields that differ from orig.
func (f DriverForm) patch(orig models.Driver) models.DriverPatch {
	var p models.DriverPatch
	if f.Name != orig.Name {
		p.Name = &f.Name
	}
	if f.Phone != orig.Phone {
		p.Phone = &f.Phone
	}
	if f.LicenseNumber != orig.LicenseNumber {
		p.LicenseNumber = &f.LicenseNumber
	}
	if f.Status != orig.Status {
		p.Status = &f.Status
	}
	if f.PIN != orig.PIN {
		p.PIN = &f.PIN
	}
	return p
}

// DriversView drives the driver settings screen.
type DriversView struct {
	remote  Remote
	confirm Confirmer

	drivers []models.Driver
	visible map[uint]bool
}

func NewDriversView(remote Remote, confirm Confirmer) *DriversView {
	return &DriversView{remote: remote, confirm: confirm, visible: make(map[uint]bool)}
}

// Load lists drivers. PIN visibility survives reloads for ids still present.
func (v *DriversView) Load(ctx context.Context) ([]DriverRow, error) {
	drivers, err := v.remote.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	v.drivers = drivers

	present := make(map[uint]bool, len(drivers))
	for _, d := range drivers {
		present[d.ID] = true
	}
	for id := range v.visible {
		if !present[id] {
			delete(v.visible, id)
		}
	}
	return v.Rows(), nil
}

func (v *DriversView) Rows() []DriverRow {
	rows := make([]DriverRow, 0, len(v.drivers))
	for _, d := range v.drivers {
		rows = append(rows, DriverRow{Driver: d, PINVisible: v.visible[d.ID]})
	}
	return rows
}

func (v *DriversView) driver(id uint) (models.Driver, bool) {
	for _, d := range v.drivers {
		if d.ID == id {
			return d, true
		}
	}
	return models.Driver{}, false
}

// TogglePIN flips PIN visibility for a loaded driver and returns the new state.
func (v *DriversView) TogglePIN(id uint) (bool, error) {
	if _, ok := v.driver(id); !ok {
		return false, fmt.Errorf("driver %d: %w", id, ErrUnknownRow)
	}
	v.visible[id] = !v.visible[id]
	return v.visible[id], nil
}

// NewForm returns an empty form with status available and the default PIN.
func (v *DriversView) NewForm() DriverForm {
	return DriverForm{Status: models.StatusAvailable, PIN: models.DefaultPIN}
}

func (v *DriversView) EditForm(id uint) (DriverForm, error) {
	d, ok := v.driver(id)
	if !ok {
		return DriverForm{}, fmt.Errorf("driver %d: %w", id, ErrUnknownRow)
	}
	return DriverForm{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		Status:        d.Status,
		PIN:           d.PIN,
	}, nil
}

// Submit creates the driver or sends only the changed fields of an edit.
func (v *DriversView) Submit(ctx context.Context, form DriverForm) (models.Driver, error) {
	form.PIN = strings.TrimSpace(form.PIN)
	if form.Status == "" {
		form.Status = models.StatusAvailable
	}
	if !form.Status.Valid() {
		return models.Driver{}, models.ErrInvalidStatus
	}
	if err := models.ValidatePIN(form.PIN); err != nil {
		return models.Driver{}, err
	}

	var (
		driver models.Driver
		err    error
	)
	if form.Editing() {
		orig, ok := v.driver(form.ID)
		if !ok {
			return models.Driver{}, fmt.Errorf("driver %d: %w", form.ID, ErrUnknownRow)
		}
		patch := form.patch(orig)
		if patch.Empty() {
			return orig, nil
		}
		driver, err = v.remote.UpdateDriver(ctx, form.ID, patch)
	} else {
		driver, err = v.remote.CreateDriver(ctx, form.input())
	}
	if err != nil {
		return models.Driver{}, fmt.Errorf("save driver: %w", err)
	}

	if _, err := v.Load(ctx); err != nil {
		return driver, err
	}
	return driver, nil
}

// Delete removes a driver after confirmation. Ids that are not loaded
// are ignored without prompting. A driver already removed elsewhere
// counts as deleted.
func (v *DriversView) Delete(ctx context.Context, id uint) (bool, error) {
	d, ok := v.driver(id)
	if !ok {
		return false, nil
	}
	yes, err := v.confirm.Confirm(fmt.Sprintf("Delete driver %q (%s)?", d.Name, d.LicenseNumber))
	if err != nil || !yes {
		return false, err
	}

	if err := v.remote.DeleteDriver(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("delete driver: %w", err)
	}
	delete(v.visible, id)

	if _, err := v.Load(ctx); err != nil {
		return true, err
	}
	return true, nil
}
