package settings

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"fleetdesk/internal/models"
	"fleetdesk/internal/prefs"
	"fleetdesk/internal/store"
)

// CompanyPrefs is the client-owned part of a company.
type CompanyPrefs struct {
	Color string
}

// CompanyRow is a server record merged with its local preferences.
type CompanyRow struct {
	models.Company
	Color string
	// StoredColor is false when Color is the default rather than a local entry.
	StoredColor bool
}

// MergeCompanies joins remote records with local colors. Records without
// a stored color get DefaultColor. Colors with no record are ignored.
func MergeCompanies(records []models.Company, colors map[uint]string) []CompanyRow {
	rows := make([]CompanyRow, 0, len(records))
	for _, rec := range records {
		row := CompanyRow{Company: rec, Color: DefaultColor}
		if c, ok := colors[rec.ID]; ok && c != "" {
			row.Color = c
			row.StoredColor = true
		}
		rows = append(rows, row)
	}
	return rows
}

// StaleColors returns the ids that have a local color but no remote record.
func StaleColors(records []models.Company, colors map[uint]string) []uint {
	live := make(map[uint]bool, len(records))
	for _, rec := range records {
		live[rec.ID] = true
	}
	var stale []uint
	for id := range colors {
		if !live[id] {
			stale = append(stale, id)
		}
	}
	slices.Sort(stale)
	return stale
}

// CompanyForm is the add/edit form. ID is zero when adding.
type CompanyForm struct {
	ID      uint
	Name    string
	Address string
	Phone   string
	Color   string
}

// Editing reports whether the form targets an existing company.
func (f CompanyForm) Editing() bool { return f.ID != 0 }

func (f CompanyForm) input() models.CompanyInput {
	return models.CompanyInput{Name: f.Name, Address: f.Address, Phone: f.Phone}
}

// patch returns only the server fields that differ from orig.
func (f CompanyForm) patch(orig models.Company) models.CompanyPatch {
	var p models.CompanyPatch
	if f.Name != orig.Name {
		p.Name = &f.Name
	}
	if f.Address != orig.Address {
		p.Address = &f.Address
	}
	if f.Phone != orig.Phone {
		p.Phone = &f.Phone
	}
	return p
}

func (f CompanyForm) prefs() CompanyPrefs {
	return CompanyPrefs{Color: f.Color}
}

// CompaniesView drives the company settings screen.
type CompaniesView struct {
	remote  Remote
	colors  *prefs.CompanyColors
	confirm Confirmer

	records []models.Company
	rows    []CompanyRow
}

func NewCompaniesView(remote Remote, colors *prefs.CompanyColors, confirm Confirmer) *CompaniesView {
	return &CompaniesView{remote: remote, colors: colors, confirm: confirm}
}

// Load reads both stores and rebuilds the merged rows.
func (v *CompaniesView) Load(ctx context.Context) ([]CompanyRow, error) {
	records, err := v.remote.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	colors, err := v.colors.All()
	if err != nil {
		return nil, fmt.Errorf("read company colors: %w", err)
	}
	v.records = records
	v.rows = MergeCompanies(records, colors)
	return v.rows, nil
}

// Rows returns the rows from the last Load.
func (v *CompaniesView) Rows() []CompanyRow {
	return v.rows
}

func (v *CompaniesView) row(id uint) (CompanyRow, bool) {
	for _, r := range v.rows {
		if r.ID == id {
			return r, true
		}
	}
	return CompanyRow{}, false
}

// NewForm returns an empty form with the default color.
func (v *CompaniesView) NewForm() CompanyForm {
	return CompanyForm{Color: DefaultColor}
}

// EditForm fills the form from the loaded row and its local color.
func (v *CompaniesView) EditForm(id uint) (CompanyForm, error) {
	r, ok := v.row(id)
	if !ok {
		return CompanyForm{}, fmt.Errorf("company %d: %w", id, ErrUnknownRow)
	}
	return CompanyForm{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Color:   r.Color,
	}, nil
}

// Submit writes the server fields, then the color. The two writes are
// independent: if the remote write fails the color is left untouched,
// and a failed color write after a successful remote write is reported
// with the company already persisted.
func (v *CompaniesView) Submit(ctx context.Context, form CompanyForm) (CompanyRow, error) {
	if form.Color == "" {
		form.Color = DefaultColor
	}
	if err := validateColor(form.Color); err != nil {
		return CompanyRow{}, err
	}

	var (
		company models.Company
		err     error
	)
	if form.Editing() {
		orig, ok := v.row(form.ID)
		if !ok {
			return CompanyRow{}, fmt.Errorf("company %d: %w", form.ID, ErrUnknownRow)
		}
		patch := form.patch(orig.Company)
		company = orig.Company
		if !patch.Empty() {
			company, err = v.remote.UpdateCompany(ctx, form.ID, patch)
		}
	} else {
		company, err = v.remote.CreateCompany(ctx, form.input())
	}
	if err != nil {
		return CompanyRow{}, fmt.Errorf("save company: %w", err)
	}

	p := form.prefs()
	if err := v.colors.Set(company.ID, p.Color); err != nil {
		logrus.WithError(err).WithField("company_id", company.ID).Warn("company saved but color was not stored")
		return CompanyRow{Company: company, Color: DefaultColor}, fmt.Errorf("company %d saved, store color: %w", company.ID, err)
	}

	saved := CompanyRow{Company: company, Color: p.Color, StoredColor: true}
	if _, err := v.Load(ctx); err != nil {
		return saved, err
	}
	return saved, nil
}

// Delete removes a company after confirmation, then its local color.
// Ids that are not in the loaded rows are ignored without prompting.
// A company already removed by another client counts as deleted.
// It reports whether anything was deleted.
func (v *CompaniesView) Delete(ctx context.Context, id uint) (bool, error) {
	r, ok := v.row(id)
	if !ok {
		return false, nil
	}
	yes, err := v.confirm.Confirm(fmt.Sprintf("Delete company %q?", r.Name))
	if err != nil || !yes {
		return false, err
	}

	if err := v.remote.DeleteCompany(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("delete company: %w", err)
	}
	if err := v.colors.Delete(id); err != nil {
		return true, fmt.Errorf("company %d deleted, remove color: %w", id, err)
	}

	if _, err := v.Load(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// Stale lists local colors that no longer have a company, as of the last Load.
func (v *CompaniesView) Stale() ([]uint, error) {
	colors, err := v.colors.All()
	if err != nil {
		return nil, err
	}
	return StaleColors(v.records, colors), nil
}

// Prune removes local colors for companies that no longer exist.
func (v *CompaniesView) Prune(ctx context.Context) ([]uint, error) {
	records, err := v.remote.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	ids := make([]uint, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return v.colors.Retain(ids)
}
