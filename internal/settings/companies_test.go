package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/models"
	"fleetdesk/internal/prefs"
	"fleetdesk/internal/store/storetest"
)

func TestMergeCompanies(t *testing.T) {
	records := []models.Company{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Beta"}}
	rows := MergeCompanies(records, map[uint]string{2: "red", 9: "teal"})

	require.Len(t, rows, 2)
	assert.Equal(t, DefaultColor, rows[0].Color)
	assert.False(t, rows[0].StoredColor)
	assert.Equal(t, "red", rows[1].Color)
	assert.True(t, rows[1].StoredColor)

	assert.Equal(t, []uint{9}, StaleColors(records, map[uint]string{2: "red", 9: "teal"}))
}

func TestCompanyNewFormDefaultsToBlue(t *testing.T) {
	v := NewCompaniesView(newFakeRemote(), prefs.NewCompanyColors(prefs.NewMemoryStorage()), AlwaysConfirm)
	assert.Equal(t, "blue", v.NewForm().Color)
}

func TestSubmitNewCompanyWritesBothStores(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)
	colors := prefs.NewCompanyColors(prefs.NewMemoryStorage())
	v := NewCompaniesView(s, colors, AlwaysConfirm)

	form := v.NewForm()
	form.Name, form.Address, form.Phone, form.Color = "Acme", "1 Main St", "555-0100", "green"

	row, err := v.Submit(ctx, form)
	require.NoError(t, err)

	rec, err := s.GetCompany(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Name)
	assert.Equal(t, "1 Main St", rec.Address)
	assert.Equal(t, "555-0100", rec.Phone)

	color, ok, err := colors.Get(row.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "green", color)

	require.Len(t, v.Rows(), 1)
	assert.Equal(t, "green", v.Rows()[0].Color)
}

func TestColorSurvivesReload(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	path := filepath.Join(t.TempDir(), "prefs.json")

	first := NewCompaniesView(remote, prefs.NewCompanyColors(prefs.NewFileStorage(path)), AlwaysConfirm)
	created, err := first.Submit(ctx, CompanyForm{Name: "Acme", Color: "purple"})
	require.NoError(t, err)

	form, err := first.EditForm(created.ID)
	require.NoError(t, err)
	form.Color = "orange"
	_, err = first.Submit(ctx, form)
	require.NoError(t, err)
	assert.Empty(t, remote.companyPatches, "color-only edit must not touch the server record")

	second := NewCompaniesView(remote, prefs.NewCompanyColors(prefs.NewFileStorage(path)), AlwaysConfirm)
	rows, err := second.Load(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "orange", rows[0].Color)
	assert.True(t, rows[0].StoredColor)
}

func TestEditCompanySendsChangedFieldsOnly(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	v := NewCompaniesView(remote, prefs.NewCompanyColors(prefs.NewMemoryStorage()), AlwaysConfirm)

	created, err := v.Submit(ctx, CompanyForm{Name: "Acme", Address: "1 Main St", Phone: "555-0100", Color: "green"})
	require.NoError(t, err)

	form, err := v.EditForm(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "green", form.Color)

	form.Phone = "555-0199"
	_, err = v.Submit(ctx, form)
	require.NoError(t, err)

	require.Len(t, remote.companyPatches, 1)
	p := remote.companyPatches[0]
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Address)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "555-0199", *p.Phone)
}

func TestSubmitRejectsUnknownColor(t *testing.T) {
	remote := newFakeRemote()
	v := NewCompaniesView(remote, prefs.NewCompanyColors(prefs.NewMemoryStorage()), AlwaysConfirm)

	_, err := v.Submit(context.Background(), CompanyForm{Name: "Acme", Color: "chartreuse"})
	assert.Error(t, err)
	assert.Empty(t, remote.companies)
}

func TestRemoteFailureSkipsColorWrite(t *testing.T) {
	remote := newFakeRemote()
	remote.fail = true
	colors := prefs.NewCompanyColors(prefs.NewMemoryStorage())
	v := NewCompaniesView(remote, colors, AlwaysConfirm)

	_, err := v.Submit(context.Background(), CompanyForm{Name: "Acme", Color: "green"})
	assert.ErrorIs(t, err, errRemoteDown)

	all, err := colors.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteCompanyRemovesBothEntries(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)
	colors := prefs.NewCompanyColors(prefs.NewMemoryStorage())
	confirm := &countingConfirm{answer: true}
	v := NewCompaniesView(s, colors, confirm)

	row, err := v.Submit(ctx, CompanyForm{Name: "Acme", Color: "green"})
	require.NoError(t, err)

	deleted, err := v.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, confirm.asked)

	records, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	_, ok, err := colors.Get(row.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// second attempt never reaches the confirmation
	deleted, err = v.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, confirm.asked)
}

func TestDeleteCompanyAlreadyGoneRemovesColor(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)
	colors := prefs.NewCompanyColors(prefs.NewMemoryStorage())
	v := NewCompaniesView(s, colors, AlwaysConfirm)

	row, err := v.Submit(ctx, CompanyForm{Name: "Acme", Color: "green"})
	require.NoError(t, err)

	// removed by another client after this view loaded
	require.NoError(t, s.DeleteCompany(ctx, row.ID))

	deleted, err := v.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok, err := colors.Get(row.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v.Rows())
}

func TestSubmitKeepsSavedRowWhenReloadFails(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	colors := prefs.NewCompanyColors(prefs.NewMemoryStorage())
	v := NewCompaniesView(remote, colors, AlwaysConfirm)

	remote.failLists = true
	row, err := v.Submit(ctx, CompanyForm{Name: "Acme", Color: "teal"})
	assert.ErrorIs(t, err, errRemoteDown)
	assert.NotZero(t, row.ID)
	assert.Equal(t, "Acme", row.Name)
	assert.Equal(t, "teal", row.Color)

	color, ok, err := colors.Get(row.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "teal", color)
}

func TestDeleteDeclinedKeepsCompany(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	colors := prefs.NewCompanyColors(prefs.NewMemoryStorage())
	v := NewCompaniesView(remote, colors, &countingConfirm{answer: false})

	row, err := v.Submit(ctx, CompanyForm{Name: "Acme", Color: "green"})
	require.NoError(t, err)

	deleted, err := v.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Zero(t, remote.deletes)
	assert.Len(t, remote.companies, 1)
}

func TestStaleColorsFromAnotherClient(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	path := filepath.Join(t.TempDir(), "prefs.json")
	mine := NewCompaniesView(remote, prefs.NewCompanyColors(prefs.NewFileStorage(path)), AlwaysConfirm)

	row, err := mine.Submit(ctx, CompanyForm{Name: "Acme", Color: "green"})
	require.NoError(t, err)

	// another client deletes the company; this client's color is left behind
	other := NewCompaniesView(remote, prefs.NewCompanyColors(prefs.NewMemoryStorage()), AlwaysConfirm)
	_, err = other.Load(ctx)
	require.NoError(t, err)
	_, err = other.Delete(ctx, row.ID)
	require.NoError(t, err)

	_, err = mine.Load(ctx)
	require.NoError(t, err)
	stale, err := mine.Stale()
	require.NoError(t, err)
	assert.Equal(t, []uint{row.ID}, stale)

	pruned, err := mine.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{row.ID}, pruned)

	stale, err = mine.Stale()
	require.NoError(t, err)
	assert.Empty(t, stale)
}
