package settings

import (
	"context"
	"errors"

	"fleetdesk/internal/models"
)

var errRemoteDown = errors.New("remote down")

// fakeRemote is an in-memory Remote that records the patches it receives.
type fakeRemote struct {
	nextID    uint
	companies map[uint]models.Company
	drivers   map[uint]models.Driver

	companyPatches []models.CompanyPatch
	driverPatches  []models.DriverPatch
	deletes        int
	fail           bool
	failLists      bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		companies: make(map[uint]models.Company),
		drivers:   make(map[uint]models.Driver),
	}
}

func (f *fakeRemote) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRemote) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if f.fail || f.failLists {
		return nil, errRemoteDown
	}
	var out []models.Company
	for id := uint(1); id <= f.nextID; id++ {
		if c, ok := f.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRemote) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	if f.fail {
		return models.Company{}, errRemoteDown
	}
	c := models.Company{ID: f.id(), Name: in.Name, Address: in.Address, Phone: in.Phone}
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeRemote) UpdateCompany(ctx context.Context, id uint, patch models.CompanyPatch) (models.Company, error) {
	if f.fail {
		return models.Company{}, errRemoteDown
	}
	f.companyPatches = append(f.companyPatches, patch)
	c := f.companies[id]
	patch.Apply(&c)
	f.companies[id] = c
	return c, nil
}

func (f *fakeRemote) DeleteCompany(ctx context.Context, id uint) error {
	if f.fail {
		return errRemoteDown
	}
	f.deletes++
	delete(f.companies, id)
	return nil
}

func (f *fakeRemote) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	if f.fail || f.failLists {
		return nil, errRemoteDown
	}
	var out []models.Driver
	for id := uint(1); id <= f.nextID; id++ {
		if d, ok := f.drivers[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRemote) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	if f.fail {
		return models.Driver{}, errRemoteDown
	}
	if err := in.Normalize(); err != nil {
		return models.Driver{}, err
	}
	d := models.Driver{ID: f.id(), Name: in.Name, Phone: in.Phone, LicenseNumber: in.LicenseNumber, Status: in.Status, PIN: in.PIN}
	f.drivers[d.ID] = d
	return d, nil
}

func (f *fakeRemote) UpdateDriver(ctx context.Context, id uint, patch models.DriverPatch) (models.Driver, error) {
	if f.fail {
		return models.Driver{}, errRemoteDown
	}
	f.driverPatches = append(f.driverPatches, patch)
	d := f.drivers[id]
	patch.Apply(&d)
	f.drivers[id] = d
	return d, nil
}

func (f *fakeRemote) DeleteDriver(ctx context.Context, id uint) error {
	if f.fail {
		return errRemoteDown
	}
	f.deletes++
	delete(f.drivers, id)
	return nil
}

// countingConfirm records how often it was asked.
type countingConfirm struct {
	answer bool
	asked  int
}

func (c *countingConfirm) Confirm(string) (bool, error) {
	c.asked++
	return c.answer, nil
}
