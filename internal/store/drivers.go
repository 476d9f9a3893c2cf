package store

import (
	"context"

	"fleetdesk/internal/models"
)

func (s *Store) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.conn(ctx).Order("id asc").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *Store) GetDriver(ctx context.Context, id uint) (models.Driver, error) {
	var driver models.Driver
	if err := s.conn(ctx).First(&driver, id).Error; err != nil {
		return models.Driver{}, translate(err, nil)
	}
	return driver, nil
}

// CreateDriver applies the status and PIN defaults before inserting.
func (s *Store) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	if err := in.Normalize(); err != nil {
		return models.Driver{}, err
	}

	driver := models.Driver{
		Name:          in.Name,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		Status:        in.Status,
		PIN:           in.PIN,
	}
	if err := s.conn(ctx).Create(&driver).Error; err != nil {
		return models.Driver{}, translate(err, ErrDuplicateLicense)
	}
	return driver, nil
}

// UpdateDriver writes only the fields set in patch.
func (s *Store) UpdateDriver(ctx context.Context, id uint, patch models.DriverPatch) (models.Driver, error) {
	if err := patch.Validate(); err != nil {
		return models.Driver{}, err
	}

	driver, err := s.GetDriver(ctx, id)
	if err != nil {
		return models.Driver{}, err
	}
	if patch.Empty() {
		return driver, nil
	}

	if err := s.conn(ctx).Model(&models.Driver{ID: id}).Updates(patch.Columns()).Error; err != nil {
		return models.Driver{}, translate(err, ErrDuplicateLicense)
	}
	return s.GetDriver(ctx, id)
}

func (s *Store) DeleteDriver(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&models.Driver{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
