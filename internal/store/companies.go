package store

import (
	"context"

	"fleetdesk/internal/models"
)

func (s *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.conn(ctx).Order("id asc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *Store) GetCompany(ctx context.Context, id uint) (models.Company, error) {
	var company models.Company
	if err := s.conn(ctx).First(&company, id).Error; err != nil {
		return models.Company{}, translate(err, nil)
	}
	return company, nil
}

func (s *Store) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	company := models.Company{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := s.conn(ctx).Create(&company).Error; err != nil {
		return models.Company{}, err
	}
	return company, nil
}

// UpdateCompany writes only the fields set in patch.
func (s *Store) UpdateCompany(ctx context.Context, id uint, patch models.CompanyPatch) (models.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return models.Company{}, err
	}
	if patch.Empty() {
		return company, nil
	}

	if err := s.conn(ctx).Model(&models.Company{ID: id}).Updates(patch.Columns()).Error; err != nil {
		return models.Company{}, err
	}
	return s.GetCompany(ctx, id)
}

func (s *Store) DeleteCompany(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&models.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
