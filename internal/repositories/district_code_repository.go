package repositories

import (
	"errors"
	"fmt"

	"seoul-commercial-district/internal/models"

	"gorm.io/gorm"
)

// ErrDistrictCodeNotFound is returned when a district code lookup matches nothing
var ErrDistrictCodeNotFound = errors.New("district code not found")

// districtCodeRepository implements DistrictCodeRepositoryInterface
type districtCodeRepository struct {
	db *gorm.DB
}

// NewDistrictCodeRepository creates a new district code repository
func NewDistrictCodeRepository(db *gorm.DB) DistrictCodeRepositoryInterface {
	return &districtCodeRepository{
		db: db,
	}
}

// GetAllOrderByCode retrieves all district codes ordered by code ascending
func (r *districtCodeRepository) GetAllOrderByCode() ([]models.DistrictCode, error) {
	var codes []models.DistrictCode
	if err := r.db.Order("district_code ASC").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to get district codes: %w", err)
	}
	return codes, nil
}

// GetAllOrderByName retrieves all district codes ordered by district name ascending
func (r *districtCodeRepository) GetAllOrderByName() ([]models.DistrictCode, error) {
	var codes []models.DistrictCode
	if err := r.db.Order("district_name ASC").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to get district codes: %w", err)
	}
	return codes, nil
}

// GetByCode retrieves a district by its 5-digit code
func (r *districtCodeRepository) GetByCode(districtCode string) (*models.DistrictCode, error) {
	var code models.DistrictCode
	if err := r.db.Where("district_code = ?", districtCode).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDistrictCodeNotFound
		}
		return nil, fmt.Errorf("failed to get district by code: %w", err)
	}
	return &code, nil
}

// GetByName retrieves a district by its exact name
func (r *districtCodeRepository) GetByName(districtName string) (*models.DistrictCode, error) {
	var code models.DistrictCode
	if err := r.db.Where("district_name = ?", districtName).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDistrictCodeNotFound
		}
		return nil, fmt.Errorf("failed to get district by name: %w", err)
	}
	return &code, nil
}

// SearchByName retrieves districts whose name contains the keyword
func (r *districtCodeRepository) SearchByName(keyword string) ([]models.DistrictCode, error) {
	var codes []models.DistrictCode
	if err := r.db.Where("district_name LIKE ?", "%"+keyword+"%").
		Order("district_code ASC").
		Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to search district codes: %w", err)
	}
	return codes, nil
}

// Count returns the total number of district codes
func (r *districtCodeRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.DistrictCode{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count district codes: %w", err)
	}
	return total, nil
}

// CreateBatch inserts district codes in a single database transaction
func (r *districtCodeRepository) CreateBatch(codes []models.DistrictCode) error {
	if len(codes) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&codes).Error; err != nil {
			return fmt.Errorf("failed to create district codes: %w", err)
		}
		return nil
	})
}
