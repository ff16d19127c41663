package repositories

import (
	"errors"
	"fmt"

	"seoul-commercial-district/internal/models"

	"gorm.io/gorm"
)

// ErrDistrictPopulationNotFound is returned when no population row exists for a district
var ErrDistrictPopulationNotFound = errors.New("district population not found")

// populationRepository implements PopulationRepositoryInterface
type populationRepository struct {
	db *gorm.DB
}

// NewPopulationRepository creates a new district population repository
func NewPopulationRepository(db *gorm.DB) PopulationRepositoryInterface {
	return &populationRepository{
		db: db,
	}
}

// GetAllOrderByPopulation retrieves all districts ordered by total population descending
func (r *populationRepository) GetAllOrderByPopulation() ([]models.DistrictPopulation, error) {
	var districts []models.DistrictPopulation
	if err := r.db.Order("total_population DESC").Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("failed to get district populations: %w", err)
	}
	return districts, nil
}

// GetByName retrieves population statistics for a district by exact name
func (r *populationRepository) GetByName(districtName string) (*models.DistrictPopulation, error) {
	var district models.DistrictPopulation
	if err := r.db.Where("district_name = ?", districtName).First(&district).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDistrictPopulationNotFound
		}
		return nil, fmt.Errorf("failed to get district population: %w", err)
	}
	return &district, nil
}

// GetTopByPopulation retrieves the most populous districts, capped at limit
func (r *populationRepository) GetTopByPopulation(limit int) ([]models.DistrictPopulation, error) {
	var districts []models.DistrictPopulation
	if err := r.db.Order("total_population DESC").
		Limit(limit).
		Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("failed to get top districts by population: %w", err)
	}
	return districts, nil
}

// GetWithMinimumPopulation retrieves districts with at least the given total population,
// ordered by total population descending
func (r *populationRepository) GetWithMinimumPopulation(minPopulation int64) ([]models.DistrictPopulation, error) {
	var districts []models.DistrictPopulation
	if err := r.db.Where("total_population >= ?", minPopulation).
		Order("total_population DESC").
		Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("failed to get districts by minimum population: %w", err)
	}
	return districts, nil
}

// SearchByName retrieves districts whose name contains the keyword,
// ordered by total population descending
func (r *populationRepository) SearchByName(keyword string) ([]models.DistrictPopulation, error) {
	var districts []models.DistrictPopulation
	if err := r.db.Where("district_name LIKE ?", "%"+keyword+"%").
		Order("total_population DESC").
		Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("failed to search district populations: %w", err)
	}
	return districts, nil
}

// Count returns the total number of district population rows
func (r *populationRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.DistrictPopulation{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count district populations: %w", err)
	}
	return total, nil
}

// SumTotalPopulation returns the population total across all districts
func (r *populationRepository) SumTotalPopulation() (int64, error) {
	var result struct {
		Total int64
	}

	query := "SELECT COALESCE(SUM(total_population), 0) AS total FROM district_population_statistics"
	if err := r.db.Raw(query).Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to sum total population: %w", err)
	}

	return result.Total, nil
}

// CreateBatch inserts district population rows in a single database transaction
func (r *populationRepository) CreateBatch(districts []models.DistrictPopulation) error {
	if len(districts) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&districts).Error; err != nil {
			return fmt.Errorf("failed to create district populations: %w", err)
		}
		return nil
	})
}
