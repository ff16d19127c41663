package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/repositories"
)

var (
	// ErrNotFound is returned when a requested reference resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrLimitOutOfRange is returned when a population top-N limit falls
	// outside the 1 to 25 district range
	ErrLimitOutOfRange = errors.New("limit must be between 1 and 25")

	// ErrInvalidMinimumPopulation is returned for a negative population threshold
	ErrInvalidMinimumPopulation = errors.New("minimum population must not be negative")

	// ErrEmptyKeyword is returned when a search keyword is blank
	ErrEmptyKeyword = errors.New("search keyword must not be empty")
)

// maxDistrictLimit is the number of Seoul administrative districts
const maxDistrictLimit = 25

type populationService struct {
	populationRepo repositories.PopulationRepositoryInterface
	metrics        MetricsRecorderInterface
}

// NewPopulationService creates the district population service
func NewPopulationService(
	populationRepo repositories.PopulationRepositoryInterface,
	metrics MetricsRecorderInterface,
) PopulationServiceInterface {
	return &populationService{
		populationRepo: populationRepo,
		metrics:        metrics,
	}
}

func (s *populationService) GetAllDistricts() ([]models.DistrictPopulation, error) {
	districts, err := s.populationRepo.GetAllOrderByPopulation()
	if err != nil {
		slog.Error("failed to fetch district populations", "error", err)
		return nil, fmt.Errorf("failed to fetch district populations: %w", err)
	}

	s.recordQuery("population_all")
	return districts, nil
}

func (s *populationService) GetDistrictByName(districtName string) (*models.DistrictPopulation, error) {
	district, err := s.populationRepo.GetByName(districtName)
	if err != nil {
		if errors.Is(err, repositories.ErrDistrictPopulationNotFound) {
			slog.Warn("district population not found", "district_name", districtName)
			return nil, ErrNotFound
		}
		slog.Error("failed to fetch district population",
			"district_name", districtName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch district population: %w", err)
	}

	s.recordQuery("population_by_name")
	return district, nil
}

func (s *populationService) GetTopDistricts(limit int) ([]models.DistrictPopulation, error) {
	if limit < 1 || limit > maxDistrictLimit {
		return nil, ErrLimitOutOfRange
	}

	districts, err := s.populationRepo.GetTopByPopulation(limit)
	if err != nil {
		slog.Error("failed to fetch top districts by population",
			"limit", limit,
			"error", err)
		return nil, fmt.Errorf("failed to fetch top districts by population: %w", err)
	}

	s.recordQuery("population_top")
	return districts, nil
}

func (s *populationService) GetDistrictsWithMinimumPopulation(minPopulation int64) ([]models.DistrictPopulation, error) {
	if minPopulation < 0 {
		return nil, ErrInvalidMinimumPopulation
	}

	districts, err := s.populationRepo.GetWithMinimumPopulation(minPopulation)
	if err != nil {
		slog.Error("failed to fetch districts by minimum population",
			"min_population", minPopulation,
			"error", err)
		return nil, fmt.Errorf("failed to fetch districts by minimum population: %w", err)
	}

	s.recordQuery("population_minimum")
	return districts, nil
}

func (s *populationService) SearchDistricts(keyword string) ([]models.DistrictPopulation, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	districts, err := s.populationRepo.SearchByName(keyword)
	if err != nil {
		slog.Error("failed to search district populations",
			"keyword", keyword,
			"error", err)
		return nil, fmt.Errorf("failed to search district populations: %w", err)
	}

	s.recordQuery("population_search")
	return districts, nil
}

// GetSeoulSummary aggregates population figures across every district.
// The per-district average uses integer division.
func (s *populationService) GetSeoulSummary() (*models.SeoulPopulationSummary, error) {
	totalDistricts, err := s.populationRepo.Count()
	if err != nil {
		slog.Error("failed to count districts", "error", err)
		return nil, fmt.Errorf("failed to count districts: %w", err)
	}

	totalPopulation, err := s.populationRepo.SumTotalPopulation()
	if err != nil {
		slog.Error("failed to sum total population", "error", err)
		return nil, fmt.Errorf("failed to sum total population: %w", err)
	}

	var average int64
	if totalDistricts > 0 {
		average = totalPopulation / totalDistricts
	}

	s.recordQuery("population_summary")

	return &models.SeoulPopulationSummary{
		TotalDistricts:               totalDistricts,
		TotalPopulation:              totalPopulation,
		AveragePopulationPerDistrict: average,
	}, nil
}

func (s *populationService) recordQuery(operation string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("population_query", map[string]string{"operation": operation})
	}
}
