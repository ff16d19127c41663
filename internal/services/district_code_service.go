package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/repositories"
)

type districtCodeService struct {
	districtCodeRepo repositories.DistrictCodeRepositoryInterface
}

// NewDistrictCodeService creates the district code reference service
func NewDistrictCodeService(districtCodeRepo repositories.DistrictCodeRepositoryInterface) DistrictCodeServiceInterface {
	return &districtCodeService{
		districtCodeRepo: districtCodeRepo,
	}
}

func (s *districtCodeService) GetAllByCode() ([]models.DistrictCode, error) {
	codes, err := s.districtCodeRepo.GetAllOrderByCode()
	if err != nil {
		slog.Error("failed to fetch district codes", "error", err)
		return nil, fmt.Errorf("failed to fetch district codes: %w", err)
	}
	return codes, nil
}

func (s *districtCodeService) GetAllByName() ([]models.DistrictCode, error) {
	codes, err := s.districtCodeRepo.GetAllOrderByName()
	if err != nil {
		slog.Error("failed to fetch district codes", "error", err)
		return nil, fmt.Errorf("failed to fetch district codes: %w", err)
	}
	return codes, nil
}

func (s *districtCodeService) GetByCode(districtCode string) (*models.DistrictCode, error) {
	code, err := s.districtCodeRepo.GetByCode(districtCode)
	if err != nil {
		if errors.Is(err, repositories.ErrDistrictCodeNotFound) {
			slog.Warn("district code not found", "district_code", districtCode)
			return nil, ErrNotFound
		}
		slog.Error("failed to fetch district by code",
			"district_code", districtCode,
			"error", err)
		return nil, fmt.Errorf("failed to fetch district by code: %w", err)
	}
	return code, nil
}

func (s *districtCodeService) GetByName(districtName string) (*models.DistrictCode, error) {
	code, err := s.districtCodeRepo.GetByName(districtName)
	if err != nil {
		if errors.Is(err, repositories.ErrDistrictCodeNotFound) {
			slog.Warn("district not found", "district_name", districtName)
			return nil, ErrNotFound
		}
		slog.Error("failed to fetch district by name",
			"district_name", districtName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch district by name: %w", err)
	}
	return code, nil
}

func (s *districtCodeService) Search(keyword string) ([]models.DistrictCode, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	codes, err := s.districtCodeRepo.SearchByName(keyword)
	if err != nil {
		slog.Error("failed to search district codes",
			"keyword", keyword,
			"error", err)
		return nil, fmt.Errorf("failed to search district codes: %w", err)
	}
	return codes, nil
}

func (s *districtCodeService) Count() (int64, error) {
	total, err := s.districtCodeRepo.Count()
	if err != nil {
		slog.Error("failed to count district codes", "error", err)
		return 0, fmt.Errorf("failed to count district codes: %w", err)
	}
	return total, nil
}
