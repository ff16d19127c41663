package repositories

import (
	"seoul-commercial-district/internal/models"

	"github.com/shopspring/decimal"
)

// SalesRepositoryInterface is the record-store adapter for sales records.
// Aggregate methods return typed rows with null results already coalesced
// to zero; ordering and limits are applied by the store.
type SalesRepositoryInterface interface {
	FindByDistrict(districtName string) ([]models.SalesRecord, error)
	FindByDistrictAndMonth(districtName, yearMonth string) ([]models.SalesRecord, error)
	FindByDistrictAndCategory(districtName, categoryName string) ([]models.SalesRecord, error)
	FindByCategory(categoryName string) ([]models.SalesRecord, error)

	SumAmountByDistrict(districtName string) (decimal.Decimal, error)
	SumCountByDistrict(districtName string) (int64, error)
	GroupByCategory(districtName string) ([]models.CategorySalesStat, error)
	GroupByDistrict(categoryName string) ([]models.DistrictSalesStat, error)
	GenderTotalsByDistrict(districtName string) (models.GenderSales, error)
	WeekdayWeekendTotalsByDistrict(districtName string) (models.WeekdayWeekendSales, error)
	TopDistricts(limit int) ([]models.DistrictSalesStat, error)
	TopCategories(limit int) ([]models.CategorySalesStat, error)
	MonthlyAverages(districtName string) ([]models.MonthlyAverageRow, error)
	AverageMonthlySales(districtName string) (float64, error)
	RecentBusinessCount(districtName string) (int64, error)

	Count() (int64, error)
	CreateBatch(records []models.SalesRecord) error
}

// DistrictCodeRepositoryInterface defines the contract for district code lookups
type DistrictCodeRepositoryInterface interface {
	GetAllOrderByCode() ([]models.DistrictCode, error)
	GetAllOrderByName() ([]models.DistrictCode, error)
	GetByCode(districtCode string) (*models.DistrictCode, error)
	GetByName(districtName string) (*models.DistrictCode, error)
	SearchByName(keyword string) ([]models.DistrictCode, error)
	Count() (int64, error)
	CreateBatch(codes []models.DistrictCode) error
}

// PopulationRepositoryInterface defines the contract for district population queries
type PopulationRepositoryInterface interface {
	GetAllOrderByPopulation() ([]models.DistrictPopulation, error)
	GetByName(districtName string) (*models.DistrictPopulation, error)
	GetTopByPopulation(limit int) ([]models.DistrictPopulation, error)
	GetWithMinimumPopulation(minPopulation int64) ([]models.DistrictPopulation, error)
	SearchByName(keyword string) ([]models.DistrictPopulation, error)
	Count() (int64, error)
	SumTotalPopulation() (int64, error)
	CreateBatch(districts []models.DistrictPopulation) error
}
