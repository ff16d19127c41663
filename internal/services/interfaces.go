package services

import (
	"time"

	"seoul-commercial-district/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryClassifierInterface maps a raw service category name to one of
// the four fixed category groups.
type CategoryClassifierInterface interface {
	Classify(categoryName string) models.CategoryGroup
}

// MonthlySeriesBuilderInterface turns per-(category, month) average rows
// into per-group monthly time series.
type MonthlySeriesBuilderInterface interface {
	BuildSeries(rows []models.MonthlyAverageRow) []models.CategoryGroupSeries
}

// SalesStatsServiceInterface defines sales statistics operations.
// District and category lookups that match nothing return empty results
// or zero totals rather than errors.
type SalesStatsServiceInterface interface {
	GetRecordsByDistrict(districtName string) ([]models.SalesRecord, error)
	GetRecordsByDistrictAndMonth(districtName, yearMonth string) ([]models.SalesRecord, error)
	GetRecordsByDistrictAndCategory(districtName, categoryName string) ([]models.SalesRecord, error)
	GetRecordsByCategory(categoryName string) ([]models.SalesRecord, error)

	GetTotalAmountByDistrict(districtName string) (decimal.Decimal, error)
	GetTotalCountByDistrict(districtName string) (int64, error)
	GetDistrictTotalSales(districtName string) (*models.DistrictTotalSales, error)
	GetCategoryBreakdown(districtName string) ([]models.CategorySalesStat, error)
	GetDistrictBreakdown(categoryName string) ([]models.DistrictSalesStat, error)
	GetGenderSplit(districtName string) (models.GenderSales, error)
	GetWeekdayWeekendSplit(districtName string) (models.WeekdayWeekendSales, error)
	GetTopDistricts(limit int) ([]models.DistrictSalesStat, error)
	GetTopCategories(limit int) ([]models.CategorySalesStat, error)
	GetMonthlyCategoryGroupSeries(districtName string) ([]models.CategoryGroupSeries, error)
	GetAverageMonthlySales(districtName string) (float64, error)
	GetRecentBusinessCount(districtName string) (int64, error)
}

// PopulationServiceInterface defines district population query operations
type PopulationServiceInterface interface {
	GetAllDistricts() ([]models.DistrictPopulation, error)
	GetDistrictByName(districtName string) (*models.DistrictPopulation, error)
	GetTopDistricts(limit int) ([]models.DistrictPopulation, error)
	GetDistrictsWithMinimumPopulation(minPopulation int64) ([]models.DistrictPopulation, error)
	SearchDistricts(keyword string) ([]models.DistrictPopulation, error)
	GetSeoulSummary() (*models.SeoulPopulationSummary, error)
}

// DistrictCodeServiceInterface defines district code reference operations
type DistrictCodeServiceInterface interface {
	GetAllByCode() ([]models.DistrictCode, error)
	GetAllByName() ([]models.DistrictCode, error)
	GetByCode(districtCode string) (*models.DistrictCode, error)
	GetByName(districtName string) (*models.DistrictCode, error)
	Search(keyword string) ([]models.DistrictCode, error)
	Count() (int64, error)
}

// SalesDataGeneratorInterface produces synthetic sales records for
// development environments.
type SalesDataGeneratorInterface interface {
	GenerateRecords(months, recordsPerMonth int) []models.SalesRecord
}

// MetricsRecorderInterface abstracts the metrics backend so services do
// not depend on a concrete recorder.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordQueryDuration(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
