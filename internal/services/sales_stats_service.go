package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidLimit is returned when a top-N limit is not a positive integer
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

type salesStatsService struct {
	salesRepo repositories.SalesRepositoryInterface
	series    MonthlySeriesBuilderInterface
	metrics   MetricsRecorderInterface
}

// NewSalesStatsService creates the sales statistics service
func NewSalesStatsService(
	salesRepo repositories.SalesRepositoryInterface,
	series MonthlySeriesBuilderInterface,
	metrics MetricsRecorderInterface,
) SalesStatsServiceInterface {
	return &salesStatsService{
		salesRepo: salesRepo,
		series:    series,
		metrics:   metrics,
	}
}

func (s *salesStatsService) GetRecordsByDistrict(districtName string) ([]models.SalesRecord, error) {
	records, err := s.salesRepo.FindByDistrict(districtName)
	if err != nil {
		slog.Error("failed to fetch sales records by district",
			"district_name", districtName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch sales records: %w", err)
	}

	s.recordQuery("sales_by_district")
	return records, nil
}

func (s *salesStatsService) GetRecordsByDistrictAndMonth(districtName, yearMonth string) ([]models.SalesRecord, error) {
	records, err := s.salesRepo.FindByDistrictAndMonth(districtName, yearMonth)
	if err != nil {
		slog.Error("failed to fetch sales records by district and month",
			"district_name", districtName,
			"year_month", yearMonth,
			"error", err)
		return nil, fmt.Errorf("failed to fetch sales records: %w", err)
	}

	s.recordQuery("sales_by_district_and_month")
	return records, nil
}

func (s *salesStatsService) GetRecordsByDistrictAndCategory(districtName, categoryName string) ([]models.SalesRecord, error) {
	records, err := s.salesRepo.FindByDistrictAndCategory(districtName, categoryName)
	if err != nil {
		slog.Error("failed to fetch sales records by district and category",
			"district_name", districtName,
			"category_name", categoryName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch sales records: %w", err)
	}

	s.recordQuery("sales_by_district_and_category")
	return records, nil
}

func (s *salesStatsService) GetRecordsByCategory(categoryName string) ([]models.SalesRecord, error) {
	records, err := s.salesRepo.FindByCategory(categoryName)
	if err != nil {
		slog.Error("failed to fetch sales records by category",
			"category_name", categoryName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch sales records: %w", err)
	}

	s.recordQuery("sales_by_category")
	return records, nil
}

func (s *salesStatsService) GetTotalAmountByDistrict(districtName string) (decimal.Decimal, error) {
	total, err := s.salesRepo.SumAmountByDistrict(districtName)
	if err != nil {
		slog.Error("failed to sum sales amount",
			"district_name", districtName,
			"error", err)
		return decimal.Zero, fmt.Errorf("failed to sum sales amount: %w", err)
	}
	return total, nil
}

func (s *salesStatsService) GetTotalCountByDistrict(districtName string) (int64, error) {
	total, err := s.salesRepo.SumCountByDistrict(districtName)
	if err != nil {
		slog.Error("failed to sum sales count",
			"district_name", districtName,
			"error", err)
		return 0, fmt.Errorf("failed to sum sales count: %w", err)
	}
	return total, nil
}

// GetDistrictTotalSales assembles the composite per-district statistics
// payload. Any failing aggregate fails the whole composite; no partial
// result is returned.
func (s *salesStatsService) GetDistrictTotalSales(districtName string) (*models.DistrictTotalSales, error) {
	start := time.Now()

	totalAmount, err := s.salesRepo.SumAmountByDistrict(districtName)
	if err != nil {
		return nil, s.compositeError(districtName, "total amount", err)
	}

	totalCount, err := s.salesRepo.SumCountByDistrict(districtName)
	if err != nil {
		return nil, s.compositeError(districtName, "total count", err)
	}

	categoryStats, err := s.salesRepo.GroupByCategory(districtName)
	if err != nil {
		return nil, s.compositeError(districtName, "category statistics", err)
	}

	genderStats, err := s.salesRepo.GenderTotalsByDistrict(districtName)
	if err != nil {
		return nil, s.compositeError(districtName, "gender statistics", err)
	}

	weekdayStats, err := s.salesRepo.WeekdayWeekendTotalsByDistrict(districtName)
	if err != nil {
		return nil, s.compositeError(districtName, "weekday/weekend statistics", err)
	}

	s.recordQuery("district_total_sales")
	s.recordDuration("district_total_sales", time.Since(start))

	slog.Info("district total sales assembled",
		"district_name", districtName,
		"total_amount", totalAmount.String(),
		"category_count", len(categoryStats))

	return &models.DistrictTotalSales{
		DistrictName:             districtName,
		TotalAmount:              totalAmount,
		TotalCount:               totalCount,
		CategoryStatistics:       categoryStats,
		GenderStatistics:         genderStats,
		WeekdayWeekendStatistics: weekdayStats,
	}, nil
}

func (s *salesStatsService) compositeError(districtName, part string, err error) error {
	slog.Error("failed to assemble district total sales",
		"district_name", districtName,
		"failed_part", part,
		"error", err)
	return fmt.Errorf("failed to fetch %s: %w", part, err)
}

func (s *salesStatsService) GetCategoryBreakdown(districtName string) ([]models.CategorySalesStat, error) {
	stats, err := s.salesRepo.GroupByCategory(districtName)
	if err != nil {
		slog.Error("failed to fetch category breakdown",
			"district_name", districtName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch category breakdown: %w", err)
	}

	s.recordQuery("category_breakdown")
	return stats, nil
}

func (s *salesStatsService) GetDistrictBreakdown(categoryName string) ([]models.DistrictSalesStat, error) {
	stats, err := s.salesRepo.GroupByDistrict(categoryName)
	if err != nil {
		slog.Error("failed to fetch district breakdown",
			"category_name", categoryName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch district breakdown: %w", err)
	}

	s.recordQuery("district_breakdown")
	return stats, nil
}

func (s *salesStatsService) GetGenderSplit(districtName string) (models.GenderSales, error) {
	split, err := s.salesRepo.GenderTotalsByDistrict(districtName)
	if err != nil {
		slog.Error("failed to fetch gender split",
			"district_name", districtName,
			"error", err)
		return models.GenderSales{}, fmt.Errorf("failed to fetch gender split: %w", err)
	}
	return split, nil
}

func (s *salesStatsService) GetWeekdayWeekendSplit(districtName string) (models.WeekdayWeekendSales, error) {
	split, err := s.salesRepo.WeekdayWeekendTotalsByDistrict(districtName)
	if err != nil {
		slog.Error("failed to fetch weekday/weekend split",
			"district_name", districtName,
			"error", err)
		return models.WeekdayWeekendSales{}, fmt.Errorf("failed to fetch weekday/weekend split: %w", err)
	}
	return split, nil
}

func (s *salesStatsService) GetTopDistricts(limit int) ([]models.DistrictSalesStat, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	stats, err := s.salesRepo.TopDistricts(limit)
	if err != nil {
		slog.Error("failed to fetch top districts",
			"limit", limit,
			"error", err)
		return nil, fmt.Errorf("failed to fetch top districts: %w", err)
	}

	s.recordQuery("top_districts")
	return stats, nil
}

func (s *salesStatsService) GetTopCategories(limit int) ([]models.CategorySalesStat, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	stats, err := s.salesRepo.TopCategories(limit)
	if err != nil {
		slog.Error("failed to fetch top categories",
			"limit", limit,
			"error", err)
		return nil, fmt.Errorf("failed to fetch top categories: %w", err)
	}

	s.recordQuery("top_categories")
	return stats, nil
}

// GetMonthlyCategoryGroupSeries builds per-group monthly average series.
// An empty districtName covers all districts.
func (s *salesStatsService) GetMonthlyCategoryGroupSeries(districtName string) ([]models.CategoryGroupSeries, error) {
	start := time.Now()

	rows, err := s.salesRepo.MonthlyAverages(districtName)
	if err != nil {
		slog.Error("failed to fetch monthly averages",
			"district_name", districtName,
			"error", err)
		return nil, fmt.Errorf("failed to fetch monthly averages: %w", err)
	}

	series := s.series.BuildSeries(rows)

	s.recordQuery("monthly_category_group_series")
	s.recordDuration("monthly_category_group_series", time.Since(start))

	return series, nil
}

func (s *salesStatsService) GetAverageMonthlySales(districtName string) (float64, error) {
	average, err := s.salesRepo.AverageMonthlySales(districtName)
	if err != nil {
		slog.Error("failed to fetch average monthly sales",
			"district_name", districtName,
			"error", err)
		return 0, fmt.Errorf("failed to fetch average monthly sales: %w", err)
	}
	return average, nil
}

func (s *salesStatsService) GetRecentBusinessCount(districtName string) (int64, error) {
	count, err := s.salesRepo.RecentBusinessCount(districtName)
	if err != nil {
		slog.Error("failed to fetch recent business count",
			"district_name", districtName,
			"error", err)
		return 0, fmt.Errorf("failed to fetch recent business count: %w", err)
	}
	return count, nil
}

func (s *salesStatsService) recordQuery(operation string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("sales_query", map[string]string{"operation": operation})
	}
}

func (s *salesStatsService) recordDuration(operation string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordQueryDuration(operation, duration)
	}
}
