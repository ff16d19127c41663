package repositories

import (
	"fmt"

	"seoul-commercial-district/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// salesRepository implements SalesRepositoryInterface
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales record repository
func NewSalesRepository(db *gorm.DB) SalesRepositoryInterface {
	return &salesRepository{
		db: db,
	}
}

// FindByDistrict retrieves all sales records for a district
func (r *salesRepository) FindByDistrict(districtName string) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := r.db.Where("district_name = ?", districtName).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get sales records by district: %w", err)
	}
	return records, nil
}

// FindByDistrictAndMonth retrieves a district's sales records for one YYYYMM period
func (r *salesRepository) FindByDistrictAndMonth(districtName, yearMonth string) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := r.db.Where("district_name = ? AND base_year_month = ?", districtName, yearMonth).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get sales records by district and month: %w", err)
	}
	return records, nil
}

// FindByDistrictAndCategory retrieves sales records for a district filtered by category
func (r *salesRepository) FindByDistrictAndCategory(districtName, categoryName string) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := r.db.Where("district_name = ? AND service_category_name = ?", districtName, categoryName).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get sales records by district and category: %w", err)
	}
	return records, nil
}

// FindByCategory retrieves all sales records for a service category
func (r *salesRepository) FindByCategory(categoryName string) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := r.db.Where("service_category_name = ?", categoryName).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get sales records by category: %w", err)
	}
	return records, nil
}

// SumAmountByDistrict returns the total monthly sales amount for a district.
// A district with no records yields zero, not an error.
func (r *salesRepository) SumAmountByDistrict(districtName string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := "SELECT COALESCE(SUM(monthly_amount), 0) AS total FROM sales_records WHERE district_name = ?"
	if err := r.db.Raw(query, districtName).Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales amount: %w", err)
	}

	return result.Total, nil
}

// SumCountByDistrict returns the total monthly sales count for a district
func (r *salesRepository) SumCountByDistrict(districtName string) (int64, error) {
	var result struct {
		Total int64
	}

	query := "SELECT COALESCE(SUM(monthly_count), 0) AS total FROM sales_records WHERE district_name = ?"
	if err := r.db.Raw(query, districtName).Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to sum sales count: %w", err)
	}

	return result.Total, nil
}

// GroupByCategory returns per-category totals within a district, ordered by total amount descending
func (r *salesRepository) GroupByCategory(districtName string) ([]models.CategorySalesStat, error) {
	var stats []models.CategorySalesStat

	query := `
		SELECT
			service_category_name,
			SUM(monthly_amount) AS total_amount,
			SUM(monthly_count) AS total_count
		FROM sales_records
		WHERE district_name = ?
		GROUP BY service_category_name
		ORDER BY total_amount DESC
	`

	if err := r.db.Raw(query, districtName).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to group sales by category: %w", err)
	}

	return stats, nil
}

// GroupByDistrict returns per-district totals for a category, ordered by total amount descending
func (r *salesRepository) GroupByDistrict(categoryName string) ([]models.DistrictSalesStat, error) {
	var stats []models.DistrictSalesStat

	query := `
		SELECT
			district_name,
			SUM(monthly_amount) AS total_amount,
			SUM(monthly_count) AS total_count
		FROM sales_records
		WHERE service_category_name = ?
		GROUP BY district_name
		ORDER BY total_amount DESC
	`

	if err := r.db.Raw(query, categoryName).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to group sales by district: %w", err)
	}

	return stats, nil
}

// GenderTotalsByDistrict returns the male/female sales split for a district
func (r *salesRepository) GenderTotalsByDistrict(districtName string) (models.GenderSales, error) {
	var result models.GenderSales

	query := `
		SELECT
			COALESCE(SUM(male_amount), 0) AS male_amount,
			COALESCE(SUM(female_amount), 0) AS female_amount,
			COALESCE(SUM(male_count), 0) AS male_count,
			COALESCE(SUM(female_count), 0) AS female_count
		FROM sales_records
		WHERE district_name = ?
	`

	if err := r.db.Raw(query, districtName).Scan(&result).Error; err != nil {
		return models.GenderSales{}, fmt.Errorf("failed to get gender totals: %w", err)
	}

	return result, nil
}

// WeekdayWeekendTotalsByDistrict returns the weekday/weekend sales split for a district
func (r *salesRepository) WeekdayWeekendTotalsByDistrict(districtName string) (models.WeekdayWeekendSales, error) {
	var result models.WeekdayWeekendSales

	query := `
		SELECT
			COALESCE(SUM(weekday_amount), 0) AS weekday_amount,
			COALESCE(SUM(weekend_amount), 0) AS weekend_amount,
			COALESCE(SUM(weekday_count), 0) AS weekday_count,
			COALESCE(SUM(weekend_count), 0) AS weekend_count
		FROM sales_records
		WHERE district_name = ?
	`

	if err := r.db.Raw(query, districtName).Scan(&result).Error; err != nil {
		return models.WeekdayWeekendSales{}, fmt.Errorf("failed to get weekday/weekend totals: %w", err)
	}

	return result, nil
}

// TopDistricts returns the highest-grossing districts, capped at limit
func (r *salesRepository) TopDistricts(limit int) ([]models.DistrictSalesStat, error) {
	var stats []models.DistrictSalesStat

	query := `
		SELECT
			district_name,
			SUM(monthly_amount) AS total_amount,
			SUM(monthly_count) AS total_count
		FROM sales_records
		GROUP BY district_name
		ORDER BY total_amount DESC
		LIMIT ?
	`

	if err := r.db.Raw(query, limit).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get top districts: %w", err)
	}

	return stats, nil
}

// TopCategories returns the highest-grossing service categories, capped at limit
func (r *salesRepository) TopCategories(limit int) ([]models.CategorySalesStat, error) {
	var stats []models.CategorySalesStat

	query := `
		SELECT
			service_category_name,
			SUM(monthly_amount) AS total_amount,
			SUM(monthly_count) AS total_count
		FROM sales_records
		GROUP BY service_category_name
		ORDER BY total_amount DESC
		LIMIT ?
	`

	if err := r.db.Raw(query, limit).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get top categories: %w", err)
	}

	return stats, nil
}

// MonthlyAverages returns per-(category, month) average sales rows.
// An empty districtName means all districts.
func (r *salesRepository) MonthlyAverages(districtName string) ([]models.MonthlyAverageRow, error) {
	var rows []models.MonthlyAverageRow

	query := `
		SELECT
			service_category_name,
			base_year_month,
			AVG(monthly_amount) AS average_amount,
			AVG(monthly_count) AS average_count
		FROM sales_records
	`
	args := []interface{}{}
	if districtName != "" {
		query += " WHERE district_name = ?"
		args = append(args, districtName)
	}
	query += `
		GROUP BY service_category_name, base_year_month
		ORDER BY service_category_name, base_year_month
	`

	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly averages: %w", err)
	}

	return rows, nil
}

// AverageMonthlySales returns the average monthly sales amount for a district
func (r *salesRepository) AverageMonthlySales(districtName string) (float64, error) {
	var result struct {
		Average float64
	}

	query := "SELECT COALESCE(AVG(monthly_amount), 0) AS average FROM sales_records WHERE district_name = ?"
	if err := r.db.Raw(query, districtName).Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to get average monthly sales: %w", err)
	}

	return result.Average, nil
}

// RecentBusinessCount returns the number of records for a district at its
// most recent base year-month
func (r *salesRepository) RecentBusinessCount(districtName string) (int64, error) {
	var result struct {
		Total int64
	}

	query := `
		SELECT COUNT(*) AS total
		FROM sales_records
		WHERE district_name = ?
		AND base_year_month = (SELECT MAX(base_year_month) FROM sales_records WHERE district_name = ?)
	`

	if err := r.db.Raw(query, districtName, districtName).Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to get recent business count: %w", err)
	}

	return result.Total, nil
}

// Count returns the total number of sales records
func (r *salesRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.SalesRecord{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count sales records: %w", err)
	}
	return total, nil
}

// CreateBatch inserts sales records in a single database transaction
func (r *salesRepository) CreateBatch(records []models.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to create sales records: %w", err)
		}
		return nil
	})
}
