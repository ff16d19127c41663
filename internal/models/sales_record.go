package models

import (
	"github.com/shopspring/decimal"
)

// SalesRecord represents one month of sales figures for a single business
// category within a district. Records are loaded once at startup and are
// read-only afterwards; amounts use decimal because district-wide sums
// exceed the int64 range.
type SalesRecord struct {
	ID                  uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	BaseYearMonth       string          `gorm:"type:varchar(10);not null;index" json:"base_year_month"`
	DistrictCode        int             `gorm:"not null" json:"district_code"`
	DistrictName        string          `gorm:"type:varchar(20);not null;index" json:"district_name"`
	ServiceCategoryCode string          `gorm:"type:varchar(20)" json:"service_category_code"`
	ServiceCategoryName string          `gorm:"type:varchar(50);not null;index" json:"service_category_name"`
	MonthlyAmount       decimal.Decimal `gorm:"type:numeric(30,0);not null;default:0" json:"monthly_sales_amount"`
	MonthlyCount        int64           `gorm:"not null;default:0" json:"monthly_sales_count"`
	WeekdayAmount       decimal.Decimal `gorm:"type:numeric(30,0);not null;default:0" json:"weekday_sales_amount"`
	WeekendAmount       decimal.Decimal `gorm:"type:numeric(30,0);not null;default:0" json:"weekend_sales_amount"`
	MaleAmount          decimal.Decimal `gorm:"type:numeric(30,0);not null;default:0" json:"male_sales_amount"`
	FemaleAmount        decimal.Decimal `gorm:"type:numeric(30,0);not null;default:0" json:"female_sales_amount"`
	WeekdayCount        int64           `gorm:"not null;default:0" json:"weekday_sales_count"`
	WeekendCount        int64           `gorm:"not null;default:0" json:"weekend_sales_count"`
	MaleCount           int64           `gorm:"not null;default:0" json:"male_sales_count"`
	FemaleCount         int64           `gorm:"not null;default:0" json:"female_sales_count"`
}

// TableName overrides the default pluralization
func (SalesRecord) TableName() string {
	return "sales_records"
}
