package models

import "github.com/shopspring/decimal"

// CategorySalesStat is one GROUP BY row keyed by service category,
// ordered by total amount descending by the store.
type CategorySalesStat struct {
	ServiceCategoryName string          `json:"service_category_name"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	TotalCount          int64           `json:"total_count"`
}

// DistrictSalesStat is one GROUP BY row keyed by district name.
type DistrictSalesStat struct {
	DistrictName string          `json:"district_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalCount   int64           `json:"total_count"`
}

// GenderSales splits district sales by customer gender.
// Absent store values default to zero, never to an error.
type GenderSales struct {
	MaleAmount   decimal.Decimal `json:"male_amount"`
	FemaleAmount decimal.Decimal `json:"female_amount"`
	MaleCount    int64           `json:"male_count"`
	FemaleCount  int64           `json:"female_count"`
}

// WeekdayWeekendSales splits district sales by weekday versus weekend.
type WeekdayWeekendSales struct {
	WeekdayAmount decimal.Decimal `json:"weekday_amount"`
	WeekendAmount decimal.Decimal `json:"weekend_amount"`
	WeekdayCount  int64           `json:"weekday_count"`
	WeekendCount  int64           `json:"weekend_count"`
}

// DistrictTotalSales is the composite per-district statistics payload.
// It is assembled from four independent store aggregates; a failure in
// any of them fails the whole composite.
type DistrictTotalSales struct {
	DistrictName             string              `json:"district_name"`
	TotalAmount              decimal.Decimal     `json:"total_amount"`
	TotalCount               int64               `json:"total_count"`
	CategoryStatistics       []CategorySalesStat `json:"category_statistics"`
	GenderStatistics         GenderSales         `json:"gender_statistics"`
	WeekdayWeekendStatistics WeekdayWeekendSales `json:"weekday_weekend_statistics"`
}
