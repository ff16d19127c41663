package models

// MonthlyAverageRow is the typed shape of one (category, month) AVG row
// from the store. Null averages are coalesced to zero at the repository
// boundary so the series builder never sees missing values.
type MonthlyAverageRow struct {
	ServiceCategoryName string  `json:"service_category_name"`
	BaseYearMonth       string  `json:"base_year_month"`
	AverageAmount       float64 `json:"average_amount"`
	AverageCount        float64 `json:"average_count"`
}

// MonthlyAveragePoint is one point of a category-group time series.
type MonthlyAveragePoint struct {
	CategoryGroup string  `json:"service_category_name"`
	YearMonth     string  `json:"year_month"`
	AverageAmount float64 `json:"average_amount"`
}

// CategoryGroupSeries is the per-group monthly series, with points
// sorted by year-month ascending.
type CategoryGroupSeries struct {
	CategoryGroup string                `json:"category_group"`
	MonthlyData   []MonthlyAveragePoint `json:"monthly_data"`
}
