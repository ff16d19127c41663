package dto

// SalesByDistrictQuery filters a district's sales records by an optional
// YYYYMM period.
type SalesByDistrictQuery struct {
	YearMonth string `query:"yearMonth" json:"year_month" validate:"omitempty,year_month"`
}

// DistrictCodeParam is the path parameter for district code lookups.
// Malformed codes are rejected before any store access.
type DistrictCodeParam struct {
	DistrictCode string `param:"districtCode" json:"district_code" validate:"required,district_code"`
}
