package handlers

import (
	"errors"
	"net/http"

	"seoul-commercial-district/internal/dto"
	apierrors "seoul-commercial-district/internal/errors"
	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSalesTopLimit = 10
)

type SalesHandler struct {
	salesService services.SalesStatsServiceInterface
}

func NewSalesHandler(salesService services.SalesStatsServiceInterface) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
	}
}

// GetByDistrict lists raw sales records for a district
//
// Method: GET /api/v1/sales/district/:districtName
//
// Query parameters:
//   - yearMonth: optional YYYYMM period filter
//
// An unknown district yields an empty list, not an error.
func (h *SalesHandler) GetByDistrict(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	var query dto.SalesByDistrictQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	var records []models.SalesRecord
	var err error
	if query.YearMonth != "" {
		records, err = h.salesService.GetRecordsByDistrictAndMonth(districtName, query.YearMonth)
	} else {
		records, err = h.salesService.GetRecordsByDistrict(districtName)
	}
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: records,
		Meta: map[string]int{"count": len(records)},
	})
}

// GetByDistrictAndCategory lists sales records for a district and category
//
// Method: GET /api/v1/sales/district/:districtName/category/:categoryName
func (h *SalesHandler) GetByDistrictAndCategory(c echo.Context) error {
	districtName := c.Param("districtName")
	categoryName := c.Param("categoryName")
	if districtName == "" || categoryName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName and categoryName are required"))
	}

	records, err := h.salesService.GetRecordsByDistrictAndCategory(districtName, categoryName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: records,
		Meta: map[string]int{"count": len(records)},
	})
}

// GetByCategory lists sales records for a service category across all districts
//
// Method: GET /api/v1/sales/category/:categoryName
func (h *SalesHandler) GetByCategory(c echo.Context) error {
	categoryName := c.Param("categoryName")
	if categoryName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("categoryName is required"))
	}

	records, err := h.salesService.GetRecordsByCategory(categoryName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: records,
		Meta: map[string]int{"count": len(records)},
	})
}

// GetDistrictTotal returns the composite statistics payload for a district
//
// Method: GET /api/v1/sales/district/:districtName/total
//
// Success Response: 200 OK
//   - district_name: String district name
//   - total_amount: Decimal district-wide sales amount
//   - total_count: Integer district-wide sales count
//   - category_statistics: Array of per-category totals, highest first
//   - gender_statistics: Object with male/female amounts and counts
//   - weekday_weekend_statistics: Object with weekday/weekend amounts and counts
//
// A district with no sales data returns zero totals and an empty
// category array.
func (h *SalesHandler) GetDistrictTotal(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	total, err := h.salesService.GetDistrictTotalSales(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: total,
	})
}

// GetDistrictTotalAmount returns the district-wide sales amount
//
// Method: GET /api/v1/sales/district/:districtName/total/amount
func (h *SalesHandler) GetDistrictTotalAmount(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	amount, err := h.salesService.GetTotalAmountByDistrict(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"district_name": districtName,
			"total_amount":  amount,
		},
	})
}

// GetDistrictTotalCount returns the district-wide sales count
//
// Method: GET /api/v1/sales/district/:districtName/total/count
func (h *SalesHandler) GetDistrictTotalCount(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	count, err := h.salesService.GetTotalCountByDistrict(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"district_name": districtName,
			"total_count":   count,
		},
	})
}

// GetCategoryBreakdown returns per-category totals within a district
//
// Method: GET /api/v1/sales/district/:districtName/categories
func (h *SalesHandler) GetCategoryBreakdown(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	stats, err := h.salesService.GetCategoryBreakdown(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: stats,
		Meta: map[string]int{"count": len(stats)},
	})
}

// GetDistrictBreakdown returns per-district totals for a category
//
// Method: GET /api/v1/sales/category/:categoryName/districts
func (h *SalesHandler) GetDistrictBreakdown(c echo.Context) error {
	categoryName := c.Param("categoryName")
	if categoryName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("categoryName is required"))
	}

	stats, err := h.salesService.GetDistrictBreakdown(categoryName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: stats,
		Meta: map[string]int{"count": len(stats)},
	})
}

// GetGenderSplit returns the male/female sales split for a district
//
// Method: GET /api/v1/sales/district/:districtName/gender
func (h *SalesHandler) GetGenderSplit(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	split, err := h.salesService.GetGenderSplit(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: split,
	})
}

// GetWeekdayWeekendSplit returns the weekday/weekend sales split for a district
//
// Method: GET /api/v1/sales/district/:districtName/weekday-weekend
func (h *SalesHandler) GetWeekdayWeekendSplit(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	split, err := h.salesService.GetWeekdayWeekendSplit(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: split,
	})
}

// GetTopDistricts returns the highest-grossing districts
//
// Method: GET /api/v1/sales/top/districts
//
// Query parameters:
//   - limit: positive integer, defaults to 10
func (h *SalesHandler) GetTopDistricts(c echo.Context) error {
	limit, err := getIntParam(c, "limit", defaultSalesTopLimit)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	stats, err := h.salesService.GetTopDistricts(limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: stats,
		Meta: map[string]int{"limit": limit, "count": len(stats)},
	})
}

// GetTopCategories returns the highest-grossing service categories
//
// Method: GET /api/v1/sales/top/categories
//
// Query parameters:
//   - limit: positive integer, defaults to 10
func (h *SalesHandler) GetTopCategories(c echo.Context) error {
	limit, err := getIntParam(c, "limit", defaultSalesTopLimit)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	stats, err := h.salesService.GetTopCategories(limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: stats,
		Meta: map[string]int{"limit": limit, "count": len(stats)},
	})
}

// GetMonthlyCategoryGroups returns per-group monthly average series across
// all districts
//
// Method: GET /api/v1/sales/monthly/category-groups
//
// Success Response: 200 OK
//   - Array of category group series ordered by fixed group rank, each
//     holding month points sorted ascending by year-month
func (h *SalesHandler) GetMonthlyCategoryGroups(c echo.Context) error {
	series, err := h.salesService.GetMonthlyCategoryGroupSeries("")
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: series,
	})
}

// GetMonthlyCategoryGroupsByDistrict returns per-group monthly average
// series scoped to a single district
//
// Method: GET /api/v1/sales/monthly/category-groups/:districtName
func (h *SalesHandler) GetMonthlyCategoryGroupsByDistrict(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	series, err := h.salesService.GetMonthlyCategoryGroupSeries(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: series,
	})
}

// GetAverageMonthlySales returns the average monthly sales amount for a district
//
// Method: GET /api/v1/sales/district/:districtName/average-monthly-sales
func (h *SalesHandler) GetAverageMonthlySales(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	average, err := h.salesService.GetAverageMonthlySales(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"district_name":         districtName,
			"average_monthly_sales": average,
		},
	})
}

// GetRecentBusinessCount returns the number of businesses reporting in the
// most recent month for a district
//
// Method: GET /api/v1/sales/district/:districtName/recent-businesses
func (h *SalesHandler) GetRecentBusinessCount(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	count, err := h.salesService.GetRecentBusinessCount(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"district_name":         districtName,
			"recent_business_count": count,
		},
	})
}

func (h *SalesHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidLimit) {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("limit must be a positive integer"))
	}

	return SendSystemError(c, err)
}
