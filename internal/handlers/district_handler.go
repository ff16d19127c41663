package handlers

import (
	"errors"
	"net/http"

	apierrors "seoul-commercial-district/internal/errors"
	"seoul-commercial-district/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPopulationTopLimit = 5
)

type DistrictHandler struct {
	populationService services.PopulationServiceInterface
}

func NewDistrictHandler(populationService services.PopulationServiceInterface) *DistrictHandler {
	return &DistrictHandler{
		populationService: populationService,
	}
}

// GetAll lists all districts ordered by total population descending
//
// Method: GET /api/v1/population
func (h *DistrictHandler) GetAll(c echo.Context) error {
	districts, err := h.populationService.GetAllDistricts()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: districts,
		Meta: map[string]int{"count": len(districts)},
	})
}

// GetByName returns population statistics for a single district
//
// Method: GET /api/v1/population/district/:districtName
//
// Error Responses:
//   - 404: District not found
func (h *DistrictHandler) GetByName(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	district, err := h.populationService.GetDistrictByName(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: district,
	})
}

// GetTop returns the most populous districts
//
// Method: GET /api/v1/population/top
//
// Query parameters:
//   - limit: integer between 1 and 25, defaults to 5
func (h *DistrictHandler) GetTop(c echo.Context) error {
	limit, err := getIntParam(c, "limit", defaultPopulationTopLimit)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	districts, err := h.populationService.GetTopDistricts(limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: districts,
		Meta: map[string]int{"limit": limit, "count": len(districts)},
	})
}

// GetWithMinimumPopulation returns districts at or above a population threshold
//
// Method: GET /api/v1/population/minimum
//
// Query parameters:
//   - minPopulation: non-negative integer threshold, defaults to 0
func (h *DistrictHandler) GetWithMinimumPopulation(c echo.Context) error {
	minPopulation, err := getInt64Param(c, "minPopulation", 0)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	districts, err := h.populationService.GetDistrictsWithMinimumPopulation(minPopulation)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: districts,
		Meta: map[string]int{"count": len(districts)},
	})
}

// Search finds districts whose name contains a keyword
//
// Method: GET /api/v1/population/search
//
// Query parameters:
//   - keyword: non-blank search term (required)
func (h *DistrictHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")

	districts, err := h.populationService.SearchDistricts(keyword)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: districts,
		Meta: map[string]int{"count": len(districts)},
	})
}

// GetSummary returns city-wide population aggregates
//
// Method: GET /api/v1/population/summary
//
// Success Response: 200 OK
//   - total_districts: Integer number of districts
//   - total_population: Integer sum across districts
//   - average_population_per_district: Integer average (integer division)
func (h *DistrictHandler) GetSummary(c echo.Context) error {
	summary, err := h.populationService.GetSeoulSummary()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

func (h *DistrictHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return SendError(c, apierrors.DistrictNotFound)
	}

	if errors.Is(err, services.ErrLimitOutOfRange) {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("limit must be between 1 and 25"))
	}

	if errors.Is(err, services.ErrInvalidMinimumPopulation) {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("minPopulation must not be negative"))
	}

	if errors.Is(err, services.ErrEmptyKeyword) {
		return SendError(c, apierrors.ValidationEmptyKeyword)
	}

	return SendSystemError(c, err)
}
