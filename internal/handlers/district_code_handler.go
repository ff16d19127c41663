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

type DistrictCodeHandler struct {
	districtCodeService services.DistrictCodeServiceInterface
}

func NewDistrictCodeHandler(districtCodeService services.DistrictCodeServiceInterface) *DistrictCodeHandler {
	return &DistrictCodeHandler{
		districtCodeService: districtCodeService,
	}
}

// GetAll lists all district codes
//
// Method: GET /api/v1/district-codes
//
// Query parameters:
//   - orderBy: "code" (default) or "name"
func (h *DistrictCodeHandler) GetAll(c echo.Context) error {
	orderBy := c.QueryParam("orderBy")

	var codes []models.DistrictCode
	var err error
	switch orderBy {
	case "", "code":
		codes, err = h.districtCodeService.GetAllByCode()
	case "name":
		codes, err = h.districtCodeService.GetAllByName()
	default:
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("orderBy must be 'code' or 'name'"))
	}
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: codes,
		Meta: map[string]int{"count": len(codes)},
	})
}

// GetByCode returns the district with the given 5-digit code
//
// Method: GET /api/v1/district-codes/code/:districtCode
//
// Error Responses:
//   - 400: Malformed district code
//   - 404: District code not found
func (h *DistrictCodeHandler) GetByCode(c echo.Context) error {
	var param dto.DistrictCodeParam
	if err := c.Bind(&param); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid districtCode"))
	}
	if err := c.Validate(&param); err != nil {
		return err
	}

	code, err := h.districtCodeService.GetByCode(param.DistrictCode)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return SendError(c, apierrors.DistrictCodeNotFound)
		}
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: code,
	})
}

// GetByName returns the district with the given exact name
//
// Method: GET /api/v1/district-codes/name/:districtName
func (h *DistrictCodeHandler) GetByName(c echo.Context) error {
	districtName := c.Param("districtName")
	if districtName == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("districtName is required"))
	}

	code, err := h.districtCodeService.GetByName(districtName)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: code,
	})
}

// Search finds district codes whose name contains a keyword
//
// Method: GET /api/v1/district-codes/search
//
// Query parameters:
//   - keyword: non-blank search term (required)
func (h *DistrictCodeHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")

	codes, err := h.districtCodeService.Search(keyword)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: codes,
		Meta: map[string]int{"count": len(codes)},
	})
}

// Count returns the number of registered district codes
//
// Method: GET /api/v1/district-codes/count
func (h *DistrictCodeHandler) Count(c echo.Context) error {
	total, err := h.districtCodeService.Count()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]int64{"count": total},
	})
}

func (h *DistrictCodeHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return SendError(c, apierrors.DistrictNotFound)
	}

	if errors.Is(err, services.ErrEmptyKeyword) {
		return SendError(c, apierrors.ValidationEmptyKeyword)
	}

	return SendSystemError(c, err)
}
