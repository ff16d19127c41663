package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/repositories"
	"seoul-commercial-district/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newHandlerTestDB opens an isolated in-memory store with the full schema
func newHandlerTestDB(s *suite.Suite) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&models.DistrictCode{},
		&models.DistrictPopulation{},
		&models.SalesRecord{},
	))
	return db
}

type DistrictHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *gorm.DB
	handler *DistrictHandler
}

func TestDistrictHandlerSuite(t *testing.T) {
	suite.Run(t, new(DistrictHandlerTestSuite))
}

func (s *DistrictHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.db = newHandlerTestDB(&s.Suite)
	service := services.NewPopulationService(repositories.NewPopulationRepository(s.db), nil)
	s.handler = NewDistrictHandler(service)
}

func (s *DistrictHandlerTestSuite) seedDistrict(name string, total int64) {
	district := models.DistrictPopulation{
		DistrictName:       name,
		TotalPopulation:    total,
		ResidentPopulation: total - int64(gofakeit.Number(1000, 20000)),
		WorkerPopulation:   int64(gofakeit.Number(100000, 900000)),
		FloatingPopulation: int64(gofakeit.Number(200000, 1500000)),
	}
	s.Require().NoError(s.db.Create(&district).Error)
}

func (s *DistrictHandlerTestSuite) newContext(target string, paramNames, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if len(paramNames) > 0 {
		c.SetParamNames(paramNames...)
		c.SetParamValues(paramValues...)
	}
	return c, rec
}

func (s *DistrictHandlerTestSuite) TestGetAll_ReturnsDistrictsWithMeta() {
	s.seedDistrict("강남구", 550000)
	s.seedDistrict("송파구", 680000)

	c, rec := s.newContext("/api/v1/population", nil, nil)

	s.Require().NoError(s.handler.GetAll(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []models.DistrictPopulation `json:"data"`
		Meta map[string]int              `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data, 2)
	s.Equal(2, response.Meta["count"])
	s.Equal("송파구", response.Data[0].DistrictName)
}

func (s *DistrictHandlerTestSuite) TestGetByName_Found() {
	s.seedDistrict("마포구", 370000)

	c, rec := s.newContext("/api/v1/population/district/마포구",
		[]string{"districtName"}, []string{"마포구"})

	s.Require().NoError(s.handler.GetByName(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.DistrictPopulation `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("마포구", response.Data.DistrictName)
}

func (s *DistrictHandlerTestSuite) TestGetByName_UnknownDistrictReturns404() {
	c, rec := s.newContext("/api/v1/population/district/없는구",
		[]string{"districtName"}, []string{"없는구"})

	s.Require().NoError(s.handler.GetByName(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("DISTRICT_001", response.Error.Code)
}

func (s *DistrictHandlerTestSuite) TestGetTop_DefaultLimit() {
	for i, name := range []string{"강남구", "송파구", "마포구", "서초구", "종로구", "중구"} {
		s.seedDistrict(name, int64(100000*(i+1)))
	}

	c, rec := s.newContext("/api/v1/population/top", nil, nil)

	s.Require().NoError(s.handler.GetTop(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []models.DistrictPopulation `json:"data"`
		Meta map[string]int              `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data, 5)
	s.Equal(5, response.Meta["limit"])
}

func (s *DistrictHandlerTestSuite) TestGetTop_LimitOutOfRangeReturns400() {
	c, rec := s.newContext("/api/v1/population/top?limit=30", nil, nil)

	s.Require().NoError(s.handler.GetTop(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_004", response.Error.Code)
	s.Contains(response.Error.Details[0], "between 1 and 25")
}

func (s *DistrictHandlerTestSuite) TestGetWithMinimumPopulation_AppliesThreshold() {
	s.seedDistrict("송파구", 680000)
	s.seedDistrict("강남구", 550000)
	s.seedDistrict("종로구", 150000)

	c, rec := s.newContext("/api/v1/population/minimum?minPopulation=550000", nil, nil)

	s.Require().NoError(s.handler.GetWithMinimumPopulation(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []models.DistrictPopulation `json:"data"`
		Meta map[string]int              `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Equal(2, response.Meta["count"])
	s.Equal("송파구", response.Data[0].DistrictName)
}

func (s *DistrictHandlerTestSuite) TestGetWithMinimumPopulation_NegativeThresholdReturns400() {
	s.seedDistrict("강남구", 550000)

	for _, threshold := range []string{"-1", "-5"} {
		c, rec := s.newContext("/api/v1/population/minimum?minPopulation="+threshold, nil, nil)

		s.Require().NoError(s.handler.GetWithMinimumPopulation(c))
		s.Equal(http.StatusBadRequest, rec.Code, "threshold %s should be rejected", threshold)

		var response ErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("VALIDATION_004", response.Error.Code)
	}
}

func (s *DistrictHandlerTestSuite) TestGetWithMinimumPopulation_MalformedThresholdReturns400() {
	c, rec := s.newContext("/api/v1/population/minimum?minPopulation=abc", nil, nil)

	s.Require().NoError(s.handler.GetWithMinimumPopulation(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_003", response.Error.Code)
}

func (s *DistrictHandlerTestSuite) TestGetTop_MalformedLimitReturns400() {
	for _, limit := range []string{"abc", "10abc", "1.5"} {
		c, rec := s.newContext("/api/v1/population/top?limit="+limit, nil, nil)

		s.Require().NoError(s.handler.GetTop(c))
		s.Equal(http.StatusBadRequest, rec.Code, "limit %s should be rejected", limit)

		var response ErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("VALIDATION_003", response.Error.Code)
		s.Contains(response.Error.Details[0], "limit must be an integer")
	}
}

func (s *DistrictHandlerTestSuite) TestSearch_EmptyKeywordReturns400() {
	c, rec := s.newContext("/api/v1/population/search?keyword=", nil, nil)

	s.Require().NoError(s.handler.Search(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_005", response.Error.Code)
}

func (s *DistrictHandlerTestSuite) TestSearch_MatchingKeyword() {
	s.seedDistrict("강남구", 550000)
	s.seedDistrict("강동구", 430000)
	s.seedDistrict("종로구", 150000)

	c, rec := s.newContext("/api/v1/population/search?keyword=강", nil, nil)

	s.Require().NoError(s.handler.Search(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Meta map[string]int `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Meta["count"])
}

func (s *DistrictHandlerTestSuite) TestGetSummary() {
	s.seedDistrict("강남구", 500000)
	s.seedDistrict("송파구", 700000)

	c, rec := s.newContext("/api/v1/population/summary", nil, nil)

	s.Require().NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.SeoulPopulationSummary `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(2), response.Data.TotalDistricts)
	s.Equal(int64(1200000), response.Data.TotalPopulation)
	s.Equal(int64(600000), response.Data.AveragePopulationPerDistrict)
}
