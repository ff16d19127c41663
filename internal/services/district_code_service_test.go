package services

import (
	"testing"

	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DistrictCodeServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service DistrictCodeServiceInterface
}

func TestDistrictCodeServiceSuite(t *testing.T) {
	suite.Run(t, new(DistrictCodeServiceTestSuite))
}

func (s *DistrictCodeServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.DistrictCode{}))

	s.db = db
	s.service = NewDistrictCodeService(repositories.NewDistrictCodeRepository(db))

	codes := []models.DistrictCode{
		{DistrictCode: "11680", DistrictName: "강남구"},
		{DistrictCode: "11110", DistrictName: "종로구"},
		{DistrictCode: "11740", DistrictName: "강동구"},
	}
	s.Require().NoError(db.Create(&codes).Error)
}

func (s *DistrictCodeServiceTestSuite) TestGetAllByCode() {
	codes, err := s.service.GetAllByCode()

	s.Require().NoError(err)
	s.Require().Len(codes, 3)
	s.Equal("11110", codes[0].DistrictCode)
}

func (s *DistrictCodeServiceTestSuite) TestGetAllByName() {
	codes, err := s.service.GetAllByName()

	s.Require().NoError(err)
	s.Require().Len(codes, 3)
	s.Equal("강남구", codes[0].DistrictName)
}

func (s *DistrictCodeServiceTestSuite) TestGetByCode_Found() {
	code, err := s.service.GetByCode("11680")

	s.Require().NoError(err)
	s.Equal("강남구", code.DistrictName)
}

func (s *DistrictCodeServiceTestSuite) TestGetByCode_NotFound() {
	code, err := s.service.GetByCode("11999")

	s.ErrorIs(err, ErrNotFound)
	s.Nil(code)
}

func (s *DistrictCodeServiceTestSuite) TestGetByName_NotFound() {
	code, err := s.service.GetByName("없는구")

	s.ErrorIs(err, ErrNotFound)
	s.Nil(code)
}

func (s *DistrictCodeServiceTestSuite) TestSearch_TrimsKeyword() {
	codes, err := s.service.Search("  강  ")

	s.Require().NoError(err)
	s.Len(codes, 2)
}

func (s *DistrictCodeServiceTestSuite) TestSearch_BlankKeyword() {
	for _, keyword := range []string{"", "   "} {
		_, err := s.service.Search(keyword)
		s.ErrorIs(err, ErrEmptyKeyword, "keyword %q should be rejected", keyword)
	}
}

func (s *DistrictCodeServiceTestSuite) TestCount() {
	count, err := s.service.Count()

	s.Require().NoError(err)
	s.Equal(int64(3), count)
}
