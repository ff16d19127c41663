package repositories

import (
	"testing"

	"seoul-commercial-district/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepositoryTestDB(s *suite.Suite) *gorm.DB {
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

type SalesRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo SalesRepositoryInterface
}

func TestSalesRepositorySuite(t *testing.T) {
	suite.Run(t, new(SalesRepositoryTestSuite))
}

func (s *SalesRepositoryTestSuite) SetupTest() {
	s.db = newRepositoryTestDB(&s.Suite)
	s.repo = NewSalesRepository(s.db)
}

func (s *SalesRepositoryTestSuite) seedRecord(district, category, yearMonth string, amount int64, count int64) {
	record := models.SalesRecord{
		BaseYearMonth:       yearMonth,
		DistrictCode:        11680,
		DistrictName:        district,
		ServiceCategoryName: category,
		MonthlyAmount:       decimal.NewFromInt(amount),
		MonthlyCount:        count,
		WeekdayAmount:       decimal.NewFromInt(amount * 6 / 10),
		WeekendAmount:       decimal.NewFromInt(amount - amount*6/10),
		MaleAmount:          decimal.NewFromInt(amount / 2),
		FemaleAmount:        decimal.NewFromInt(amount - amount/2),
		WeekdayCount:        count * 6 / 10,
		WeekendCount:        count - count*6/10,
		MaleCount:           count / 2,
		FemaleCount:         count - count/2,
	}
	s.Require().NoError(s.db.Create(&record).Error)
}

func (s *SalesRepositoryTestSuite) TestFindByDistrict() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("서초구", "카페", "202501", 2000, 20)

	records, err := s.repo.FindByDistrict("강남구")

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("강남구", records[0].DistrictName)
}

func (s *SalesRepositoryTestSuite) TestFindByDistrictAndMonth() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("강남구", "카페", "202502", 2000, 20)
	s.seedRecord("서초구", "카페", "202501", 3000, 30)

	records, err := s.repo.FindByDistrictAndMonth("강남구", "202502")

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("202502", records[0].BaseYearMonth)
}

func (s *SalesRepositoryTestSuite) TestFindByDistrictAndCategory() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("강남구", "치킨전문점", "202501", 2000, 20)

	records, err := s.repo.FindByDistrictAndCategory("강남구", "치킨전문점")

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("치킨전문점", records[0].ServiceCategoryName)
}

func (s *SalesRepositoryTestSuite) TestSumAmountByDistrict() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("강남구", "치킨전문점", "202501", 2500, 25)
	s.seedRecord("서초구", "카페", "202501", 9000, 90)

	total, err := s.repo.SumAmountByDistrict("강남구")

	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(3500)), "got %s", total)
}

func (s *SalesRepositoryTestSuite) TestSumAmountByDistrict_EmptyTableYieldsZero() {
	total, err := s.repo.SumAmountByDistrict("강남구")

	s.Require().NoError(err)
	s.True(total.IsZero())
}

func (s *SalesRepositoryTestSuite) TestSumCountByDistrict_EmptyTableYieldsZero() {
	total, err := s.repo.SumCountByDistrict("강남구")

	s.Require().NoError(err)
	s.Zero(total)
}

func (s *SalesRepositoryTestSuite) TestGroupByCategory_OrderedByAmountDescending() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("강남구", "카페", "202502", 1000, 10)
	s.seedRecord("강남구", "치킨전문점", "202501", 5000, 50)

	stats, err := s.repo.GroupByCategory("강남구")

	s.Require().NoError(err)
	s.Require().Len(stats, 2)
	s.Equal("치킨전문점", stats[0].ServiceCategoryName)
	s.Equal("카페", stats[1].ServiceCategoryName)
	s.True(stats[1].TotalAmount.Equal(decimal.NewFromInt(2000)), "got %s", stats[1].TotalAmount)
	s.Equal(int64(20), stats[1].TotalCount)
}

func (s *SalesRepositoryTestSuite) TestGroupByDistrict_OrderedByAmountDescending() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("서초구", "카페", "202501", 4000, 40)
	s.seedRecord("마포구", "치킨전문점", "202501", 9000, 90)

	stats, err := s.repo.GroupByDistrict("카페")

	s.Require().NoError(err)
	s.Require().Len(stats, 2)
	s.Equal("서초구", stats[0].DistrictName)
	s.Equal("강남구", stats[1].DistrictName)
}

func (s *SalesRepositoryTestSuite) TestGenderTotalsByDistrict() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("강남구", "치킨전문점", "202501", 3000, 30)

	totals, err := s.repo.GenderTotalsByDistrict("강남구")

	s.Require().NoError(err)
	s.True(totals.MaleAmount.Add(totals.FemaleAmount).Equal(decimal.NewFromInt(4000)))
	s.Equal(int64(40), totals.MaleCount+totals.FemaleCount)
}

func (s *SalesRepositoryTestSuite) TestWeekdayWeekendTotalsByDistrict_EmptyTableYieldsZero() {
	totals, err := s.repo.WeekdayWeekendTotalsByDistrict("강남구")

	s.Require().NoError(err)
	s.True(totals.WeekdayAmount.IsZero())
	s.True(totals.WeekendAmount.IsZero())
	s.Zero(totals.WeekdayCount)
	s.Zero(totals.WeekendCount)
}

func (s *SalesRepositoryTestSuite) TestTopDistricts_RespectsLimit() {
	s.seedRecord("강남구", "카페", "202501", 9000, 90)
	s.seedRecord("서초구", "카페", "202501", 7000, 70)
	s.seedRecord("마포구", "카페", "202501", 5000, 50)

	stats, err := s.repo.TopDistricts(2)

	s.Require().NoError(err)
	s.Require().Len(stats, 2)
	s.Equal("강남구", stats[0].DistrictName)
	s.Equal("서초구", stats[1].DistrictName)
}

func (s *SalesRepositoryTestSuite) TestTopCategories_RespectsLimit() {
	s.seedRecord("강남구", "카페", "202501", 9000, 90)
	s.seedRecord("강남구", "치킨전문점", "202501", 7000, 70)
	s.seedRecord("강남구", "한식음식점", "202501", 5000, 50)

	stats, err := s.repo.TopCategories(1)

	s.Require().NoError(err)
	s.Require().Len(stats, 1)
	s.Equal("카페", stats[0].ServiceCategoryName)
}

func (s *SalesRepositoryTestSuite) TestMonthlyAverages_AllDistricts() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("서초구", "카페", "202501", 3000, 30)

	rows, err := s.repo.MonthlyAverages("")

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("카페", rows[0].ServiceCategoryName)
	s.Equal("202501", rows[0].BaseYearMonth)
	s.InDelta(2000.0, rows[0].AverageAmount, 0.001)
}

func (s *SalesRepositoryTestSuite) TestMonthlyAverages_ScopedToDistrict() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("서초구", "카페", "202501", 3000, 30)

	rows, err := s.repo.MonthlyAverages("강남구")

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.InDelta(1000.0, rows[0].AverageAmount, 0.001)
}

func (s *SalesRepositoryTestSuite) TestMonthlyAverages_OrderedByCategoryThenMonth() {
	s.seedRecord("강남구", "카페", "202502", 100, 1)
	s.seedRecord("강남구", "카페", "202501", 100, 1)
	s.seedRecord("강남구", "치킨전문점", "202501", 100, 1)

	rows, err := s.repo.MonthlyAverages("강남구")

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("202501", rows[0].BaseYearMonth)
	s.Equal("202502", rows[1].BaseYearMonth)
	s.Equal("치킨전문점", rows[2].ServiceCategoryName)
}

func (s *SalesRepositoryTestSuite) TestAverageMonthlySales_EmptyTableYieldsZero() {
	average, err := s.repo.AverageMonthlySales("강남구")

	s.Require().NoError(err)
	s.Zero(average)
}

func (s *SalesRepositoryTestSuite) TestRecentBusinessCount_LatestMonthOnly() {
	s.seedRecord("강남구", "카페", "202501", 1000, 10)
	s.seedRecord("강남구", "치킨전문점", "202503", 2000, 20)
	s.seedRecord("강남구", "한식음식점", "202503", 3000, 30)
	s.seedRecord("서초구", "카페", "202504", 4000, 40)

	count, err := s.repo.RecentBusinessCount("강남구")

	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *SalesRepositoryTestSuite) TestCreateBatchAndCount() {
	records := []models.SalesRecord{
		{
			BaseYearMonth:       "202501",
			DistrictCode:        11680,
			DistrictName:        "강남구",
			ServiceCategoryName: "카페",
			MonthlyAmount:       decimal.NewFromInt(1000),
			MonthlyCount:        10,
		},
		{
			BaseYearMonth:       "202501",
			DistrictCode:        11650,
			DistrictName:        "서초구",
			ServiceCategoryName: "카페",
			MonthlyAmount:       decimal.NewFromInt(2000),
			MonthlyCount:        20,
		},
	}

	s.Require().NoError(s.repo.CreateBatch(records))

	count, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *SalesRepositoryTestSuite) TestCreateBatch_EmptySliceIsNoOp() {
	s.Require().NoError(s.repo.CreateBatch(nil))

	count, err := s.repo.Count()
	s.Require().NoError(err)
	s.Zero(count)
}
