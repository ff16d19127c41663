package services

import (
	"fmt"
	"math/rand"
	"time"

	"seoul-commercial-district/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// categoryPool pairs a service category code with its display name. The
// mix deliberately spans all four category groups.
type categoryInfo struct {
	Code string
	Name string
}

var categoryPool = []categoryInfo{
	{"CS100001", "한식음식점"},
	{"CS100002", "중식음식점"},
	{"CS100003", "일식음식점"},
	{"CS100004", "양식음식점"},
	{"CS100005", "분식전문점"},
	{"CS100006", "치킨전문점"},
	{"CS100007", "패스트푸드점"},
	{"CS100008", "피자전문점"},
	{"CS100009", "제과점"},
	{"CS100010", "카페"},
	{"CS100011", "호프-간이주점"},
	{"CS100012", "편의점"},
	{"CS100013", "미용실"},
	{"CS100014", "세탁소"},
	{"CS200001", "일반의원"},
	{"CS200002", "약국"},
}

// districtPool mirrors the seeded district code table
type districtInfo struct {
	Code int
	Name string
}

var districtPool = []districtInfo{
	{11110, "종로구"}, {11140, "중구"}, {11170, "용산구"}, {11200, "성동구"},
	{11215, "광진구"}, {11230, "동대문구"}, {11260, "중랑구"}, {11290, "성북구"},
	{11305, "강북구"}, {11320, "도봉구"}, {11350, "노원구"}, {11410, "은평구"},
	{11440, "서대문구"}, {11470, "마포구"}, {11500, "양천구"}, {11530, "강서구"},
	{11545, "구로구"}, {11560, "금천구"}, {11590, "영등포구"}, {11620, "동작구"},
	{11650, "관악구"}, {11680, "서초구"}, {11710, "강남구"}, {11740, "송파구"},
	{11770, "강동구"},
}

const (
	minMonthlyAmount = 5_000_000
	maxMonthlyAmount = 900_000_000
	minMonthlyCount  = 100
	maxMonthlyCount  = 40_000
)

type salesDataGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewSalesDataGenerator creates a generator for synthetic sales records
func NewSalesDataGenerator() SalesDataGeneratorInterface {
	seed := time.Now().UnixNano()
	return &salesDataGenerator{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GenerateRecords produces recordsPerMonth synthetic records for each of
// the trailing months, ending at the previous calendar month.
func (g *salesDataGenerator) GenerateRecords(months, recordsPerMonth int) []models.SalesRecord {
	if months <= 0 || recordsPerMonth <= 0 {
		return []models.SalesRecord{}
	}

	records := make([]models.SalesRecord, 0, months*recordsPerMonth)
	cursor := time.Now().AddDate(0, -1, 0)

	for m := 0; m < months; m++ {
		yearMonth := fmt.Sprintf("%04d%02d", cursor.Year(), int(cursor.Month()))
		for i := 0; i < recordsPerMonth; i++ {
			records = append(records, g.generateRecord(yearMonth))
		}
		cursor = cursor.AddDate(0, -1, 0)
	}

	return records
}

func (g *salesDataGenerator) generateRecord(yearMonth string) models.SalesRecord {
	district := districtPool[g.rng.Intn(len(districtPool))]
	category := categoryPool[g.rng.Intn(len(categoryPool))]

	amount := int64(g.faker.IntRange(minMonthlyAmount, maxMonthlyAmount))
	count := int64(g.faker.IntRange(minMonthlyCount, maxMonthlyCount))

	weekdayAmount, weekendAmount := g.splitAmount(amount)
	maleAmount, femaleAmount := g.splitAmount(amount)
	weekdayCount, weekendCount := g.splitCount(count)
	maleCount, femaleCount := g.splitCount(count)

	return models.SalesRecord{
		BaseYearMonth:       yearMonth,
		DistrictCode:        district.Code,
		DistrictName:        district.Name,
		ServiceCategoryCode: category.Code,
		ServiceCategoryName: category.Name,
		MonthlyAmount:       decimal.NewFromInt(amount),
		MonthlyCount:        count,
		WeekdayAmount:       weekdayAmount,
		WeekendAmount:       weekendAmount,
		MaleAmount:          maleAmount,
		FemaleAmount:        femaleAmount,
		WeekdayCount:        weekdayCount,
		WeekendCount:        weekendCount,
		MaleCount:           maleCount,
		FemaleCount:         femaleCount,
	}
}

// splitAmount divides a total into two parts summing exactly to the total
func (g *salesDataGenerator) splitAmount(total int64) (decimal.Decimal, decimal.Decimal) {
	share := int64(float64(total) * (0.4 + g.rng.Float64()*0.35))
	return decimal.NewFromInt(share), decimal.NewFromInt(total - share)
}

func (g *salesDataGenerator) splitCount(total int64) (int64, int64) {
	share := int64(float64(total) * (0.4 + g.rng.Float64()*0.35))
	return share, total - share
}
