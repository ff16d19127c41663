package database

import (
	"fmt"
	"log/slog"

	"seoul-commercial-district/internal/config"
	"seoul-commercial-district/internal/models"
	"seoul-commercial-district/internal/repositories"
	"seoul-commercial-district/internal/services"
)

// Seeder loads reference data at startup. District codes and population
// statistics are loaded once and skipped when rows already exist, so a
// restart never duplicates data.
type Seeder struct {
	districtCodeRepo repositories.DistrictCodeRepositoryInterface
	populationRepo   repositories.PopulationRepositoryInterface
	salesRepo        repositories.SalesRepositoryInterface
	generator        services.SalesDataGeneratorInterface
	metrics          services.MetricsRecorderInterface
	cfg              *config.SeedConfig
}

func NewSeeder(
	districtCodeRepo repositories.DistrictCodeRepositoryInterface,
	populationRepo repositories.PopulationRepositoryInterface,
	salesRepo repositories.SalesRepositoryInterface,
	generator services.SalesDataGeneratorInterface,
	metrics services.MetricsRecorderInterface,
	cfg *config.SeedConfig,
) *Seeder {
	return &Seeder{
		districtCodeRepo: districtCodeRepo,
		populationRepo:   populationRepo,
		salesRepo:        salesRepo,
		generator:        generator,
		metrics:          metrics,
		cfg:              cfg,
	}
}

// Run seeds all reference data and, when enabled, a synthetic sales dataset
func (s *Seeder) Run() error {
	slog.Info("starting reference data initialization")

	if err := s.seedDistrictCodes(); err != nil {
		return fmt.Errorf("failed to seed district codes: %w", err)
	}

	if err := s.seedPopulationStatistics(); err != nil {
		return fmt.Errorf("failed to seed population statistics: %w", err)
	}

	if err := s.seedSalesData(); err != nil {
		return fmt.Errorf("failed to seed sales data: %w", err)
	}

	slog.Info("reference data initialization complete")
	return nil
}

func (s *Seeder) seedDistrictCodes() error {
	count, err := s.districtCodeRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("district codes already present, skipping seed", "count", count)
		return nil
	}

	codes := districtCodeData()
	if err := s.districtCodeRepo.CreateBatch(codes); err != nil {
		return err
	}

	s.recordSeeded("district_codes", int64(len(codes)))
	slog.Info("district codes seeded", "count", len(codes))
	return nil
}

func (s *Seeder) seedPopulationStatistics() error {
	count, err := s.populationRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("population statistics already present, skipping seed", "count", count)
		return nil
	}

	districts := populationData()
	if err := s.populationRepo.CreateBatch(districts); err != nil {
		return err
	}

	s.recordSeeded("district_population_statistics", int64(len(districts)))
	slog.Info("population statistics seeded", "count", len(districts))
	return nil
}

// seedSalesData loads a synthetic sales dataset for development setups.
// Disabled by default; real deployments load sales records externally.
func (s *Seeder) seedSalesData() error {
	if !s.cfg.SalesData {
		return nil
	}

	count, err := s.salesRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("sales records already present, skipping seed", "count", count)
		return nil
	}

	records := s.generator.GenerateRecords(s.cfg.SalesMonths, s.cfg.SalesPerMonth)
	if err := s.salesRepo.CreateBatch(records); err != nil {
		return err
	}

	s.recordSeeded("sales_records", int64(len(records)))
	slog.Info("synthetic sales records seeded",
		"count", len(records),
		"months", s.cfg.SalesMonths)
	return nil
}

func (s *Seeder) recordSeeded(table string, rows int64) {
	if s.metrics != nil {
		s.metrics.RecordGauge("seeded_records", float64(rows), map[string]string{"table": table})
	}
}

// districtCodeData returns the 25 Seoul administrative district codes
func districtCodeData() []models.DistrictCode {
	return []models.DistrictCode{
		{DistrictCode: "11110", DistrictName: "종로구"},
		{DistrictCode: "11140", DistrictName: "중구"},
		{DistrictCode: "11170", DistrictName: "용산구"},
		{DistrictCode: "11200", DistrictName: "성동구"},
		{DistrictCode: "11215", DistrictName: "광진구"},
		{DistrictCode: "11230", DistrictName: "동대문구"},
		{DistrictCode: "11260", DistrictName: "중랑구"},
		{DistrictCode: "11290", DistrictName: "성북구"},
		{DistrictCode: "11305", DistrictName: "강북구"},
		{DistrictCode: "11320", DistrictName: "도봉구"},
		{DistrictCode: "11350", DistrictName: "노원구"},
		{DistrictCode: "11410", DistrictName: "은평구"},
		{DistrictCode: "11440", DistrictName: "서대문구"},
		{DistrictCode: "11470", DistrictName: "마포구"},
		{DistrictCode: "11500", DistrictName: "양천구"},
		{DistrictCode: "11530", DistrictName: "강서구"},
		{DistrictCode: "11545", DistrictName: "구로구"},
		{DistrictCode: "11560", DistrictName: "금천구"},
		{DistrictCode: "11590", DistrictName: "영등포구"},
		{DistrictCode: "11620", DistrictName: "동작구"},
		{DistrictCode: "11650", DistrictName: "관악구"},
		{DistrictCode: "11680", DistrictName: "서초구"},
		{DistrictCode: "11710", DistrictName: "강남구"},
		{DistrictCode: "11740", DistrictName: "송파구"},
		{DistrictCode: "11770", DistrictName: "강동구"},
	}
}

// populationData returns fixed demographic figures for the 25 districts
func populationData() []models.DistrictPopulation {
	return []models.DistrictPopulation{
		district("강남구", 550000, 520000, 800000, 1200000,
			[7]int64{25000, 30000, 80000, 90000, 85000, 70000, 35000},
			[7]int64{23000, 28000, 75000, 85000, 80000, 65000, 32000}),
		district("송파구", 680000, 650000, 450000, 800000,
			[7]int64{32000, 38000, 95000, 110000, 105000, 90000, 45000},
			[7]int64{30000, 35000, 90000, 105000, 100000, 85000, 42000}),
		district("강서구", 590000, 570000, 350000, 600000,
			[7]int64{28000, 33000, 85000, 95000, 90000, 75000, 38000},
			[7]int64{26000, 31000, 80000, 90000, 85000, 70000, 35000}),
		district("마포구", 380000, 360000, 280000, 500000,
			[7]int64{18000, 22000, 55000, 65000, 60000, 50000, 25000},
			[7]int64{17000, 20000, 52000, 62000, 57000, 47000, 23000}),
		district("서초구", 430000, 410000, 320000, 550000,
			[7]int64{20000, 24000, 60000, 70000, 65000, 55000, 28000},
			[7]int64{19000, 22000, 57000, 67000, 62000, 52000, 26000}),
		district("영등포구", 400000, 380000, 300000, 520000,
			[7]int64{19000, 23000, 58000, 68000, 63000, 53000, 27000},
			[7]int64{18000, 21000, 55000, 65000, 60000, 50000, 25000}),
		district("성동구", 290000, 270000, 220000, 380000,
			[7]int64{14000, 17000, 42000, 50000, 47000, 39000, 20000},
			[7]int64{13000, 16000, 40000, 48000, 45000, 37000, 19000}),
		district("광진구", 350000, 330000, 250000, 420000,
			[7]int64{17000, 20000, 50000, 58000, 55000, 46000, 23000},
			[7]int64{16000, 19000, 48000, 56000, 53000, 44000, 22000}),
		district("용산구", 220000, 200000, 180000, 300000,
			[7]int64{11000, 13000, 32000, 38000, 36000, 30000, 15000},
			[7]int64{10000, 12000, 30000, 36000, 34000, 28000, 14000}),
		district("중구", 130000, 110000, 150000, 250000,
			[7]int64{6000, 7000, 19000, 22000, 21000, 18000, 9000},
			[7]int64{6000, 7000, 18000, 21000, 20000, 17000, 8000}),
		district("종로구", 150000, 130000, 120000, 220000,
			[7]int64{7000, 8000, 22000, 26000, 25000, 21000, 11000},
			[7]int64{7000, 8000, 21000, 25000, 24000, 20000, 10000}),
		district("중랑구", 400000, 380000, 200000, 350000,
			[7]int64{19000, 23000, 58000, 68000, 63000, 53000, 27000},
			[7]int64{18000, 21000, 55000, 65000, 60000, 50000, 25000}),
		district("동대문구", 350000, 330000, 180000, 320000,
			[7]int64{17000, 20000, 50000, 58000, 55000, 46000, 23000},
			[7]int64{16000, 19000, 48000, 56000, 53000, 44000, 22000}),
		district("성북구", 450000, 430000, 250000, 400000,
			[7]int64{22000, 26000, 65000, 75000, 70000, 58000, 29000},
			[7]int64{21000, 24000, 62000, 72000, 67000, 55000, 27000}),
		district("강북구", 320000, 300000, 150000, 280000,
			[7]int64{15000, 18000, 45000, 52000, 49000, 41000, 21000},
			[7]int64{14000, 17000, 43000, 50000, 47000, 39000, 20000}),
		district("도봉구", 330000, 310000, 120000, 250000,
			[7]int64{16000, 19000, 47000, 54000, 51000, 43000, 22000},
			[7]int64{15000, 18000, 45000, 52000, 49000, 41000, 21000}),
		district("노원구", 550000, 530000, 200000, 380000,
			[7]int64{26000, 31000, 78000, 90000, 85000, 70000, 35000},
			[7]int64{25000, 29000, 75000, 87000, 82000, 67000, 33000}),
		district("은평구", 480000, 460000, 180000, 320000,
			[7]int64{23000, 27000, 70000, 80000, 75000, 62000, 31000},
			[7]int64{22000, 25000, 67000, 77000, 72000, 59000, 29000}),
		district("서대문구", 310000, 290000, 200000, 350000,
			[7]int64{15000, 18000, 45000, 52000, 49000, 41000, 21000},
			[7]int64{14000, 17000, 43000, 50000, 47000, 39000, 20000}),
		district("양천구", 470000, 450000, 220000, 380000,
			[7]int64{22000, 26000, 68000, 78000, 73000, 60000, 30000},
			[7]int64{21000, 24000, 65000, 75000, 70000, 57000, 28000}),
		district("구로구", 420000, 400000, 280000, 450000,
			[7]int64{20000, 24000, 60000, 70000, 65000, 55000, 28000},
			[7]int64{19000, 22000, 57000, 67000, 62000, 52000, 26000}),
		district("금천구", 250000, 230000, 150000, 280000,
			[7]int64{12000, 14000, 35000, 41000, 39000, 32000, 16000},
			[7]int64{11000, 13000, 33000, 39000, 37000, 30000, 15000}),
		district("동작구", 400000, 380000, 200000, 350000,
			[7]int64{19000, 23000, 58000, 68000, 63000, 53000, 27000},
			[7]int64{18000, 21000, 55000, 65000, 60000, 50000, 25000}),
		district("관악구", 520000, 500000, 180000, 320000,
			[7]int64{25000, 30000, 75000, 85000, 80000, 65000, 33000},
			[7]int64{24000, 28000, 72000, 82000, 77000, 62000, 31000}),
		district("강동구", 430000, 410000, 180000, 320000,
			[7]int64{20000, 24000, 60000, 70000, 65000, 55000, 28000},
			[7]int64{19000, 22000, 57000, 67000, 62000, 52000, 26000}),
	}
}

func district(name string, total, resident, worker, floating int64, male, female [7]int64) models.DistrictPopulation {
	return models.DistrictPopulation{
		DistrictName:       name,
		TotalPopulation:    total,
		ResidentPopulation: resident,
		WorkerPopulation:   worker,
		FloatingPopulation: floating,
		Age0To9Male:        male[0],
		Age10To19Male:      male[1],
		Age20To29Male:      male[2],
		Age30To39Male:      male[3],
		Age40To49Male:      male[4],
		Age50To59Male:      male[5],
		Age60PlusMale:      male[6],
		Age0To9Female:      female[0],
		Age10To19Female:    female[1],
		Age20To29Female:    female[2],
		Age30To39Female:    female[3],
		Age40To49Female:    female[4],
		Age50To59Female:    female[5],
		Age60PlusFemale:    female[6],
	}
}
