package models

// DistrictCode is one of the 25 fixed Seoul administrative districts.
// The set is seeded at startup and never changes afterwards.
type DistrictCode struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DistrictCode string `gorm:"type:varchar(10);not null;uniqueIndex" json:"district_code"`
	DistrictName string `gorm:"type:varchar(20);not null;index" json:"district_name"`
}

func (DistrictCode) TableName() string {
	return "district_codes"
}

// DistrictPopulation holds demographic reference data for one district,
// broken down by resident type and by age band per gender.
type DistrictPopulation struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DistrictName       string `gorm:"type:varchar(20);not null;uniqueIndex" json:"district_name"`
	TotalPopulation    int64  `gorm:"not null" json:"total_population"`
	ResidentPopulation int64  `gorm:"not null" json:"resident_population"`
	WorkerPopulation   int64  `gorm:"not null" json:"worker_population"`
	FloatingPopulation int64  `gorm:"not null" json:"floating_population"`

	Age0To9Male     int64 `gorm:"not null" json:"age_0_to_9_male"`
	Age10To19Male   int64 `gorm:"not null" json:"age_10_to_19_male"`
	Age20To29Male   int64 `gorm:"not null" json:"age_20_to_29_male"`
	Age30To39Male   int64 `gorm:"not null" json:"age_30_to_39_male"`
	Age40To49Male   int64 `gorm:"not null" json:"age_40_to_49_male"`
	Age50To59Male   int64 `gorm:"not null" json:"age_50_to_59_male"`
	Age60PlusMale   int64 `gorm:"not null" json:"age_60_plus_male"`
	Age0To9Female   int64 `gorm:"not null" json:"age_0_to_9_female"`
	Age10To19Female int64 `gorm:"not null" json:"age_10_to_19_female"`
	Age20To29Female int64 `gorm:"not null" json:"age_20_to_29_female"`
	Age30To39Female int64 `gorm:"not null" json:"age_30_to_39_female"`
	Age40To49Female int64 `gorm:"not null" json:"age_40_to_49_female"`
	Age50To59Female int64 `gorm:"not null" json:"age_50_to_59_female"`
	Age60PlusFemale int64 `gorm:"not null" json:"age_60_plus_female"`
}

func (DistrictPopulation) TableName() string {
	return "district_population_statistics"
}

// SeoulPopulationSummary aggregates population figures across all districts
type SeoulPopulationSummary struct {
	TotalDistricts               int64 `json:"total_districts"`
	TotalPopulation              int64 `json:"total_population"`
	AveragePopulationPerDistrict int64 `json:"average_population_per_district"`
}
