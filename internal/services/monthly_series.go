package services

import (
	"sort"

	"seoul-commercial-district/internal/models"
)

type monthlySeriesBuilder struct {
	classifier CategoryClassifierInterface
}

// NewMonthlySeriesBuilder creates a series builder that buckets category
// rows into groups using the given classifier.
func NewMonthlySeriesBuilder(classifier CategoryClassifierInterface) MonthlySeriesBuilderInterface {
	return &monthlySeriesBuilder{
		classifier: classifier,
	}
}

// BuildSeries collapses per-(category, month) average rows into one time
// series per category group. Categories falling into the same group and
// month are combined by averaging their per-category averages with equal
// weight, regardless of how many records back each category.
func (b *monthlySeriesBuilder) BuildSeries(rows []models.MonthlyAverageRow) []models.CategoryGroupSeries {
	type monthAccum struct {
		sum   float64
		count int
	}

	groupMonths := make(map[models.CategoryGroup]map[string]*monthAccum)

	for _, row := range rows {
		group := b.classifier.Classify(row.ServiceCategoryName)

		months, ok := groupMonths[group]
		if !ok {
			months = make(map[string]*monthAccum)
			groupMonths[group] = months
		}

		accum, ok := months[row.BaseYearMonth]
		if !ok {
			accum = &monthAccum{}
			months[row.BaseYearMonth] = accum
		}
		accum.sum += row.AverageAmount
		accum.count++
	}

	series := make([]models.CategoryGroupSeries, 0, len(groupMonths))
	for group, months := range groupMonths {
		points := make([]models.MonthlyAveragePoint, 0, len(months))
		for yearMonth, accum := range months {
			points = append(points, models.MonthlyAveragePoint{
				CategoryGroup: string(group),
				YearMonth:     yearMonth,
				AverageAmount: accum.sum / float64(accum.count),
			})
		}

		sort.Slice(points, func(i, j int) bool {
			return points[i].YearMonth < points[j].YearMonth
		})

		series = append(series, models.CategoryGroupSeries{
			CategoryGroup: string(group),
			MonthlyData:   points,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return models.CategoryGroup(series[i].CategoryGroup).SortRank() <
			models.CategoryGroup(series[j].CategoryGroup).SortRank()
	})

	return series
}
