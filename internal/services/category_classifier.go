package services

import (
	"strings"

	"seoul-commercial-district/internal/models"
)

// classificationRule binds a set of keywords to the group a category name
// containing one of them belongs to. Rules are evaluated in declaration
// order and the first match wins.
type classificationRule struct {
	keywords []string
	group    models.CategoryGroup
}

// classificationRules are matched as case-sensitive substrings of the
// raw category name. Names matching no rule fall through to the catch-all
// group.
var classificationRules = []classificationRule{
	{
		keywords: []string{"한식", "중식", "양식", "일식"},
		group:    models.CategoryGroupKorean,
	},
	{
		keywords: []string{"분식", "치킨", "패스트푸드", "피자", "햄버거"},
		group:    models.CategoryGroupSnack,
	},
	{
		keywords: []string{"제과점", "카페", "호프", "베이커리", "음료"},
		group:    models.CategoryGroupCafe,
	},
}

type categoryClassifier struct{}

// NewCategoryClassifier creates the keyword-based category classifier
func NewCategoryClassifier() CategoryClassifierInterface {
	return &categoryClassifier{}
}

// Classify maps a service category name to its group. Every input maps
// to exactly one group; unknown and empty names map to the catch-all.
func (c *categoryClassifier) Classify(categoryName string) models.CategoryGroup {
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(categoryName, keyword) {
				return rule.group
			}
		}
	}
	return models.CategoryGroupOther
}
