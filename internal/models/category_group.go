package models

// CategoryGroup is one of the four coarse buckets a service category is
// classified into. The value is derived from the category name on every
// request and never stored.
type CategoryGroup string

const (
	CategoryGroupKorean CategoryGroup = "한식/중식/양식/일식"
	CategoryGroupSnack  CategoryGroup = "분식/치킨/패스트푸드"
	CategoryGroupCafe   CategoryGroup = "제과점/카페/호프"
	CategoryGroupOther  CategoryGroup = "기타 서비스"
)

// SortRank returns the fixed presentation order of a group. The three
// named groups come first; any other label sorts last.
func (g CategoryGroup) SortRank() int {
	switch g {
	case CategoryGroupKorean:
		return 1
	case CategoryGroupSnack:
		return 2
	case CategoryGroupCafe:
		return 3
	default:
		return 4
	}
}
