package models

// Task is the neutral shape of a section task as returned by the fetcher.
// CreatedAt keeps the raw wire timestamp: aggregations that need the creation
// instant parse it themselves, so a bad value fails that aggregation instead
// of the whole fetch.
type Task struct {
	Id           string
	Completed    bool
	CreatedAt    string
	AssigneeName string
	CustomFields []CustomFieldValue
}

// MatchesTeam reports whether the task carries a "Team" custom field whose
// display value equals teamName. The comparison is case-sensitive and the
// scan stops at the first field satisfying both conditions.
func (t Task) MatchesTeam(teamName string) bool {
	for _, cf := range t.CustomFields {
		if cf.Name == "Team" && cf.DisplayValue == teamName {
			return true
		}
	}
	return false
}
