package catalog

// Criteria is the query specification handed to a Catalog. Backends
// translate it into their own query language.
type Criteria struct {
	restrictIDs bool
	ids         []string
	excluded    []string
	filter      Filter
	rankBelow   *int
}

// Where starts a criteria from a filter.
func Where(filter Filter) Criteria {
	return Criteria{filter: filter}
}

// IDsIn restricts matches to ids. An empty slice matches nothing.
func (c Criteria) IDsIn(ids []string) Criteria {
	c.restrictIDs = true
	c.ids = append([]string(nil), ids...)
	return c
}

// IDsNotIn excludes ids from the matches. An empty slice is ignored.
func (c Criteria) IDsNotIn(ids []string) Criteria {
	c.excluded = append([]string(nil), ids...)
	return c
}

// RankBelow keeps items whose rank is strictly lower than rank.
func (c Criteria) RankBelow(rank int) Criteria {
	c.rankBelow = &rank
	return c
}

func (c Criteria) Filter() Filter { return c.filter }

// RestrictedIDs returns the id restriction and whether one is set.
func (c Criteria) RestrictedIDs() ([]string, bool) {
	return c.ids, c.restrictIDs
}

func (c Criteria) ExcludedIDs() []string { return c.excluded }

// RankBound returns the exclusive rank upper bound, if any.
func (c Criteria) RankBound() (int, bool) {
	if c.rankBelow == nil {
		return 0, false
	}
	return *c.rankBelow, true
}

// MatchesNothing reports a criteria that can be answered without a query.
func (c Criteria) MatchesNothing() bool {
	return c.restrictIDs && len(c.ids) == 0
}

// Matches evaluates the criteria against a single item in memory.
func (c Criteria) Matches(item Item) bool {
	if c.restrictIDs && !contains(c.ids, item.ID) {
		return false
	}
	if contains(c.excluded, item.ID) {
		return false
	}
	if c.rankBelow != nil && item.Rank >= *c.rankBelow {
		return false
	}
	return c.filter.Matches(item)
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
