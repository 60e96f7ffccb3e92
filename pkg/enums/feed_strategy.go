package enums

// FeedStrategy records how a feed page was assembled.
type FeedStrategy string

const (
	FeedStrategySlice      FeedStrategy = "slice"
	FeedStrategyScan       FeedStrategy = "scan"
	FeedStrategyRandom     FeedStrategy = "random"
	FeedStrategyRankCursor FeedStrategy = "rank_cursor"
)

var validFeedStrategies = []FeedStrategy{
	FeedStrategySlice,
	FeedStrategyScan,
	FeedStrategyRandom,
	FeedStrategyRankCursor,
}

// String implements fmt.Stringer.
func (s FeedStrategy) String() string {
	return string(s)
}

// IsValid reports whether the value is a known FeedStrategy.
func (s FeedStrategy) IsValid() bool {
	for _, candidate := range validFeedStrategies {
		if candidate == s {
			return true
		}
	}
	return false
}
