package enums

import "testing"

func TestParseCollectionCategory(t *testing.T) {
	cases := map[string]CollectionCategory{
		"liked":   CollectionLiked,
		" LIKED ": CollectionLiked,
		"saved":   CollectionLiked,
		"deleted": CollectionDeleted,
		"Deleted": CollectionDeleted,
	}
	for raw, want := range cases {
		got, err := ParseCollectionCategory(raw)
		if err != nil {
			t.Fatalf("parse %q: unexpected error %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", raw, want, got)
		}
	}

	if _, err := ParseCollectionCategory("reported"); err == nil {
		t.Fatal("expected unknown category to fail")
	}
}

func TestFeedStrategyIsValid(t *testing.T) {
	for _, s := range validFeedStrategies {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if FeedStrategy("cursor").IsValid() {
		t.Fatal("expected unknown strategy to be invalid")
	}
}
