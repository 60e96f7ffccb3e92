package references

import (
	"errors"
	"reflect"
	"testing"
)

var abcde = []string{"A", "B", "C", "D", "E"}

func TestWindowOf(t *testing.T) {
	cases := []struct {
		name      string
		list      []string
		cursor    string
		amount    int
		reversed  bool
		wantIDs   []string
		wantStart int
		wantIndex int
	}{
		{name: "first page", list: abcde, amount: 2, wantIDs: []string{"A", "B"}, wantStart: 0, wantIndex: -1},
		{name: "after B", list: abcde, cursor: "B", amount: 2, wantIDs: []string{"C", "D"}, wantStart: 2, wantIndex: 1},
		{name: "after D clamps", list: abcde, cursor: "D", amount: 2, wantIDs: []string{"E"}, wantStart: 4, wantIndex: 3},
		{name: "after last is empty", list: abcde, cursor: "E", amount: 2, wantIDs: []string{}, wantStart: 5, wantIndex: 4},
		{name: "reversed tail", list: abcde, amount: 2, reversed: true, wantIDs: []string{"D", "E"}, wantStart: 3, wantIndex: -1},
		{name: "reversed before D", list: abcde, cursor: "D", amount: 2, reversed: true, wantIDs: []string{"B", "C"}, wantStart: 1, wantIndex: 3},
		{name: "reversed clamps at head", list: abcde, cursor: "B", amount: 3, reversed: true, wantIDs: []string{"A"}, wantStart: 0, wantIndex: 1},
		{name: "reversed before head is empty", list: abcde, cursor: "A", amount: 2, reversed: true, wantIDs: []string{}, wantStart: 0, wantIndex: 0},
		{name: "amount larger than list", list: abcde, amount: 10, wantIDs: abcde, wantStart: 0, wantIndex: -1},
		{name: "reversed amount larger than list", list: abcde, amount: 10, reversed: true, wantIDs: abcde, wantStart: 0, wantIndex: -1},
		{name: "empty list", list: nil, amount: 3, wantIDs: []string{}, wantStart: 0, wantIndex: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := WindowOf(tc.list, tc.cursor, tc.amount, tc.reversed)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(w.IDs, tc.wantIDs) {
				t.Fatalf("expected ids %v, got %v", tc.wantIDs, w.IDs)
			}
			if w.Start != tc.wantStart {
				t.Fatalf("expected start %d, got %d", tc.wantStart, w.Start)
			}
			if w.CursorIndex != tc.wantIndex {
				t.Fatalf("expected cursor index %d, got %d", tc.wantIndex, w.CursorIndex)
			}
			if w.Total != len(tc.list) {
				t.Fatalf("expected total %d, got %d", len(tc.list), w.Total)
			}
		})
	}
}

func TestWindowOfUnknownCursor(t *testing.T) {
	if _, err := WindowOf(abcde, "Z", 2, false); !errors.Is(err, ErrCursorNotFound) {
		t.Fatalf("expected ErrCursorNotFound, got %v", err)
	}
}

func TestWindowDoesNotAliasList(t *testing.T) {
	list := []string{"A", "B"}
	w, err := WindowOf(list, "", 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.IDs[0] = "Z"
	if list[0] != "A" {
		t.Fatal("window should not alias the source list")
	}
}

func TestBoundsNegativeAmount(t *testing.T) {
	start, end := Bounds(5, -1, -3, false)
	if start != 0 || end != 0 {
		t.Fatalf("expected empty range, got [%d,%d)", start, end)
	}
}
