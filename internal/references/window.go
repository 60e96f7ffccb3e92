package references

// Bounds returns the half-open index range [start, end) of the window.
//
// Without a cursor (cursorIndex < 0) the window is the first amount
// elements, or the last amount when reversed. With a cursor at c it is
// [c+1, c+1+amount) forward and [max(c-amount, 0), c) reversed. The
// range is clamped to [0, total].
func Bounds(total, cursorIndex, amount int, reversed bool) (start, end int) {
	if amount < 0 {
		amount = 0
	}
	switch {
	case cursorIndex < 0 && !reversed:
		start, end = 0, amount
	case cursorIndex < 0 && reversed:
		start, end = total-amount, total
	case !reversed:
		start, end = cursorIndex+1, cursorIndex+1+amount
	default:
		start, end = cursorIndex-amount, cursorIndex
	}
	return clamp(start, total), clamp(end, total)
}

// WindowOf computes a window over an in-memory list.
func WindowOf(list []string, cursor string, amount int, reversed bool) (Window, error) {
	cursorIndex := -1
	if cursor != "" {
		cursorIndex = IndexOf(list, cursor)
		if cursorIndex < 0 {
			return Window{}, ErrCursorNotFound
		}
	}
	start, end := Bounds(len(list), cursorIndex, amount, reversed)
	ids := make([]string, end-start)
	copy(ids, list[start:end])
	return Window{
		IDs:         ids,
		Total:       len(list),
		CursorIndex: cursorIndex,
		Start:       start,
	}, nil
}

// IndexOf returns the position of id in list or -1.
func IndexOf(list []string, id string) int {
	for i, candidate := range list {
		if candidate == id {
			return i
		}
	}
	return -1
}

func clamp(v, total int) int {
	if v < 0 {
		return 0
	}
	if v > total {
		return total
	}
	return v
}
