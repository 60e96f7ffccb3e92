package pagination

import (
	"fmt"
	"strings"
)

const (
	// DefaultLoadAmount is the page size used when a request omits loadAmount.
	DefaultLoadAmount = 5
	// MaxLoadAmount caps how many items any feed page can request.
	MaxLoadAmount = 50
)

// ErrLoadAmount reports a load amount outside (0, MaxLoadAmount].
type ErrLoadAmount struct {
	Value int
}

func (e ErrLoadAmount) Error() string {
	return fmt.Sprintf("loadAmount must be between 1 and %d, got %d", MaxLoadAmount, e.Value)
}

// ValidateLoadAmount rejects non-positive amounts and amounts above MaxLoadAmount.
func ValidateLoadAmount(amount int) error {
	if amount <= 0 || amount > MaxLoadAmount {
		return ErrLoadAmount{Value: amount}
	}
	return nil
}

// Cursor normalizes an item id used as a page cursor. Blank means no cursor.
func Cursor(value string) string {
	return strings.TrimSpace(value)
}
