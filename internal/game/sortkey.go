package game

import (
	"cmp"
	"fmt"
	"strings"
)

// SortKey selects the attribute Inventory.Print orders items by.
type SortKey int

const (
	SortByName SortKey = iota
	SortByType
	SortByLevel
	SortByValue
	SortByTime
)

// ParseSortKey parses NAME, TYPE, LEVEL, VALUE or TIME, ignoring case.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToUpper(s) {
	case "NAME":
		return SortByName, nil
	case "TYPE":
		return SortByType, nil
	case "LEVEL":
		return SortByLevel, nil
	case "VALUE":
		return SortByValue, nil
	case "TIME":
		return SortByTime, nil
	default:
		return SortByName, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "NAME"
	case SortByType:
		return "TYPE"
	case SortByLevel:
		return "LEVEL"
	case SortByValue:
		return "VALUE"
	case SortByTime:
		return "TIME"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// compareFunc resolves the key to a comparison over items. Keys outside the
// known set compare every pair as equal.
func (k SortKey) compareFunc(ascending bool) func(a, b *Item) int {
	var f func(a, b *Item) int
	switch k {
	case SortByName:
		f = func(a, b *Item) int { return strings.Compare(a.Name, b.Name) }
	case SortByType:
		f = func(a, b *Item) int { return strings.Compare(a.Type.String(), b.Type.String()) }
	case SortByLevel:
		f = func(a, b *Item) int { return cmp.Compare(a.Level, b.Level) }
	case SortByValue:
		f = func(a, b *Item) int { return cmp.Compare(a.GoldValue, b.GoldValue) }
	case SortByTime:
		f = func(a, b *Item) int { return a.AcquiredAt.Compare(b.AcquiredAt) }
	default:
		return func(a, b *Item) int { return 0 }
	}

	if ascending {
		return f
	}
	return func(a, b *Item) int { return f(b, a) }
}
