package game

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUnknownItemType = errors.New("unknown item type")
	ErrUnknownSortKey  = errors.New("unknown sort key")
)
