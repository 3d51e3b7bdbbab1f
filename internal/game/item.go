package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
)

// ItemType defines the category of an item.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeWeapon
	ItemTypeArmor
	ItemTypeConsumable
)

// ParseItemType parses the text form of an ItemType, ignoring case.
func ParseItemType(s string) (ItemType, error) {
	switch strings.ToUpper(s) {
	case "UNKNOWN":
		return ItemTypeUnknown, nil
	case "WEAPON":
		return ItemTypeWeapon, nil
	case "ARMOR":
		return ItemTypeArmor, nil
	case "CONSUMABLE":
		return ItemTypeConsumable, nil
	default:
		return ItemTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownItemType, s)
	}
}

func (t ItemType) String() string {
	switch t {
	case ItemTypeWeapon:
		return "WEAPON"
	case ItemTypeArmor:
		return "ARMOR"
	case ItemTypeConsumable:
		return "CONSUMABLE"
	default:
		return "UNKNOWN"
	}
}

// Stackable reports whether instances of this type merge by quantity.
func (t ItemType) Stackable() bool {
	return t == ItemTypeConsumable
}

func (t ItemType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ItemType) UnmarshalText(b []byte) error {
	parsed, err := ParseItemType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Item is a single inventory entry. Name is its identity within an Inventory.
type Item struct {
	Name      string   `json:"name"`
	Type      ItemType `json:"type"`
	Level     int      `json:"level"`
	GoldValue int      `json:"gold_value"`

	// Quantity only matters for consumables; everything else is conventionally 1.
	Quantity int `json:"quantity"`

	AcquiredAt time.Time `json:"acquired_at,omitzero"`
}

type ItemOpt func(*Item)

// WithAcquiredAt overrides the acquisition time, which defaults to now.
func WithAcquiredAt(t time.Time) ItemOpt {
	return func(i *Item) {
		i.AcquiredAt = t
	}
}

// NewItem creates an item acquired now.
func NewItem(name string, typ ItemType, level int, goldValue int, quantity int, opts ...ItemOpt) *Item {
	i := &Item{
		Name:       name,
		Type:       typ,
		Level:      level,
		GoldValue:  goldValue,
		Quantity:   quantity,
		AcquiredAt: time.Now(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Clone returns an independent copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// Worth returns the gold value of the whole stack. A non-positive quantity
// counts as a single unit.
func (i *Item) Worth() int {
	if i.Quantity > 0 {
		return i.Quantity * i.GoldValue
	}
	return i.GoldValue
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Level < 0 {
		el.Add(fmt.Errorf("item level must not be negative"))
	}
	if i.GoldValue < 0 {
		el.Add(fmt.Errorf("item gold_value must not be negative"))
	}
	if i.Quantity < 0 {
		el.Add(fmt.Errorf("item quantity must not be negative"))
	}

	return el.Err()
}
