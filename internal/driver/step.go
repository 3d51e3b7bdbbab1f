package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-inventory/internal/game"
)

// Step is one scripted change to an inventory.
type Step interface {
	Apply(context.Context, *game.Inventory) error
}

// Pickup adds a copy of Item. A positive Quantity overrides the item's own,
// and the copy is stamped with At, or the current time when At is zero.
type Pickup struct {
	Item     *game.Item
	Quantity int
	At       time.Time
}

func (p Pickup) Apply(ctx context.Context, inv *game.Inventory) error {
	if p.Item == nil {
		return fmt.Errorf("pickup: %w", game.ErrItemNotFound)
	}

	item := p.Item.Clone()
	if p.Quantity > 0 {
		item.Quantity = p.Quantity
	}
	item.AcquiredAt = p.At
	if item.AcquiredAt.IsZero() {
		item.AcquiredAt = time.Now()
	}

	if !inv.AddItem(item) {
		slog.WarnContext(ctx, "pickup rejected, item already held", "name", item.Name, "type", item.Type)
	}
	return nil
}

// Drop removes one unit of the named item.
type Drop struct {
	Name string
}

func (d Drop) Apply(_ context.Context, inv *game.Inventory) error {
	if !inv.RemoveItem(d.Name) {
		return fmt.Errorf("drop %q: %w", d.Name, game.ErrItemNotFound)
	}
	return nil
}
