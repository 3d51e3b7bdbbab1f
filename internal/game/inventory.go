package game

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/pixil98/go-inventory/internal/tree"
)

func compareItemNames(a, b *Item) int {
	return strings.Compare(a.Name, b.Name)
}

// Inventory holds items in a binary search tree keyed by name. Consumables
// with the same name stack into a single entry; every other type is unique.
type Inventory struct {
	items *tree.Tree[*Item]

	mu sync.RWMutex
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		items: tree.New(compareItemNames),
	}
}

// AddItem adds item to the inventory. If an item with the same name is
// already held and the incoming item is a consumable, the incoming quantity
// is added to the held stack and the held AcquiredAt is replaced with the
// incoming one; item itself is not retained. Any other duplicate is rejected,
// as is an item that fails Validate.
// Returns false if nothing was added or updated.
func (inv *Inventory) AddItem(item *Item) bool {
	if item == nil {
		return false
	}
	if err := item.Validate(); err != nil {
		slog.Debug("rejected invalid item", "name", item.Name, "error", err)
		return false
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !inv.accepts(item) {
		slog.Debug("rejected duplicate item", "name", item.Name, "type", item.Type)
		return false
	}
	inv.add(item)
	return true
}

// accepts reports whether add would insert or merge item. The merge decision
// follows the incoming item's type, not the held one.
func (inv *Inventory) accepts(item *Item) bool {
	return item.Type.Stackable() || !inv.items.Contains(item)
}

// add inserts or merges item. Callers hold mu and have checked accepts.
func (inv *Inventory) add(item *Item) {
	existing := inv.items.FindNode(item)
	if existing == nil {
		inv.items.Add(item)
		return
	}

	held := existing.Value()
	held.Quantity += item.Quantity
	held.AcquiredAt = item.AcquiredAt
}

// FindItem returns the held item named name, or nil if there is none.
func (inv *Inventory) FindItem(name string) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	for n := inv.items.Root(); n != nil; {
		held := n.Value()
		switch c := strings.Compare(name, held.Name); {
		case c == 0:
			return held
		case c < 0:
			n = n.Left()
		default:
			n = n.Right()
		}
	}
	return nil
}

// RemoveItem removes one unit of the item named name. A consumable stack of
// more than one is decremented and keeps its AcquiredAt; anything else is
// removed outright. Returns false if no such item is held.
func (inv *Inventory) RemoveItem(name string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	key := &Item{Name: name}
	if !inv.items.Contains(key) {
		slog.Debug("item to remove not found", "name", name)
		return false
	}

	held := inv.items.FindNode(key).Value()
	if held.Type.Stackable() && held.Quantity > 1 {
		held.Quantity--
		return true
	}

	return inv.items.Remove(held)
}

// TotalGoldValue returns the combined worth of every held item.
func (inv *Inventory) TotalGoldValue() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0
	for item := range inv.items.All() {
		total += item.Worth()
	}
	return total
}

// Len returns the number of distinct items held.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	return inv.items.Len()
}

// Height returns the depth of the underlying tree.
func (inv *Inventory) Height() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	return inv.items.Height()
}

// Items returns the held items in ascending name order.
func (inv *Inventory) Items() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	return slices.Collect(inv.items.All())
}

// PrintInOrder writes every item to w in ascending name order.
func (inv *Inventory) PrintInOrder(w io.Writer) error {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	for item := range inv.items.All() {
		if err := writeItem(w, item); err != nil {
			return err
		}
	}
	return nil
}

// Print writes every item to w ordered by key. Items with equal keys keep
// ascending name order regardless of direction.
func (inv *Inventory) Print(w io.Writer, ascending bool, key SortKey) error {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	items := slices.Collect(inv.items.All())
	slices.SortStableFunc(items, key.compareFunc(ascending))

	for _, item := range items {
		if err := writeItem(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeItem(w io.Writer, item *Item) error {
	_, err := fmt.Fprintf(w, "%s (%s)\nLevel: %d\nValue: %d\n", item.Name, item.Type, item.Level, item.GoldValue)
	if err != nil {
		return err
	}

	if item.Type == ItemTypeConsumable {
		_, err = fmt.Fprintf(w, "Quantity: %d\n", item.Quantity)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "\n")
	return err
}
