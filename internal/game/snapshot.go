package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Snapshot is a saved copy of an inventory. Items are stored in tree
// pre-order so restoring them rebuilds the same tree shape.
type Snapshot struct {
	Items []*Item `json:"items"`
}

// Validate satisfies storage.ValidatingSpec
func (s *Snapshot) Validate() error {
	el := errors.NewErrorList()

	seen := make(map[string]bool, len(s.Items))
	for i, item := range s.Items {
		if item == nil {
			el.Add(fmt.Errorf("item %d is empty", i))
			continue
		}
		if err := item.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
		if seen[item.Name] {
			el.Add(fmt.Errorf("item %d: duplicate name %q", i, item.Name))
		}
		seen[item.Name] = true
	}

	return el.Err()
}

// Snapshot copies the current contents of the inventory. Every held item
// passed Validate on the way in, so the result validates too.
func (inv *Inventory) Snapshot() *Snapshot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	snap := &Snapshot{Items: make([]*Item, 0, inv.items.Len())}
	for item := range inv.items.PreOrder() {
		snap.Items = append(snap.Items, item.Clone())
	}
	return snap
}

// Restore adds every item in snap to the inventory using AddItem semantics.
// Either every item is applied or, on error, the inventory is left unchanged.
func (inv *Inventory) Restore(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("restoring: snapshot is empty")
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("validating snapshot: %w", err)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, item := range snap.Items {
		if !inv.accepts(item) {
			return fmt.Errorf("restoring %q: duplicate %s item", item.Name, item.Type)
		}
	}

	for _, item := range snap.Items {
		inv.add(item.Clone())
	}
	return nil
}
