package driver

import (
	"io"

	"github.com/pixil98/go-inventory/internal/game"
	"github.com/pixil98/go-inventory/internal/storage"
)

type InventoryDriverOpt func(*InventoryDriver)

func WithOutput(w io.Writer) InventoryDriverOpt {
	return func(d *InventoryDriver) {
		d.out = w
	}
}

func WithReport(r Report) InventoryDriverOpt {
	return func(d *InventoryDriver) {
		d.report = r
	}
}

// WithSnapshots saves the final inventory to st under a new UUID.
func WithSnapshots(st storage.Storer[*game.Snapshot]) InventoryDriverOpt {
	return func(d *InventoryDriver) {
		d.snapshots = st
	}
}

// WithRestore seeds every run with the contents of snap.
func WithRestore(snap *game.Snapshot) InventoryDriverOpt {
	return func(d *InventoryDriver) {
		d.restore = snap
	}
}
