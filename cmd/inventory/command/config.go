package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-inventory/internal/game"
	"github.com/pixil98/go-inventory/internal/storage"
)

type Config struct {
	Catalog   StoreConfig                 `json:"catalog"`
	Snapshots StoreConfig                 `json:"snapshots"`
	Restore   storage.Ref[*game.Snapshot] `json:"restore"`
	Pickups   []PickupConfig              `json:"pickups"`
	Drops     []string                    `json:"drops"`
	Report    ReportConfig                `json:"report"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Catalog.Validate("catalog"))
	if c.Snapshots.Path != "" {
		el.Add(c.Snapshots.Validate("snapshots"))
	} else if c.Restore.Key() != "" {
		el.Add(fmt.Errorf("restore: snapshots path is required"))
	}

	for i, p := range c.Pickups {
		err := p.Validate()
		if err != nil {
			el.Add(fmt.Errorf("pickup %d: %w", i, err))
		}
	}

	for i, d := range c.Drops {
		if d == "" {
			el.Add(fmt.Errorf("drop %d: item name is required", i))
		}
	}

	el.Add(c.Report.Validate())

	return el.Err()
}

// PickupConfig adds an item from the catalog to the inventory.
type PickupConfig struct {
	Item     storage.Ref[*game.Item] `json:"item"`
	Quantity int                     `json:"quantity,omitempty"`
}

func (c *PickupConfig) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Item.Validate())
	if c.Quantity < 0 {
		el.Add(fmt.Errorf("quantity must not be negative"))
	}

	return el.Err()
}
