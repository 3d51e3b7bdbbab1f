package command

import (
	"fmt"

	"github.com/pixil98/go-inventory/internal/driver"
	"github.com/pixil98/go-inventory/internal/game"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	d, err := cfg.buildDriver()
	if err != nil {
		return nil, err
	}

	return service.WorkerList{
		"driver": d,
	}, nil
}

func (c *Config) buildDriver() (*driver.InventoryDriver, error) {
	catalog, err := buildFileStore[*game.Item](c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("creating catalog store: %w", err)
	}

	steps := make([]driver.Step, 0, len(c.Pickups)+len(c.Drops))
	for i := range c.Pickups {
		p := &c.Pickups[i]
		if err := p.Item.Resolve(catalog); err != nil {
			return nil, fmt.Errorf("resolving pickup %d: %w", i, err)
		}
		steps = append(steps, driver.Pickup{Item: p.Item.Get(), Quantity: p.Quantity})
	}
	for _, name := range c.Drops {
		steps = append(steps, driver.Drop{Name: name})
	}

	report, err := c.Report.buildReport()
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	opts := []driver.InventoryDriverOpt{driver.WithReport(report)}

	if c.Snapshots.Path != "" {
		snapshots, err := buildFileStore[*game.Snapshot](c.Snapshots)
		if err != nil {
			return nil, fmt.Errorf("creating snapshot store: %w", err)
		}
		opts = append(opts, driver.WithSnapshots(snapshots))

		if c.Restore.Key() != "" {
			if err := c.Restore.Resolve(snapshots); err != nil {
				return nil, fmt.Errorf("resolving restore: %w", err)
			}
			opts = append(opts, driver.WithRestore(c.Restore.Get()))
		}
	} else if c.Restore.Key() != "" {
		return nil, fmt.Errorf("restore %q: snapshots path is required", c.Restore.Key())
	}

	return driver.NewInventoryDriver(steps, opts...), nil
}
