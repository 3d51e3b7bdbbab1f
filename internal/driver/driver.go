package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pixil98/go-inventory/internal/display"
	"github.com/pixil98/go-inventory/internal/game"
	"github.com/pixil98/go-inventory/internal/storage"
)

const DefaultSummary = "{{ .Count }} items worth {{ .TotalGold }} gold"

// Report controls how the driver prints the final inventory.
type Report struct {
	// Sorted selects Inventory.Print over Inventory.PrintInOrder.
	Sorted    bool
	Ascending bool
	Key       game.SortKey

	// Summary is a template expanded with a Summary after the listing.
	Summary string
}

// Summary is the data available to the report summary template.
type Summary struct {
	Count     int
	TotalGold int
	Items     []*game.Item
}

// InventoryDriver applies a scripted list of steps to a fresh inventory and
// reports the result.
type InventoryDriver struct {
	steps     []Step
	report    Report
	out       io.Writer
	snapshots storage.Storer[*game.Snapshot]
	restore   *game.Snapshot
}

func NewInventoryDriver(steps []Step, opts ...InventoryDriverOpt) *InventoryDriver {
	d := &InventoryDriver{
		steps:  steps,
		report: Report{Summary: DefaultSummary},
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start satisfies the service worker interface. It runs the script once and
// returns; it does not wait for ctx to be cancelled.
func (d *InventoryDriver) Start(ctx context.Context) error {
	_, err := d.Run(ctx)
	return err
}

// Run seeds the inventory from the restore snapshot if one is set, applies
// every step, writes the report and saves a snapshot when a snapshot store is
// configured.
func (d *InventoryDriver) Run(ctx context.Context) (*game.Inventory, error) {
	inv := game.NewInventory()

	if d.restore != nil {
		if err := inv.Restore(d.restore); err != nil {
			return nil, fmt.Errorf("seeding inventory: %w", err)
		}
		slog.InfoContext(ctx, "restored inventory snapshot", "items", inv.Len())
	}

	for i, step := range d.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.Apply(ctx, inv); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	if err := d.writeReport(inv); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	if d.snapshots != nil {
		id := uuid.New().String()
		if err := d.snapshots.Save(id, inv.Snapshot()); err != nil {
			return nil, fmt.Errorf("saving snapshot: %w", err)
		}
		slog.InfoContext(ctx, "saved inventory snapshot", "id", id, "items", inv.Len(), "depth", inv.Height())
	}

	return inv, nil
}

func (d *InventoryDriver) writeReport(inv *game.Inventory) error {
	var err error
	if d.report.Sorted {
		direction := "ascending"
		if !d.report.Ascending {
			direction = "descending"
		}
		_, err = fmt.Fprintf(d.out, "Inventory by %s (%s):\n", d.report.Key, direction)
		if err != nil {
			return err
		}
		err = inv.Print(d.out, d.report.Ascending, d.report.Key)
	} else {
		_, err = io.WriteString(d.out, "Inventory in ascending order:\n")
		if err != nil {
			return err
		}
		err = inv.PrintInOrder(d.out)
	}
	if err != nil {
		return err
	}

	if d.report.Summary == "" {
		return nil
	}

	summary, err := display.ExpandTemplate(d.report.Summary, Summary{
		Count:     inv.Len(),
		TotalGold: inv.TotalGoldValue(),
		Items:     inv.Items(),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(d.out, display.Wrap(summary))
	return err
}
