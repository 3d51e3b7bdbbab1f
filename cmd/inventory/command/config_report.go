package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-inventory/internal/display"
	"github.com/pixil98/go-inventory/internal/driver"
	"github.com/pixil98/go-inventory/internal/game"
)

type ReportConfig struct {
	// SortBy is one of NAME, TYPE, LEVEL, VALUE or TIME. Empty prints in name order.
	SortBy     string  `json:"sort_by"`
	Descending bool    `json:"descending"`
	Summary    *string `json:"summary"`
}

func (c *ReportConfig) Validate() error {
	el := errors.NewErrorList()

	if c.SortBy != "" {
		_, err := game.ParseSortKey(c.SortBy)
		if err != nil {
			el.Add(fmt.Errorf("report sort_by: %w", err))
		}
	}

	if c.Summary != nil {
		_, err := display.ParseTemplate(*c.Summary)
		if err != nil {
			el.Add(fmt.Errorf("report summary: %w", err))
		}
	}

	return el.Err()
}

func (c *ReportConfig) buildReport() (driver.Report, error) {
	r := driver.Report{
		Sorted:    c.SortBy != "",
		Ascending: !c.Descending,
		Summary:   driver.DefaultSummary,
	}

	if c.Summary != nil {
		r.Summary = *c.Summary
	}

	if r.Sorted {
		key, err := game.ParseSortKey(c.SortBy)
		if err != nil {
			return driver.Report{}, err
		}
		r.Key = key
	}

	return r, nil
}
