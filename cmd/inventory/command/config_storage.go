package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-inventory/internal/storage"
)

type StoreConfig struct {
	Path string `json:"path"`
}

func (c *StoreConfig) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func buildFileStore[T storage.ValidatingSpec](c StoreConfig) (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
