package config

import (
	"fmt"
)

// OrderConfig controls the order store.
type OrderConfig struct {
	// Collection is the document collection holding order records.
	Collection string `koanf:"collection"`
}

func (c *OrderConfig) Validate() error {
	if c.Collection == "" {
		return fmt.Errorf("order collection is not configured")
	}
	return nil
}
