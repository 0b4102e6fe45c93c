package config

import (
	"fmt"
)

// CatalogConfig controls the product catalog source.
type CatalogConfig struct {
	// Collection is the document collection holding product records.
	Collection string `koanf:"collection"`
	// FallbackToMock serves the seeded in-memory listing when the
	// document store read fails instead of returning an error page.
	FallbackToMock bool `koanf:"fallbacktomock"`
}

func (c *CatalogConfig) Validate() error {
	if c.Collection == "" {
		return fmt.Errorf("catalog collection is not configured")
	}
	return nil
}
