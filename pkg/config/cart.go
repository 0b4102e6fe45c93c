package config

import (
	"fmt"
	"time"
)

// CartConfig controls cart persistence and session scoping.
type CartConfig struct {
	// Collection is the document collection holding one cart per session.
	Collection string `koanf:"collection"`
	// CookieName is the browser cookie carrying the cart session ID.
	CookieName string `koanf:"cookiename"`
	// TTL bounds how long an abandoned cart document is retained.
	TTL time.Duration `koanf:"ttl"`
}

func (c *CartConfig) Validate() error {
	if c.Collection == "" {
		return fmt.Errorf("cart collection is not configured")
	}
	if c.CookieName == "" {
		return fmt.Errorf("cart cookie name is not configured")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("cart TTL is not configured")
	}
	return nil
}
