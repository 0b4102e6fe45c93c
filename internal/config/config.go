package config

import (
	"fmt"
	"strings"

	"github.com/golshop/storefront/pkg/config"
	"github.com/golshop/storefront/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Nats       config.NATSConfig      `koanf:"nats"`
	Firestore  config.FirestoreConfig `koanf:"firestore"`
	Firebase   config.FirebaseConfig  `koanf:"firebase"`
	Cart       config.CartConfig      `koanf:"cart"`
	Catalog    config.CatalogConfig   `koanf:"catalog"`
	Order      config.OrderConfig     `koanf:"order"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Storage Configuration ---\n")
	b.WriteString(fmt.Sprintf("  firestore.projectId: %s\n", c.Firestore.ProjectID))
	b.WriteString(fmt.Sprintf("  cart.collection: %s\n", c.Cart.Collection))
	b.WriteString(fmt.Sprintf("  cart.cookieName: %s\n", c.Cart.CookieName))
	b.WriteString(fmt.Sprintf("  cart.ttl: %s\n", c.Cart.TTL))
	b.WriteString(fmt.Sprintf("  catalog.collection: %s\n", c.Catalog.Collection))
	b.WriteString(fmt.Sprintf("  catalog.fallbackToMock: %t\n", c.Catalog.FallbackToMock))
	b.WriteString(fmt.Sprintf("  order.collection: %s\n", c.Order.Collection))

	b.WriteString("\n--- External Services ---\n")
	b.WriteString(fmt.Sprintf("  firebase.projectId: %s\n", c.Firebase.ProjectID))
	b.WriteString(fmt.Sprintf("  nats.enabled: %t\n", c.Nats.Enabled))
	b.WriteString(fmt.Sprintf("  nats.url: %s\n", c.Nats.Url))
	b.WriteString(fmt.Sprintf("  nats.timeout: %s\n", c.Nats.Timeout))

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  pprof.enabled: %t\n", c.PProf.Enabled))
	b.WriteString(fmt.Sprintf("  pprof.address: %s\n", c.PProf.Addr))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Nats.Validate(); err != nil {
		return err
	}
	if err := c.Firestore.Validate(); err != nil {
		return err
	}
	if err := c.Firebase.Validate(); err != nil {
		return err
	}
	if err := c.Cart.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Order.Validate(); err != nil {
		return err
	}

	return nil
}
