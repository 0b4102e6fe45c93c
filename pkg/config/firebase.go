package config

import (
	"fmt"
)

// FirebaseConfig holds the settings for the hosted identity provider.
type FirebaseConfig struct {
	ProjectID       string `koanf:"projectid"`
	CredentialsFile string `koanf:"credentialsfile"`
	// PasswordResetURL is the continue URL embedded in password reset links.
	PasswordResetURL string `koanf:"passwordreseturl"`
}

func (c *FirebaseConfig) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("firebase project ID is not configured")
	}
	return nil
}
