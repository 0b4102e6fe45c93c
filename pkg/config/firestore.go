package config

import (
	"fmt"
	"strings"
)

// FirestoreConfig holds the connection settings for the document database.
// CredentialsFile may be empty, in which case Application Default Credentials
// are used.
type FirestoreConfig struct {
	ProjectID       string `koanf:"projectid"`
	CredentialsFile string `koanf:"credentialsfile"`
}

// String returns a string representation of the Firestore configuration.
func (c *FirestoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Firestore ---\n")
	b.WriteString(fmt.Sprintf("  projectId: %s\n", c.ProjectID))
	if c.CredentialsFile == "" {
		b.WriteString("  credentialsFile: <ADC>\n")
	} else {
		b.WriteString(fmt.Sprintf("  credentialsFile: %s\n", c.CredentialsFile))
	}
	return b.String()
}

func (c *FirestoreConfig) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("firestore project ID is not configured")
	}
	return nil
}
