package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/golshop/storefront/pkg/config"
	"github.com/golshop/storefront/pkg/logger"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
func NewLogger(level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := logger.NewContextHandler(slog.NewJSONHandler(os.Stdout, loggerOpts))
	return slog.New(logHandler)
}

// NewFirestoreClient creates a Firestore client for the configured project.
// An empty credentials file falls back to Application Default Credentials.
// A listing of root collections is attempted so misconfiguration fails early.
func NewFirestoreClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var (
		client *firestore.Client
		err    error
	)
	if cfg.CredentialsFile != "" {
		client, err = firestore.NewClient(ctx, cfg.ProjectID, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		client, err = firestore.NewClient(ctx, cfg.ProjectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	if _, err := client.Collections(ctx).GetAll(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("firestore connectivity check failed: %w", err)
	}
	return client, nil
}

// NewFirebaseAuthClient creates a Firebase Auth client for the configured project.
func NewFirebaseAuthClient(ctx context.Context, cfg config.FirebaseConfig) (*fbauth.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}
	return client, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
