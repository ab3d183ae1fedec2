package main

import (
	"context"
	"fmt"
	"time"

	"github.com/BaillieLodges/beckons-go/config"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beckons-cms",
	Short: "Seed and maintain Beckons site content in the CMS",
	Long: `beckons-cms talks to the CMS backend with admin credentials.
Credentials come from CMS_EMAIL/CMS_PASSWORD, or CMS_AUTH_TOKEN when set.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(uploadMediaCmd)
	rootCmd.AddCommand(fixLodgesCmd)
	rootCmd.AddCommand(migrateImagesCmd)
}

// cliLogger builds a console-only logger for CLI runs.
func cliLogger() (*logging.ChanneledLogger, error) {
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	return logging.NewChanneledLogger(cfg)
}

// adminSession logs into the backend, or wraps CMS_AUTH_TOKEN when provided.
func adminSession(ctx context.Context, logger *logging.ChanneledLogger) (*cms.AdminClient, error) {
	client := cms.NewClient(config.CMSGraphQLURL, config.CMSOrganizationID, config.CMSRequestTimeout, logger)

	if config.CMSAuthToken != "" {
		return cms.NewAdminClient(client, config.CMSAuthToken), nil
	}

	admin, err := cms.Login(ctx, client, config.CMSEmail, config.CMSPassword)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Logged in as %s\n", admin.Session().UserEmail)
	return admin, nil
}

// commandContext returns the context commands run under.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Minute)
}
