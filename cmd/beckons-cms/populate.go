package main

import (
	"context"
	"fmt"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/spf13/cobra"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Seed the page and global content entries",
	Long:  `Creates the home, inquire, email-subscription, and thank-you pages plus the global settings, footer, and navigation entries. Existing entries are skipped.`,
	RunE:  runPopulate,
}

type entryDef struct {
	typeSlug string
	slug     string
	data     map[string]any
}

func seedEntries() []entryDef {
	return []entryDef{
		{typeSlug: "page-content", slug: "home", data: homeSeed()},
		{typeSlug: "page-content", slug: "inquire", data: inquireSeed()},
		{typeSlug: "page-content", slug: "email-subscription", data: emailSubscriptionSeed()},
		{typeSlug: "page-content", slug: "thank-you", data: thankYouSeed()},
		{typeSlug: "site-settings", slug: "global-settings", data: siteSettingsSeed()},
		{typeSlug: "site-footer", slug: "global-footer", data: footerSeed()},
		{typeSlug: "navigation", slug: "global-navigation", data: navigationSeed()},
	}
}

func runPopulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger, err := cliLogger()
	if err != nil {
		return err
	}
	admin, err := adminSession(ctx, logger)
	if err != nil {
		return err
	}

	typeIDs := make(map[string]string)
	resolveType := func(slug string) (string, error) {
		if id, ok := typeIDs[slug]; ok {
			return id, nil
		}
		contentType, err := admin.GetContentTypeBySlug(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("content type %q not found; run setup first: %w", slug, err)
		}
		typeIDs[slug] = contentType.ID
		return contentType.ID, nil
	}

	for _, def := range seedEntries() {
		if err := createEntry(ctx, admin, resolveType, def); err != nil {
			return err
		}
	}

	fmt.Println("Content population complete.")
	return nil
}

func createEntry(ctx context.Context, admin *cms.AdminClient, resolveType func(string) (string, error), def entryDef) error {
	typeID, err := resolveType(def.typeSlug)
	if err != nil {
		return err
	}

	fmt.Printf("Creating %s/%s...\n", def.typeSlug, def.slug)
	created, err := admin.CreateContentEntry(ctx, typeID, def.slug, def.data)
	if err != nil {
		if cms.IsAlreadyExists(err) {
			fmt.Printf("  %q already exists, skipping\n", def.slug)
			return nil
		}
		return fmt.Errorf("failed to create %s/%s: %w", def.typeSlug, def.slug, err)
	}
	fmt.Printf("  created (id %s)\n", created.ID)
	return nil
}
