package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/BaillieLodges/beckons-go/config"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/spf13/cobra"
)

// imageMigration maps one source image to every entry field that references it.
type imageMigration struct {
	name      string
	sourceURL string
	mimeType  string
	usedIn    []fieldRef
}

type fieldRef struct {
	entry string
	field string
}

// defaultMigrations lists the temporary design-tool URLs still referenced by
// content entries, keyed to the fields that carry them.
func defaultMigrations(sourceBase string) []imageMigration {
	return []imageMigration{
		{
			name: "hero-poster", sourceURL: sourceBase + "/hero-poster.jpg", mimeType: "image/jpeg",
			usedIn: []fieldRef{
				{entry: "home", field: "hero.posterUrl"},
				{entry: "home", field: "whyBeckons.cards[0].imageUrl"},
			},
		},
		{
			name: "why-card-2", sourceURL: sourceBase + "/why-card-2.jpg", mimeType: "image/jpeg",
			usedIn: []fieldRef{{entry: "home", field: "whyBeckons.cards[1].imageUrl"}},
		},
		{
			name: "why-card-3", sourceURL: sourceBase + "/why-card-3.jpg", mimeType: "image/jpeg",
			usedIn: []fieldRef{{entry: "home", field: "whyBeckons.cards[2].imageUrl"}},
		},
		{
			name: "logo-full", sourceURL: sourceBase + "/logo-full.svg", mimeType: "image/svg+xml",
			usedIn: []fieldRef{
				{entry: "global-settings", field: "logoUrl"},
				{entry: "home", field: "hero.logoUrl"},
			},
		},
		{
			name: "logo-icon", sourceURL: sourceBase + "/logo-icon.svg", mimeType: "image/svg+xml",
			usedIn: []fieldRef{
				{entry: "global-settings", field: "logoIconUrl"},
				{entry: "global-footer", field: "logoUrl"},
			},
		},
		{
			name: "video-mask-shape", sourceURL: sourceBase + "/video-mask-shape.png", mimeType: "image/png",
			usedIn: []fieldRef{
				{entry: "home", field: "videoMask.imageUrl"},
				{entry: "inquire", field: "videoMaskImageUrl"},
				{entry: "email-subscription", field: "videoMaskImageUrl"},
			},
		},
	}
}

var migrateSourceBase string

var migrateImagesCmd = &cobra.Command{
	Use:   "migrate-images",
	Short: "Move externally hosted images onto the media CDN",
	Long: `Downloads each image from its temporary source URL, re-uploads it through
the inline-editor media endpoint, and rewrites every entry field that
referenced the old URL. Requires CMS_AUTH_TOKEN.`,
	RunE: runMigrateImages,
}

func init() {
	migrateImagesCmd.Flags().StringVar(&migrateSourceBase, "source-base", "", "Base URL the images are currently served from (required)")
	migrateImagesCmd.MarkFlagRequired("source-base")
}

func runMigrateImages(cmd *cobra.Command, args []string) error {
	if config.CMSAuthToken == "" {
		return fmt.Errorf("CMS_AUTH_TOKEN is required for migrate-images")
	}

	ctx, cancel := commandContext()
	defer cancel()

	logger, err := cliLogger()
	if err != nil {
		return err
	}

	apiBase := cms.APIBaseFromGraphQLEndpoint(config.CMSGraphQLURL)
	editor := cms.NewInlineEditorClient(apiBase, config.CMSOrgSlug, config.CMSAuthToken, config.CMSRequestTimeout, logger)

	failures := 0
	for _, migration := range defaultMigrations(migrateSourceBase) {
		fmt.Printf("Migrating %s...\n", migration.name)
		if err := migrateOne(ctx, editor, migration); err != nil {
			if cms.IsAlreadyExists(err) {
				fmt.Printf("  %s already migrated, skipping\n", migration.name)
				continue
			}
			fmt.Fprintf(os.Stderr, "  %s: %v\n", migration.name, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d migrations failed", failures)
	}
	fmt.Println("Migration complete.")
	return nil
}

func migrateOne(ctx context.Context, editor *cms.InlineEditorClient, migration imageMigration) error {
	data, err := downloadImage(ctx, migration.sourceURL)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	fmt.Printf("  downloaded %d bytes\n", len(data))

	filename := migration.name + extensionForMime(migration.mimeType)
	url, err := editor.UploadFile(ctx, filename, data, migration.mimeType)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	fmt.Printf("  uploaded -> %s\n", url)

	for _, ref := range migration.usedIn {
		if err := editor.SaveField(ctx, ref.entry, ref.field, url); err != nil {
			return err
		}
		fmt.Printf("  updated %s.%s\n", ref.entry, ref.field)
	}
	return nil
}

func downloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 50<<20))
}

func extensionForMime(mimeType string) string {
	switch mimeType {
	case "image/svg+xml":
		return ".svg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
