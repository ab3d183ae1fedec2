package main

import (
	"fmt"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/spf13/cobra"
)

var fixLodgesCmd = &cobra.Command{
	Use:   "fix-lodges",
	Short: "Rewrite the home page lodge carousel from the canonical lodge list",
	Long: `Replaces the lodgeCarousel.lodges array of the page-content/home entry with
the canonical nine-lodge list. The rest of the entry payload is preserved.`,
	RunE: runFixLodges,
}

func runFixLodges(cmd *cobra.Command, args []string) error {
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

	contentType, err := admin.GetContentTypeBySlug(ctx, "page-content")
	if err != nil {
		return fmt.Errorf("page-content type not found; run setup first: %w", err)
	}

	entry, err := admin.GetContentEntryBySlug(ctx, "home", contentType.ID)
	if err != nil {
		return fmt.Errorf("page-content/home not found; run populate first: %w", err)
	}

	// Full-replace semantics: merge the fresh lodge list into the complete
	// existing payload before updating.
	merged, err := cms.MergeEntryData(entry.Data, nil)
	if err != nil {
		return err
	}

	carousel, _ := merged["lodgeCarousel"].(map[string]any)
	if carousel == nil {
		carousel = map[string]any{"title": "Our Lodges"}
		merged["lodgeCarousel"] = carousel
	}
	carousel["lodges"] = lodgeSeed()

	if _, err := admin.UpdateContentEntry(ctx, entry.ID, merged); err != nil {
		return fmt.Errorf("failed to update home entry: %w", err)
	}

	fmt.Printf("Updated lodge carousel on entry %s (%d lodges)\n", entry.ID, len(lodgeSeed()))
	return nil
}
