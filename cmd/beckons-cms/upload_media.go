package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BaillieLodges/beckons-go/config"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/media"
	"github.com/spf13/cobra"
)

var uploadAlt string
var uploadRaw bool

var uploadMediaCmd = &cobra.Command{
	Use:   "upload-media [files...]",
	Short: "Optimize and upload media assets",
	Long: `Uploads image files to the CMS media store. Raster images are resized and
re-encoded as WebP before upload; SVG files pass through untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUploadMedia,
}

func init() {
	uploadMediaCmd.Flags().StringVar(&uploadAlt, "alt", "", "Alt text applied to every uploaded asset")
	uploadMediaCmd.Flags().BoolVar(&uploadRaw, "raw", false, "Upload files as-is without resizing")
}

func runUploadMedia(cmd *cobra.Command, args []string) error {
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

	processor := media.NewImageProcessor(config.MediaVariantLarge, config.MediaVariantMedium, config.MediaVariantThumb)

	failures := 0
	for _, path := range args {
		if err := uploadOne(ctx, admin, processor, path); err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", path, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d uploads failed", failures, len(args))
	}
	return nil
}

func uploadOne(ctx context.Context, admin *cms.AdminClient, processor *media.ImageProcessor, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	filename := filepath.Base(path)
	mimeType := media.MimeTypeForFilename(filename)
	fmt.Printf("Uploading %s (%d bytes)...\n", filename, len(data))

	payload, payloadName, payloadMime := data, filename, mimeType
	if !uploadRaw {
		variants, err := processor.BuildVariants(data, mimeType)
		if err != nil {
			return err
		}
		// Prefer the large rendition; small sources and SVGs keep the original.
		for _, v := range variants {
			if v.Name == "large" {
				payload = v.Data
				payloadName = media.VariantFilename(filename, v)
				payloadMime = v.MimeType
				break
			}
		}
	}

	upload, err := admin.UploadMedia(ctx, payload, payloadName, payloadMime, uploadAlt)
	if err != nil {
		return err
	}

	url := cms.MediaURL(config.MediaCDNBase, upload.Variants.PreferredURL())
	fmt.Printf("  uploaded %s -> %s\n", payloadName, url)
	return nil
}
