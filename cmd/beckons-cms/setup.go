package main

import (
	"fmt"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the site's content types",
	Long:  `Creates the content type schemas the site depends on. Types that already exist are skipped.`,
	RunE:  runSetup,
}

type contentTypeDef struct {
	slug        string
	name        string
	description string
	icon        string
	fields      []content.Field
}

func siteContentTypes() []contentTypeDef {
	return []contentTypeDef{
		{
			slug:        "site-settings",
			name:        "Site Settings",
			description: "Global site settings including logo and brand info",
			icon:        "settings",
			fields: []content.Field{
				{Slug: "logoUrl", Name: "Logo URL", Type: content.FieldText, Required: true, SortOrder: 0},
				{Slug: "logoAlt", Name: "Logo Alt Text", Type: content.FieldText, Required: true, SortOrder: 1},
				{Slug: "logoIconUrl", Name: "Logo Icon URL", Type: content.FieldText, SortOrder: 2},
				{Slug: "brandName", Name: "Brand Name", Type: content.FieldText, Required: true, SortOrder: 3},
			},
		},
		{
			slug:        "site-footer",
			name:        "Site Footer",
			description: "Footer content including newsletter, portfolio, and links",
			icon:        "layout",
			fields: []content.Field{
				{Slug: "logoUrl", Name: "Logo URL", Type: content.FieldText, SortOrder: 0},
				{Slug: "newsletterTitle", Name: "Newsletter Title", Type: content.FieldText, SortOrder: 1},
				{Slug: "newsletterDescription", Name: "Newsletter Description", Type: content.FieldText, SortOrder: 2},
				{Slug: "newsletterButtonText", Name: "Newsletter Button Text", Type: content.FieldText, SortOrder: 3},
				{Slug: "portfolioTitle", Name: "Portfolio Title", Type: content.FieldText, SortOrder: 4},
				{Slug: "portfolioDescription", Name: "Portfolio Description", Type: content.FieldText, SortOrder: 5},
				{Slug: "lodges", Name: "Lodges", Type: content.FieldJSON, SortOrder: 6, Description: "Array of lodge objects grouped by country"},
				{Slug: "copyrightText", Name: "Copyright Text", Type: content.FieldText, SortOrder: 7},
			},
		},
		{
			slug:        "navigation",
			name:        "Navigation",
			description: "Global navigation links",
			icon:        "menu",
			fields: []content.Field{
				{Slug: "items", Name: "Items", Type: content.FieldJSON, Required: true, SortOrder: 0, Description: "Array of {label, url} links"},
			},
		},
		{
			slug:        "page-content",
			name:        "Page Content",
			description: "Flexible page content with JSON data structure",
			icon:        "document",
			fields: []content.Field{
				{Slug: "title", Name: "Title", Type: content.FieldText, Required: true, SortOrder: 0},
				{Slug: "data", Name: "Page Data", Type: content.FieldJSON, Required: true, SortOrder: 1, Description: "Structured page content"},
				{Slug: "metaTitle", Name: "Meta Title", Type: content.FieldText, SortOrder: 2},
				{Slug: "metaDescription", Name: "Meta Description", Type: content.FieldText, SortOrder: 3},
			},
		},
	}
}

func runSetup(cmd *cobra.Command, args []string) error {
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

	ids := make(map[string]string)
	for _, def := range siteContentTypes() {
		fmt.Printf("Creating content type %q...\n", def.slug)

		if existing, err := admin.GetContentTypeBySlug(ctx, def.slug); err == nil {
			fmt.Printf("  %q already exists (id %s), skipping\n", def.slug, existing.ID)
			ids[def.slug] = existing.ID
			continue
		} else if !cms.IsNotFound(err) {
			return err
		}

		created, err := admin.CreateContentType(ctx, def.name, def.slug, def.description, def.icon, def.fields)
		if err != nil {
			if cms.IsAlreadyExists(err) {
				fmt.Printf("  %q already exists, skipping\n", def.slug)
				continue
			}
			return fmt.Errorf("failed to create %q: %w", def.slug, err)
		}
		fmt.Printf("  created %q (id %s)\n", def.slug, created.ID)
		ids[def.slug] = created.ID
	}

	fmt.Println("Content type ids:")
	for slug, id := range ids {
		fmt.Printf("  %-14s %s\n", slug, id)
	}
	return nil
}
