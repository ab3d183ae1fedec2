// Package media provides image processing utilities
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Variant is one processed rendition of a source image.
type Variant struct {
	Name     string // "original", "large", "medium", "thumbnail"
	Data     []byte
	MimeType string
	Width    int
}

// ImageProcessor resizes source images into the renditions uploaded alongside
// the original. SVG sources pass through untouched.
type ImageProcessor struct {
	largeWidth  int
	mediumWidth int
	thumbWidth  int
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(largeWidth, mediumWidth, thumbWidth int) *ImageProcessor {
	return &ImageProcessor{
		largeWidth:  largeWidth,
		mediumWidth: mediumWidth,
		thumbWidth:  thumbWidth,
	}
}

var dataURIPattern = regexp.MustCompile(`^data:([\w./+-]+);base64,`)

// DecodeBase64Image strips a data-URI prefix if present and decodes the payload.
// Returns the raw bytes and the declared MIME type ("" when no prefix).
func DecodeBase64Image(data string) ([]byte, string, error) {
	if data == "" {
		return nil, "", fmt.Errorf("empty base64 data")
	}

	mimeType := ""
	if m := dataURIPattern.FindStringSubmatch(data); m != nil {
		mimeType = m[1]
		data = dataURIPattern.ReplaceAllString(data, "")
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64: %w", err)
	}
	return decoded, mimeType, nil
}

// MimeTypeForFilename maps a filename extension to its image MIME type.
func MimeTypeForFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".ico":
		return "image/x-icon"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// IsSVG reports whether the MIME type names an SVG document.
func IsSVG(mimeType string) bool {
	return strings.Contains(mimeType, "svg")
}

// BuildVariants generates the rendition set for a source image. The original
// is always first. Raster sources get WebP renditions at the configured
// widths, skipping widths the source cannot fill. SVG sources yield only the
// original since they scale without renditions.
func (p *ImageProcessor) BuildVariants(data []byte, mimeType string) ([]Variant, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	original := Variant{Name: "original", Data: data, MimeType: mimeType}

	if IsSVG(mimeType) {
		return []Variant{original}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	original.Width = img.Bounds().Dx()

	variants := []Variant{original}
	renditions := []struct {
		name  string
		width int
	}{
		{"large", p.largeWidth},
		{"medium", p.mediumWidth},
		{"thumbnail", p.thumbWidth},
	}

	for _, r := range renditions {
		if r.width <= 0 || original.Width <= r.width {
			continue
		}
		resized := imaging.Resize(img, r.width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := webp.Encode(&buf, resized, &webp.Options{Quality: 85}); err != nil {
			return nil, fmt.Errorf("failed to encode %s rendition: %w", r.name, err)
		}
		variants = append(variants, Variant{
			Name:     r.name,
			Data:     buf.Bytes(),
			MimeType: "image/webp",
			Width:    r.width,
		})
	}

	return variants, nil
}

// VariantFilename derives the rendition filename from the source filename.
// The original keeps its name; renditions switch to a .webp suffix.
func VariantFilename(filename string, v Variant) string {
	if v.Name == "original" {
		return filename
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return fmt.Sprintf("%s_%s.webp", base, v.Name)
}
