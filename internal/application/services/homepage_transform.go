package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Compatibility shim for home page entries authored before the nested schema
// migration. Older entries hold a flat mapping of scalar keys (heroLogoUrl,
// introHeadline, ...) while the rendering layer expects nested blocks
// (hero.logoUrl, intro.headline, ...). Once every home entry is known-nested
// this file should be deleted.
//
// The mapping is scoped to the page-content/home entry only. The detection
// heuristic keys on specific flat names and would false-positive on unrelated
// content shapes, so it must not be generalized to other entries.

// flatHomeKeyPaths maps each recognized flat key to its position in the
// nested output. Keys outside this table are dropped, not carried through.
var flatHomeKeyPaths = map[string]string{
	"heroLogoUrl":           "hero.logoUrl",
	"heroLogoAlt":           "hero.logoAlt",
	"heroVideoUrl":          "hero.videoUrl",
	"heroPosterUrl":         "hero.posterUrl",
	"introHeadline":         "intro.headline",
	"introCtaText":          "intro.ctaText",
	"introCtaUrl":           "intro.ctaUrl",
	"videoMaskImageUrl":     "videoMask.imageUrl",
	"aboutTitle":            "about.title",
	"aboutTitleItalicPart":  "about.titleItalicPart",
	"aboutBody":             "about.body",
	"aboutCtaText":          "about.ctaText",
	"aboutCtaUrl":           "about.ctaUrl",
	"lodgeCarouselTitle":    "lodgeCarousel.title",
	"lodgeCarouselLodges":   "lodgeCarousel.lodges",
	"whyBeckonsTitle":       "whyBeckons.title",
	"whyBeckonsDescription": "whyBeckons.description",
	"whyBeckonsCards":       "whyBeckons.cards",
	"stickyButtonText":      "stickyButtonText",
}

// flatHomeSentinelKeys detect the flat format. A payload containing at least
// one of these is treated as flat; otherwise it passes through unchanged.
var flatHomeSentinelKeys = []string{"heroLogoUrl", "introHeadline", "aboutTitle"}

// IsFlatHomePayload reports whether the payload uses the legacy flat format.
func IsFlatHomePayload(payload map[string]any) bool {
	for _, key := range flatHomeSentinelKeys {
		if _, present := payload[key]; present {
			return true
		}
	}
	return false
}

// TransformFlatHomePayload reshapes a flat home payload into the nested
// structure. It is a pure function: the same flat input always yields the
// same nested output, and the input map is not mutated.
func TransformFlatHomePayload(flat map[string]any) map[string]any {
	nested := make(map[string]any)

	for key, value := range flat {
		path, recognized := flatHomeKeyPaths[key]
		if !recognized {
			continue
		}

		segments := strings.Split(path, ".")
		if len(segments) == 1 {
			nested[segments[0]] = value
			continue
		}

		block, ok := nested[segments[0]].(map[string]any)
		if !ok {
			block = make(map[string]any)
			nested[segments[0]] = block
		}
		block[segments[1]] = value
	}

	return nested
}

// NormalizeHomePayload applies the flat-to-nested shim to a raw home entry
// payload when the flat format is detected, and passes nested payloads
// through unchanged.
func NormalizeHomePayload(raw json.RawMessage) (json.RawMessage, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode home payload: %w", err)
	}

	if !IsFlatHomePayload(payload) {
		return raw, nil
	}

	nested := TransformFlatHomePayload(payload)
	out, err := json.Marshal(nested)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reshaped home payload: %w", err)
	}
	return out, nil
}
