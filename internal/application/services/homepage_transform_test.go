package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFlatHomePayload(t *testing.T) {
	assert := require.New(t)

	assert.True(IsFlatHomePayload(map[string]any{"heroLogoUrl": "logo.svg"}))
	assert.True(IsFlatHomePayload(map[string]any{"introHeadline": "x"}))
	assert.True(IsFlatHomePayload(map[string]any{"aboutTitle": "x"}))

	assert.False(IsFlatHomePayload(map[string]any{
		"hero": map[string]any{"logoUrl": "logo.svg"},
	}))
	assert.False(IsFlatHomePayload(map[string]any{}))
}

func TestTransformFlatHomePayload(t *testing.T) {
	assert := require.New(t)

	flat := map[string]any{
		"heroLogoUrl":      "logo.svg",
		"heroVideoUrl":     "hero.mp4",
		"introHeadline":    "A rare kind of quiet",
		"introCtaText":     "Discover",
		"aboutTitle":       "About",
		"aboutBody":        "Body text",
		"stickyButtonText": "Inquire",
		"whyBeckonsCards": []any{
			map[string]any{"title": "Card", "imageUrl": "a.jpg"},
		},
	}

	nested := TransformFlatHomePayload(flat)

	hero := nested["hero"].(map[string]any)
	assert.Equal("logo.svg", hero["logoUrl"])
	assert.Equal("hero.mp4", hero["videoUrl"])

	intro := nested["intro"].(map[string]any)
	assert.Equal("A rare kind of quiet", intro["headline"])
	assert.Equal("Discover", intro["ctaText"])

	about := nested["about"].(map[string]any)
	assert.Equal("About", about["title"])
	assert.Equal("Body text", about["body"])

	assert.Equal("Inquire", nested["stickyButtonText"], "top-level keys stay top-level")

	why := nested["whyBeckons"].(map[string]any)
	cards := why["cards"].([]any)
	assert.Len(cards, 1)
}

func TestTransformFlatHomePayloadDropsUnknownKeys(t *testing.T) {
	assert := require.New(t)

	nested := TransformFlatHomePayload(map[string]any{
		"heroLogoUrl": "logo.svg",
		"legacyField": "gone",
	})

	assert.Contains(nested, "hero")
	assert.NotContains(nested, "legacyField")
}

func TestTransformFlatHomePayloadIsPure(t *testing.T) {
	assert := require.New(t)

	flat := map[string]any{"heroLogoUrl": "logo.svg"}
	first := TransformFlatHomePayload(flat)
	second := TransformFlatHomePayload(flat)

	assert.Equal(first, second)
	assert.Equal(map[string]any{"heroLogoUrl": "logo.svg"}, flat, "input map is not mutated")
}

func TestNormalizeHomePayloadPassesNestedThrough(t *testing.T) {
	assert := require.New(t)

	raw := json.RawMessage(`{"hero":{"logoUrl":"logo.svg"},"stickyButtonText":"Inquire"}`)
	out, err := NormalizeHomePayload(raw)
	assert.NoError(err)
	assert.JSONEq(string(raw), string(out))
}

func TestNormalizeHomePayloadReshapesFlat(t *testing.T) {
	assert := require.New(t)

	out, err := NormalizeHomePayload(json.RawMessage(`{"heroLogoUrl":"logo.svg","introHeadline":"Quiet"}`))
	assert.NoError(err)

	var nested map[string]any
	assert.NoError(json.Unmarshal(out, &nested))
	assert.Equal("logo.svg", nested["hero"].(map[string]any)["logoUrl"])
	assert.Equal("Quiet", nested["intro"].(map[string]any)["headline"])
}

func TestNormalizeHomePayloadMalformed(t *testing.T) {
	assert := require.New(t)

	_, err := NormalizeHomePayload(json.RawMessage(`[1,2,3]`))
	assert.Error(err)
	_, err = NormalizeHomePayload(json.RawMessage(`{"broken"`))
	assert.Error(err)
}
