package media

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// pngBytes renders a solid test image of the given width.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 140, B: 110, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeBase64ImageWithDataURI(t *testing.T) {
	assert := require.New(t)

	raw := []byte("not-really-an-image")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	decoded, mimeType, err := DecodeBase64Image(encoded)
	assert.NoError(err)
	assert.Equal(raw, decoded)
	assert.Equal("image/png", mimeType)
}

func TestDecodeBase64ImageBare(t *testing.T) {
	assert := require.New(t)

	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	decoded, mimeType, err := DecodeBase64Image(base64.StdEncoding.EncodeToString(raw))
	assert.NoError(err)
	assert.Equal(raw, decoded)
	assert.Empty(mimeType)
}

func TestDecodeBase64ImageErrors(t *testing.T) {
	assert := require.New(t)

	_, _, err := DecodeBase64Image("")
	assert.Error(err)
	_, _, err = DecodeBase64Image("!!not-base64!!")
	assert.Error(err)
}

func TestMimeTypeForFilename(t *testing.T) {
	assert := require.New(t)

	assert.Equal("image/jpeg", MimeTypeForFilename("hero-poster.JPG"))
	assert.Equal("image/jpeg", MimeTypeForFilename("photo.jpeg"))
	assert.Equal("image/png", MimeTypeForFilename("mask.png"))
	assert.Equal("image/svg+xml", MimeTypeForFilename("logo.svg"))
	assert.Equal("image/webp", MimeTypeForFilename("card.webp"))
	assert.Equal("application/octet-stream", MimeTypeForFilename("noext"))
}

func TestBuildVariantsRaster(t *testing.T) {
	assert := require.New(t)
	processor := NewImageProcessor(400, 200, 100)

	variants, err := processor.BuildVariants(pngBytes(t, 800, 600), "image/png")
	assert.NoError(err)
	assert.Len(variants, 4)

	assert.Equal("original", variants[0].Name)
	assert.Equal("image/png", variants[0].MimeType)
	assert.Equal(800, variants[0].Width)

	names := []string{variants[1].Name, variants[2].Name, variants[3].Name}
	assert.Equal([]string{"large", "medium", "thumbnail"}, names)

	for _, v := range variants[1:] {
		assert.Equal("image/webp", v.MimeType)
		assert.NotEmpty(v.Data)
	}
}

func TestBuildVariantsSkipsWidthsSourceCannotFill(t *testing.T) {
	assert := require.New(t)
	processor := NewImageProcessor(1920, 800, 200)

	// 500px source is wider than thumbnail only.
	variants, err := processor.BuildVariants(pngBytes(t, 500, 300), "image/png")
	assert.NoError(err)
	assert.Len(variants, 2)
	assert.Equal("original", variants[0].Name)
	assert.Equal("thumbnail", variants[1].Name)
}

func TestBuildVariantsSVGPassthrough(t *testing.T) {
	assert := require.New(t)
	processor := NewImageProcessor(1920, 800, 200)

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	variants, err := processor.BuildVariants(svg, "image/svg+xml")
	assert.NoError(err)
	assert.Len(variants, 1)
	assert.Equal("original", variants[0].Name)
	assert.Equal(svg, variants[0].Data)
}

func TestBuildVariantsErrors(t *testing.T) {
	assert := require.New(t)
	processor := NewImageProcessor(1920, 800, 200)

	_, err := processor.BuildVariants(nil, "image/png")
	assert.Error(err)
	_, err = processor.BuildVariants([]byte("garbage"), "image/png")
	assert.Error(err)
}

func TestVariantFilename(t *testing.T) {
	assert := require.New(t)

	original := Variant{Name: "original"}
	large := Variant{Name: "large"}

	assert.Equal("hero-poster.jpg", VariantFilename("hero-poster.jpg", original))
	assert.Equal("hero-poster_large.webp", VariantFilename("hero-poster.jpg", large))
	assert.Equal("mask_large.webp", VariantFilename("mask.png", large))
}
