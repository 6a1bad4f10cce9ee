package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeImage(t *testing.T) {
	t.Run("strips data URI prefix", func(t *testing.T) {
		assert.Equal(t, "AAA", EncodeImage("data:image/png;base64,AAA"))
		assert.Equal(t, "BBB", EncodeImage("data:image/jpeg;base64,BBB"))
	})

	t.Run("bare payload unchanged", func(t *testing.T) {
		assert.Equal(t, "CCC", EncodeImage("CCC"))
	})

	t.Run("prefixed without payload marker unchanged", func(t *testing.T) {
		assert.Equal(t, "data:image/png", EncodeImage("data:image/png"))
	})

	t.Run("empty unchanged", func(t *testing.T) {
		assert.Equal(t, "", EncodeImage(""))
	})
}

func TestDecodeImage(t *testing.T) {
	t.Run("bare payload gets jpeg prefix", func(t *testing.T) {
		assert.Equal(t, "data:image/jpeg;base64,AAA", DecodeImage("AAA"))
	})

	t.Run("existing prefix unchanged", func(t *testing.T) {
		assert.Equal(t, "data:image/png;base64,AAA", DecodeImage("data:image/png;base64,AAA"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", DecodeImage(""))
	})
}

// The codec is deliberately lossy: whatever MIME type the transport string
// declared, a stored payload always decodes as jpeg.
func TestRoundTripNormalizesToJpeg(t *testing.T) {
	cases := map[string]string{
		"AAA":                        "data:image/jpeg;base64,AAA",
		"data:image/png;base64,AAA":  "data:image/jpeg;base64,AAA",
		"data:image/webp;base64,ZZ":  "data:image/jpeg;base64,ZZ",
		"data:image/jpeg;base64,BBB": "data:image/jpeg;base64,BBB",
	}
	for in, want := range cases {
		assert.Equal(t, want, DecodeImage(EncodeImage(in)), "input %q", in)
	}
}
