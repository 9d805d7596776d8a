package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotapt/pkg/ui/styles"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Muted", "Bold", "Package", "Repository", "DryRunBanner"} {
		assert.True(t, styles.Has(name), name)
	}
	assert.Equal(t, 28, styles.Get("Package").GetWidth())
	assert.True(t, styles.Get("Header").GetBold())
}

func TestGetUnknown(t *testing.T) {
	assert.False(t, styles.Has("Nope"))
	assert.Equal(t, "x", styles.Get("Nope").Render("x"))
}

func TestLoadStylesFromData(t *testing.T) {
	defer styles.Reset()

	require.NoError(t, styles.LoadStylesFromData([]byte(`
styles:
  Only:
    bold: true
`)))
	assert.True(t, styles.Has("Only"))
	assert.False(t, styles.Has("Header"))

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
