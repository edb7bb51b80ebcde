package models

import (
	"go/format"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Structs that embed Rect split gofmt's column alignment around the embedded
// field, which is easy to get wrong by hand.
func TestEmbeddedRectModelsAreFormatted(t *testing.T) {
	for _, name := range []string{"plant.go", "raised_bed.go"} {
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(name)
			require.NoError(t, err)

			formatted, err := format.Source(src)
			require.NoError(t, err)
			assert.Equal(t, string(formatted), string(src))
		})
	}
}
