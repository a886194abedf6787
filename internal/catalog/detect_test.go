package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	t.Run("WooCommerce header", func(t *testing.T) {
		columns := []string{"ID", "Тип", "Артикул", "Имя", "Базовая цена", "Категории"}
		assert.Equal(t, FormatWooCommerce, DetectFormat(columns))
	})

	t.Run("Exactly three indicators is enough", func(t *testing.T) {
		columns := []string{"ID", "Тип", "Артикул", "something", "else"}
		assert.Equal(t, FormatWooCommerce, DetectFormat(columns))
	})

	t.Run("Two indicators is not", func(t *testing.T) {
		columns := []string{"ID", "Тип", "name", "sku"}
		assert.Equal(t, FormatSimple, DetectFormat(columns))
	})

	t.Run("Simple header", func(t *testing.T) {
		columns := []string{"name", "type", "sku", "regular_price", "description", "status"}
		assert.Equal(t, FormatSimple, DetectFormat(columns))
	})
}

func TestDetectFileFormat(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads only the header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wc.csv")
		// Data row is deliberately malformed: detection must not care.
		data := "\ufeffID,Тип,Артикул,Имя,Базовая цена\n\"broken\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		format, err := DetectFileFormat(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, FormatWooCommerce, format)
	})

	t.Run("Read failure falls back to simple", func(t *testing.T) {
		format, err := DetectFileFormat(ctx, filepath.Join(t.TempDir(), "missing.csv"))

		assert.ErrorIs(t, err, ErrDetectFormat)
		assert.Equal(t, FormatSimple, format)
	})
}

// A file that matches neither format is forced down the simple path by the
// detection fallback and then rejected by header validation: the double
// fallback ends in an empty result, not a panic or a bogus import.
func TestImport_DoubleFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.csv")
	require.NoError(t, os.WriteFile(path, []byte("foo,bar\n1,2\n"), 0o644))

	result, err := Import(context.Background(), path)

	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Nil(t, result)
}
