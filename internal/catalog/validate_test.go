package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid file", func(t *testing.T) {
		path := writeFile(t, "in.csv", simpleHeader+`
Widget,simple,W-1,9.99,desc,publish
Gadget,simple,G-1,5.00,desc,publish
`)

		report, err := Validate(ctx, path)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
		assert.Equal(t, 2, report.TotalRows)
	})

	t.Run("Missing columns and empty file", func(t *testing.T) {
		path := writeFile(t, "in.csv", "name,sku\n")

		report, err := Validate(ctx, path)
		require.NoError(t, err)
		assert.False(t, report.Valid)
		require.Len(t, report.Errors, 2)
		assert.Contains(t, report.Errors[0], "missing required columns")
		assert.Contains(t, report.Errors[1], "no data rows")
	})

	t.Run("Duplicate SKUs warned", func(t *testing.T) {
		path := writeFile(t, "in.csv", simpleHeader+`
Widget,simple,W-1,9.99,desc,publish
Gadget,simple,W-1,5.00,desc,publish
`)

		report, err := Validate(ctx, path)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		require.Len(t, report.Warnings, 1)
		assert.Contains(t, report.Warnings[0], "duplicate skus")
		assert.Contains(t, report.Warnings[0], "W-1")
	})

	t.Run("Empty required cells warned", func(t *testing.T) {
		path := writeFile(t, "in.csv", simpleHeader+`
,simple,W-1,9.99,desc,publish
`)

		report, err := Validate(ctx, path)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		require.NotEmpty(t, report.Warnings)
		assert.Contains(t, report.Warnings[0], `empty "name"`)
	})

	t.Run("Unreadable file", func(t *testing.T) {
		_, err := Validate(ctx, filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})
}
