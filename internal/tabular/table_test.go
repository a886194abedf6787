package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLookup(t *testing.T) {
	tbl := NewTable([]string{"name", "sku", "price"})
	tbl.Append([]string{"Widget", "", "9.99"})

	row := tbl.Rows[0]

	t.Run("Present", func(t *testing.T) {
		v, ok := row.Lookup("name")
		assert.True(t, ok)
		assert.Equal(t, "Widget", v)
	})

	t.Run("Blank cell is absent", func(t *testing.T) {
		_, ok := row.Lookup("sku")
		assert.False(t, ok)
	})

	t.Run("Unknown column is absent", func(t *testing.T) {
		_, ok := row.Lookup("weight")
		assert.False(t, ok)
	})

	t.Run("Get with default", func(t *testing.T) {
		assert.Equal(t, "Widget", row.Get("name", "fallback"))
		assert.Equal(t, "fallback", row.Get("sku", "fallback"))
	})
}

func TestReadFile(t *testing.T) {
	t.Run("BOM stripped and rows parsed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.csv")
		data := "\ufeffname,sku\nWidget,W-1\nGadget,G-1\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		tbl, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "sku"}, tbl.Columns)
		assert.Len(t, tbl.Rows, 2)
		assert.Equal(t, "W-1", tbl.Rows[0].Get("sku", ""))
	})

	t.Run("Short record dropped, rest kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.csv")
		data := "name,sku\nWidget,W-1\nbroken\nGadget,G-1\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		tbl, err := ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, tbl.Rows, 2)
		assert.Equal(t, 1, tbl.SkippedRows)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteFile(path, []string{"name", "sku"}, [][]string{{"Widget", "W-1"}})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\ufeff", string(raw[:3]))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "sku"}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Widget", tbl.Rows[0].Get("name", ""))
}

func TestReadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffID,Тип\n1,simple\n"), 0o644))

	header, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Тип"}, header)
}
