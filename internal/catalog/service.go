package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
	"github.com/IzGus/wc-product-manager/internal/tabular"
	"github.com/IzGus/wc-product-manager/internal/wccsv"
)

// ImportStats counts the damage a partially bad file did. Row- and
// field-level problems never fail an import; file-level problems do.
type ImportStats struct {
	SkippedRows      int
	OrphanVariations int
	FieldErrors      error
}

type ImportResult struct {
	Products []*product.Product
	Format   Format
	Stats    ImportStats
}

// Import reads a CSV file with automatic format detection. A detection
// failure is logged and falls through to the simple path, whose own header
// validation then decides the file's fate.
func Import(ctx context.Context, path string) (*ImportResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "Import"),
		zap.String("file", path),
	)

	format, err := DetectFileFormat(ctx, path)
	if err != nil {
		log.Warn("falling back to simple format", zap.Error(err))
	}

	switch format {
	case FormatWooCommerce:
		return importWooCommerce(ctx, path)
	default:
		products, stats, err := importSimple(ctx, path)
		if err != nil {
			return nil, err
		}
		return &ImportResult{Products: products, Format: FormatSimple, Stats: *stats}, nil
	}
}

func importWooCommerce(ctx context.Context, path string) (*ImportResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "importWooCommerce"),
		zap.String("file", path),
	)

	table, err := tabular.ReadFile(path)
	if err != nil {
		log.Error("failed to read csv", zap.Error(err))
		return nil, err
	}

	products, report := wccsv.ParseProducts(ctx, table)
	return &ImportResult{
		Products: products,
		Format:   FormatWooCommerce,
		Stats: ImportStats{
			SkippedRows:      report.SkippedRows + table.SkippedRows,
			OrphanVariations: report.OrphanVariations,
			FieldErrors:      report.Err,
		},
	}, nil
}

// Export writes products in the requested format.
func Export(ctx context.Context, products []*product.Product, path string, format Format) error {
	switch format {
	case FormatWooCommerce:
		return wccsv.WriteProducts(ctx, products, path)
	case FormatSimple:
		return exportSimple(ctx, products, path)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
