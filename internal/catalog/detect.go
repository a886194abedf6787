package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/tabular"
	"github.com/IzGus/wc-product-manager/internal/wccsv"
)

type Format string

const (
	FormatWooCommerce Format = "woocommerce"
	FormatSimple      Format = "simple"
)

// DetectFormat classifies a header row. A file counts as a WooCommerce
// native export when at least three of the indicator columns appear
// verbatim; everything else is the simple format.
func DetectFormat(columns []string) Format {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	found := 0
	for _, indicator := range wccsv.IndicatorColumns() {
		if _, ok := present[indicator]; ok {
			found++
		}
	}

	if found >= 3 {
		return FormatWooCommerce
	}
	return FormatSimple
}

// DetectFileFormat reads only the header row; classification never scans
// file content. On a read failure it returns FormatSimple together with an
// ErrDetectFormat-wrapped error, so callers can log and still proceed down
// the simple path.
func DetectFileFormat(ctx context.Context, path string) (Format, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "DetectFileFormat"),
		zap.String("file", path),
	)

	header, err := tabular.ReadHeader(path)
	if err != nil {
		log.Error("format detection failed, assuming simple", zap.Error(err))
		return FormatSimple, fmt.Errorf("%w: %v", ErrDetectFormat, err)
	}

	format := DetectFormat(header)
	log.Info("csv format detected", zap.String("format", string(format)))
	return format, nil
}
