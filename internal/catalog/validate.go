package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/tabular"
)

// ValidationReport describes a simple-format file without importing it.
// Errors make the file unusable; warnings are survivable.
type ValidationReport struct {
	Valid     bool
	Errors    []string
	Warnings  []string
	TotalRows int
	Columns   []string
}

// Validate checks a simple-format CSV's structure: required columns,
// non-empty content, SKU uniqueness and required cells.
func Validate(ctx context.Context, path string) (*ValidationReport, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "Validate"),
		zap.String("file", path),
	)

	table, err := tabular.ReadFile(path)
	if err != nil {
		log.Error("validation read failed", zap.Error(err))
		return nil, err
	}

	report := &ValidationReport{
		Valid:     true,
		TotalRows: len(table.Rows),
		Columns:   table.Columns,
	}

	var missing []string
	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		report.Valid = false
		report.Errors = append(report.Errors,
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	if len(table.Rows) == 0 {
		report.Valid = false
		report.Errors = append(report.Errors, "csv file has no data rows")
	}

	if table.HasColumn("sku") {
		seen := make(map[string]bool)
		var duplicates []string
		for _, row := range table.Rows {
			sku, ok := row.Lookup("sku")
			if !ok {
				continue
			}
			sku = strings.TrimSpace(sku)
			if seen[sku] {
				duplicates = append(duplicates, sku)
			}
			seen[sku] = true
		}
		if len(duplicates) > 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("duplicate skus: %s", strings.Join(duplicates, ", ")))
		}
	}

	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			continue
		}
		var empty []string
		for i, row := range table.Rows {
			if _, ok := row.Lookup(col); !ok {
				empty = append(empty, fmt.Sprintf("%d", i+1))
			}
		}
		if len(empty) > 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("empty %q in rows: %s", col, strings.Join(empty, ", ")))
		}
	}

	log.Info("validation finished",
		zap.Bool("valid", report.Valid),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)),
	)
	return report, nil
}
