package catalog

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
)

const xlsxSheet = "Products"

// ExportXLSX writes products as an Excel workbook using the simple-format
// column set; nested fields are JSON text, same as the simple CSV.
func ExportXLSX(ctx context.Context, products []*product.Product, path string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "ExportXLSX"),
		zap.String("file", path),
	)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", xlsxSheet)

	for i, col := range simpleColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsx header cell: %w", err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, col); err != nil {
			return fmt.Errorf("xlsx header: %w", err)
		}
	}

	for r, p := range products {
		for c, value := range simpleRow(p) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("xlsx cell: %w", err)
			}
			if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
				return fmt.Errorf("xlsx row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		log.Error("xlsx export failed", zap.Error(err))
		return fmt.Errorf("save xlsx: %w", err)
	}

	log.Info("xlsx written", zap.Int("products", len(products)))
	return nil
}
