package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
	"github.com/IzGus/wc-product-manager/internal/tabular"
)

// The simple format uses canonical English column names and packs nested
// fields as JSON text in single columns.

var requiredColumns = []string{
	"name", "type", "sku", "regular_price", "description", "status",
}

var simpleColumns = []string{
	"id", "name", "type", "sku", "regular_price", "sale_price",
	"description", "short_description", "stock_quantity", "manage_stock",
	"stock_status", "weight", "status", "featured", "virtual",
	"downloadable", "date_created", "date_modified",
	"categories", "images", "attributes", "meta_data", "dimensions",
}

func importSimple(ctx context.Context, path string) ([]*product.Product, *ImportStats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "importSimple"),
		zap.String("file", path),
	)

	table, err := tabular.ReadFile(path)
	if err != nil {
		log.Error("failed to read csv", zap.Error(err))
		return nil, nil, err
	}

	var missing []string
	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		log.Error("required columns missing", zap.Strings("columns", missing))
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	stats := &ImportStats{SkippedRows: table.SkippedRows}
	products := make([]*product.Product, 0, len(table.Rows))

	for i, row := range table.Rows {
		rowNum := i + 1

		p := product.New(row.Get("name", ""))
		p.Type = row.Get("type", product.TypeSimple)
		p.SKU = row.Get("sku", "")
		p.RegularPrice = row.Get("regular_price", "")
		p.SalePrice = row.Get("sale_price", "")
		p.Description = row.Get("description", "")
		p.ShortDescription = row.Get("short_description", "")
		p.Status = row.Get("status", product.StatusPublish)
		p.StockStatus = row.Get("stock_status", product.StockInStock)
		p.Weight = row.Get("weight", "")
		p.Featured = truthy(row.Get("featured", ""))
		p.Virtual = truthy(row.Get("virtual", ""))
		p.Downloadable = truthy(row.Get("downloadable", ""))
		p.ManageStock = truthy(row.Get("manage_stock", ""))
		p.DateCreated = row.Get("date_created", "")
		p.DateModified = row.Get("date_modified", "")

		if v, ok := row.Lookup("stock_quantity"); ok {
			if qty, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				p.StockQuantity = &qty
			} else {
				log.Warn("bad stock_quantity, left unset",
					zap.Int("row", rowNum), zap.String("value", strings.TrimSpace(v)))
				stats.FieldErrors = multierr.Append(stats.FieldErrors,
					fmt.Errorf("row %d: stock_quantity %q", rowNum, strings.TrimSpace(v)))
			}
		}

		// One malformed nested field leaves that field at its default; the
		// row itself is kept.
		decodeField(log, stats, row, rowNum, "categories", &p.Categories)
		decodeField(log, stats, row, rowNum, "images", &p.Images)
		decodeField(log, stats, row, rowNum, "attributes", &p.Attributes)
		decodeField(log, stats, row, rowNum, "meta_data", &p.MetaData)
		decodeField(log, stats, row, rowNum, "dimensions", &p.Dimensions)

		products = append(products, p)
	}

	log.Info("simple csv imported", zap.Int("products", len(products)))
	return products, stats, nil
}

func decodeField[T any](log *zap.Logger, stats *ImportStats, row tabular.Row, rowNum int, column string, dst *T) {
	raw, ok := row.Lookup(column)
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Warn("bad nested field, left at default",
			zap.Int("row", rowNum), zap.String("column", column), zap.Error(err))
		stats.FieldErrors = multierr.Append(stats.FieldErrors,
			fmt.Errorf("row %d: %s: %w", rowNum, column, err))
	}
}

func truthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func exportSimple(ctx context.Context, products []*product.Product, path string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "exportSimple"),
		zap.String("file", path),
	)

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, simpleRow(p))
	}

	if err := tabular.WriteFile(path, simpleColumns, rows); err != nil {
		log.Error("export failed", zap.Error(err))
		return fmt.Errorf("write simple csv: %w", err)
	}

	log.Info("simple csv written", zap.Int("products", len(products)))
	return nil
}

func simpleRow(p *product.Product) []string {
	cells := map[string]string{
		"name":              p.Name,
		"type":              p.Type,
		"sku":               p.SKU,
		"regular_price":     p.RegularPrice,
		"sale_price":        p.SalePrice,
		"description":       p.Description,
		"short_description": p.ShortDescription,
		"manage_stock":      strconv.FormatBool(p.ManageStock),
		"stock_status":      p.StockStatus,
		"weight":            p.Weight,
		"status":            p.Status,
		"featured":          strconv.FormatBool(p.Featured),
		"virtual":           strconv.FormatBool(p.Virtual),
		"downloadable":      strconv.FormatBool(p.Downloadable),
		"date_created":      p.DateCreated,
		"date_modified":     p.DateModified,
		"categories":        jsonCell(nonNil(p.Categories)),
		"images":            jsonCell(nonNil(p.Images)),
		"attributes":        jsonCell(nonNil(p.Attributes)),
		"meta_data":         jsonCell(nonNil(p.MetaData)),
		"dimensions":        jsonCell(p.Dimensions),
	}
	if p.ID != nil {
		cells["id"] = strconv.Itoa(*p.ID)
	}
	if p.StockQuantity != nil {
		cells["stock_quantity"] = strconv.Itoa(*p.StockQuantity)
	}

	row := make([]string, len(simpleColumns))
	for i, col := range simpleColumns {
		row[i] = cells[col]
	}
	return row
}

func jsonCell(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
