package wccsv

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
	"github.com/IzGus/wc-product-manager/internal/tabular"
)

// WriteProducts serializes products (and their variations) into a
// WooCommerce-format CSV file.
func WriteProducts(ctx context.Context, products []*product.Product, path string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "wccsv"),
		zap.String("method", "WriteProducts"),
		zap.String("file", path),
	)

	rows := Rows(products)
	if err := tabular.WriteFile(path, Headers(), rows); err != nil {
		log.Error("export failed", zap.Error(err))
		return fmt.Errorf("write woocommerce csv: %w", err)
	}

	log.Info("woocommerce csv written",
		zap.Int("products", len(products)),
		zap.Int("rows", len(rows)),
	)
	return nil
}

// Rows flattens products into full-width records: one row per product,
// then one row per variation directly after its parent.
func Rows(products []*product.Product) [][]string {
	headers := Headers()
	var rows [][]string
	for _, p := range products {
		rows = append(rows, project(headers, productRow(p)))
		for _, v := range p.Variations {
			rows = append(rows, project(headers, variationRow(v, p)))
		}
	}
	return rows
}

// project lays a sparse cell map onto the fixed header order; columns the
// row does not set come out as empty strings, never omitted.
func project(headers []string, cells map[string]string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = cells[h]
	}
	return out
}

func productRow(p *product.Product) map[string]string {
	row := map[string]string{
		colType:             p.Type,
		colSKU:              p.SKU,
		colName:             p.Name,
		colVisibility:       "visible",
		colShortDescription: p.ShortDescription,
		colDescription:      p.Description,
		colRegularPrice:     p.RegularPrice,
		colSalePrice:        p.SalePrice,
		colStockStatus:      p.StockStatus,
		colWeight:           p.Weight,
		colLength:           p.Dimensions.Length,
		colWidth:            p.Dimensions.Width,
		colHeight:           p.Dimensions.Height,
		colPublished:        boolCell(p.Status == product.StatusPublish),
		colFeatured:         boolCell(p.Featured),
	}

	if p.ID != nil {
		row[colID] = strconv.Itoa(*p.ID)
	}
	if p.ManageStock && p.StockQuantity != nil {
		row[colStock] = strconv.Itoa(*p.StockQuantity)
	}

	if len(p.Categories) > 0 {
		names := make([]string, len(p.Categories))
		for i, c := range p.Categories {
			names[i] = c.Name
		}
		row[colCategories] = strings.Join(names, ", ")
	}
	if len(p.Images) > 0 {
		srcs := make([]string, len(p.Images))
		for i, img := range p.Images {
			srcs[i] = img.Src
		}
		row[colImages] = strings.Join(srcs, ", ")
	}

	attributes := p.Attributes
	if len(attributes) > MaxAttributeSlots {
		attributes = attributes[:MaxAttributeSlots]
	}
	for i, attr := range attributes {
		slot := i + 1
		row[attrNameCol(slot)] = attr.Name
		row[attrValuesCol(slot)] = strings.Join(attr.Options, " | ")
		row[attrVisibleCol(slot)] = boolCell(attr.Visible)
		row[attrGlobalCol(slot)] = "1"
	}

	for _, meta := range p.MetaData {
		col := metaPrefix + meta.Key
		if isMetaColumn(col) {
			row[col] = fmt.Sprint(meta.Value)
		}
	}

	return row
}

// variationRow repeats only the variation-specific fields; descriptive and
// SEO columns stay on the parent row.
func variationRow(v *product.Variation, parent *product.Product) map[string]string {
	row := map[string]string{
		colType:         rowTypeVariation,
		colSKU:          v.SKU,
		colName:         parent.Name,
		colPublished:    "1",
		colFeatured:     "0",
		colVisibility:   "visible",
		colRegularPrice: v.RegularPrice,
		colSalePrice:    v.SalePrice,
		colStockStatus:  product.StockInStock,
	}

	// The server assigns variation IDs; the ID column stays empty.
	if parent.ID != nil {
		row[colParent] = strconv.Itoa(*parent.ID)
	}
	if v.StockQuantity != nil {
		row[colStock] = strconv.Itoa(*v.StockQuantity)
	}

	attributes := v.Attributes
	if len(attributes) > MaxAttributeSlots {
		attributes = attributes[:MaxAttributeSlots]
	}
	for i, attr := range attributes {
		slot := i + 1
		row[attrNameCol(slot)] = attr.Name
		row[attrValuesCol(slot)] = attr.Option
		row[attrVisibleCol(slot)] = "1"
		row[attrGlobalCol(slot)] = "1"
	}

	if v.Image != nil {
		row[colImages] = v.Image.Src
	}

	return row
}

func boolCell(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func isMetaColumn(col string) bool {
	for _, c := range metaColumns {
		if c == col {
			return true
		}
	}
	return false
}
