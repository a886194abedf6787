package wccsv

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
	"github.com/IzGus/wc-product-manager/internal/tabular"
)

var (
	listSep = regexp.MustCompile(`[,|]`)
	wsRun   = regexp.MustCompile(`\s+`)
)

// Report summarizes one parsing pass. Row-level failures never abort the
// import; they are counted here and joined into Err.
type Report struct {
	TotalRows        int
	Parsed           int
	SkippedRows      int
	OrphanVariations int
	Err              error
}

// ParseProducts converts the rows of a WooCommerce-format table into
// products, folding variation rows into their variable parents before
// returning. Source order is preserved for products and for variations
// under each parent.
func ParseProducts(ctx context.Context, t *tabular.Table) ([]*product.Product, *Report) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "wccsv"),
		zap.String("method", "ParseProducts"),
	)

	report := &Report{TotalRows: len(t.Rows)}
	var products []*product.Product
	staged := make(map[int][]*product.Variation)

	for i, row := range t.Rows {
		rowNum := i + 1

		switch row.Get(colType, product.TypeSimple) {
		case rowTypeVariation:
			variation, parentID, err := parseVariationRow(row)
			if err != nil {
				log.Error("variation row skipped", zap.Int("row", rowNum), zap.Error(err))
				report.SkippedRows++
				report.Err = multierr.Append(report.Err, fmt.Errorf("row %d: %w", rowNum, err))
				continue
			}
			if _, ok := staged[parentID]; !ok {
				log.Warn("variation dropped: parent not found",
					zap.Int("row", rowNum), zap.Int("parent_id", parentID))
				report.OrphanVariations++
				continue
			}
			staged[parentID] = append(staged[parentID], variation)

		case product.TypeVariable:
			p, err := parseProductRow(row)
			if err != nil {
				log.Error("row skipped", zap.Int("row", rowNum), zap.Error(err))
				report.SkippedRows++
				report.Err = multierr.Append(report.Err, fmt.Errorf("row %d: %w", rowNum, err))
				continue
			}
			products = append(products, p)
			if p.ID != nil {
				staged[*p.ID] = []*product.Variation{}
			}

		default:
			p, err := parseProductRow(row)
			if err != nil {
				log.Error("row skipped", zap.Int("row", rowNum), zap.Error(err))
				report.SkippedRows++
				report.Err = multierr.Append(report.Err, fmt.Errorf("row %d: %w", rowNum, err))
				continue
			}
			products = append(products, p)
		}
	}

	for _, p := range products {
		if p.ID == nil {
			continue
		}
		if variations, ok := staged[*p.ID]; ok {
			p.Variations = variations
		}
	}

	report.Parsed = len(products)
	log.Info("woocommerce csv parsed",
		zap.Int("rows", report.TotalRows),
		zap.Int("products", report.Parsed),
		zap.Int("skipped", report.SkippedRows),
		zap.Int("orphan_variations", report.OrphanVariations),
	)
	return products, report
}

func parseProductRow(row tabular.Row) (*product.Product, error) {
	p := product.New(row.Get(colName, ""))
	p.Type = row.Get(colType, product.TypeSimple)
	p.SKU = row.Get(colSKU, "")
	p.RegularPrice = row.Get(colRegularPrice, "")
	p.SalePrice = row.Get(colSalePrice, "")
	p.Description = CleanText(row.Get(colDescription, ""))
	p.ShortDescription = CleanText(row.Get(colShortDescription, ""))
	p.StockStatus = row.Get(colStockStatus, product.StockInStock)
	p.Weight = row.Get(colWeight, "")
	p.Featured = row.Get(colFeatured, "0") == "1"
	if row.Get(colPublished, "0") == "1" {
		p.Status = product.StatusPublish
	} else {
		p.Status = product.StatusDraft
	}

	if v, ok := row.Lookup(colID); ok {
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("product id %q: %w", strings.TrimSpace(v), err)
		}
		p.ID = product.IntPtr(id)
	}

	// A stock value that fails the integer cast leaves quantity unset and
	// stock management off; it never fails the row.
	if v, ok := row.Lookup(colStock); ok {
		if qty, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			p.StockQuantity = &qty
			p.ManageStock = true
		} else {
			p.ManageStock = false
		}
	}

	p.Dimensions = product.Dimensions{
		Length: row.Get(colLength, ""),
		Width:  row.Get(colWidth, ""),
		Height: row.Get(colHeight, ""),
	}

	if v, ok := row.Lookup(colCategories); ok {
		p.Categories = parseCategories(v)
	}
	if v, ok := row.Lookup(colImages); ok {
		p.Images = parseImages(v)
	}
	p.Attributes = parseAttributes(row)
	p.MetaData = parseMeta(row)

	return p, nil
}

// parseVariationRow reads a variation row and the ID of the parent it
// declares in the Родительский column.
func parseVariationRow(row tabular.Row) (*product.Variation, int, error) {
	v := &product.Variation{
		RegularPrice: row.Get(colRegularPrice, ""),
		SalePrice:    row.Get(colSalePrice, ""),
		SKU:          row.Get(colSKU, ""),
	}

	parentRaw, ok := row.Lookup(colParent)
	if !ok {
		return nil, 0, fmt.Errorf("variation row has no parent id")
	}
	parentID, err := strconv.Atoi(strings.TrimSpace(parentRaw))
	if err != nil {
		return nil, 0, fmt.Errorf("variation parent id %q: %w", strings.TrimSpace(parentRaw), err)
	}

	if raw, ok := row.Lookup(colStock); ok {
		if qty, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			v.StockQuantity = &qty
		}
	}

	// A variation pins one concrete value per axis, so the values cell is
	// kept whole instead of being split into an options list.
	for i := 1; i <= MaxAttributeSlots; i++ {
		name, okName := row.Lookup(attrNameCol(i))
		value, okValue := row.Lookup(attrValuesCol(i))
		if okName && okValue {
			v.Attributes = append(v.Attributes, product.VariationAttribute{
				Name:   name,
				Option: value,
			})
		}
	}

	if raw, ok := row.Lookup(colImages); ok {
		if images := parseImages(raw); len(images) > 0 {
			v.Image = &images[0]
		}
	}

	return v, parentID, nil
}

// CleanText expands literal backslash-n sequences and collapses whitespace
// runs to single spaces.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = wsRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// parseCategories splits the Категории cell on comma or pipe. IDs are
// synthetic (1000 plus the token index) since this export format carries
// only names, not term IDs.
func parseCategories(s string) []product.Category {
	var categories []product.Category
	for i, name := range listSep.Split(s, -1) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		categories = append(categories, product.Category{ID: 1000 + i, Name: name})
	}
	return categories
}

// parseImages keeps only tokens that look like absolute URLs; the format
// has no per-image name or alt text.
func parseImages(s string) []product.Image {
	var images []product.Image
	for _, url := range strings.Split(s, ",") {
		url = strings.TrimSpace(url)
		if url != "" && strings.HasPrefix(url, "http") {
			images = append(images, product.Image{Src: url})
		}
	}
	return images
}

func parseAttributes(row tabular.Row) []product.Attribute {
	var attributes []product.Attribute
	for i := 1; i <= MaxAttributeSlots; i++ {
		name, okName := row.Lookup(attrNameCol(i))
		values, okValues := row.Lookup(attrValuesCol(i))
		if !okName || !okValues {
			continue
		}

		var options []string
		for _, v := range listSep.Split(values, -1) {
			if v = strings.TrimSpace(v); v != "" {
				options = append(options, v)
			}
		}
		if len(options) == 0 {
			continue
		}

		attributes = append(attributes, product.Attribute{
			ID:      i,
			Name:    strings.TrimSpace(name),
			Options: options,
			Visible: row.Get(attrVisibleCol(i), "1") != "0",
			// The export format does not reliably carry the variation-axis
			// flag on parent rows; it stays false on CSV import.
			Variation: false,
		})
	}
	return attributes
}

func parseMeta(row tabular.Row) []product.Meta {
	var meta []product.Meta
	for _, col := range metaColumns {
		if v, ok := row.Lookup(col); ok {
			meta = append(meta, product.Meta{
				Key:   strings.TrimPrefix(col, metaPrefix),
				Value: v,
			})
		}
	}
	return meta
}
