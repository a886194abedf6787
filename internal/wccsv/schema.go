package wccsv

import "fmt"

// Column names of the native WooCommerce CSV export with Russian
// localization. The header set and its order are a compatibility contract
// with WooCommerce's importer: every export emits the complete list, even
// when a file carries no variable products.

const (
	colID               = "ID"
	colType             = "Тип"
	colSKU              = "Артикул"
	colGTIN             = "GTIN, UPC, EAN или ISBN"
	colName             = "Имя"
	colPublished        = "Опубликован"
	colFeatured         = "Рекомендуемый?"
	colVisibility       = "Видимость в каталоге"
	colShortDescription = "Краткое описание"
	colDescription      = "Описание"
	colSaleStart        = "Дата начала действия скидки"
	colSaleEnd          = "Дата окончания действия скидки"
	colTaxStatus        = "Статус налога"
	colTaxClass         = "Налоговый класс"
	colStockStatus      = "Наличие"
	colStock            = "Запасы"
	colLowStock         = "Величина малых запасов"
	colBackorders       = "Возможен ли предзаказ?"
	colSoldIndividually = "Продано индивидуально?"
	colWeight           = "Вес (г)"
	colLength           = "Длина (мм)"
	colWidth            = "Ширина (мм)"
	colHeight           = "Высота (мм)"
	colReviewsAllowed   = "Разрешить отзывы от клиентов?"
	colPurchaseNote     = "Примечание к покупке"
	colSalePrice        = "Акционная цена"
	colRegularPrice     = "Базовая цена"
	colCategories       = "Категории"
	colTags             = "Метки"
	colShippingClass    = "Класс доставки"
	colImages           = "Изображения"
	colDownloadLimit    = "Лимит скачивания"
	colDownloadExpiry   = "Дней срока скачивания"
	colParent           = "Родительский"
	colGrouped          = "Сгруппированные товары"
	colUpsells          = "Апсэлы"
	colCrossSells       = "Кросселы"
	colExternalURL      = "Внешний URL"
	colButtonText       = "Текст кнопки"
	colPosition         = "Позиция"
	colBrands           = "Бренды"
	colBrand            = "Бренд"
)

// rowTypeVariation marks a CSV row holding one variation of a variable
// product; it never becomes a top-level Product.
const rowTypeVariation = "variation"

// MaxAttributeSlots is the number of repeating attribute column groups the
// format carries. Attributes beyond the cap are silently dropped on export;
// this is a documented contract of the format, not a defect.
const MaxAttributeSlots = 21

func attrNameCol(i int) string    { return fmt.Sprintf("Название атрибута %d", i) }
func attrValuesCol(i int) string  { return fmt.Sprintf("Значения атрибутов %d", i) }
func attrVisibleCol(i int) string { return fmt.Sprintf("Видимость атрибута %d", i) }
func attrGlobalCol(i int) string  { return fmt.Sprintf("Глобальный атрибут %d", i) }

const metaPrefix = "Мета: "

// metaColumns is the fixed allowlist of meta-field columns (Yoast SEO and
// Yandex-market custom fields). Meta keys outside this list are dropped by
// design on both read and write.
var metaColumns = []string{
	metaPrefix + "_yoast_wpseo_title",
	metaPrefix + "_yoast_wpseo_metadesc",
	metaPrefix + "_yfym_cargo_types",
	metaPrefix + "_yfym_individual_vat",
	metaPrefix + "_yfym_condition",
	metaPrefix + "_yfym_quality",
	metaPrefix + "_yoast_wpseo_primary_pwb-brand",
	metaPrefix + "_yoast_wpseo_primary_product_brand",
	metaPrefix + "_yoast_wpseo_primary_product_cat",
	metaPrefix + "_yoast_wpseo_primary_yfym_collection",
	metaPrefix + "_yoast_wpseo_focuskw",
	metaPrefix + "_yoast_wpseo_linkdex",
	metaPrefix + "_yoast_wpseo_content_score",
	metaPrefix + "_yoast_wpseo_estimated-reading-time-minutes",
	metaPrefix + "_yoast_wpseo_bctitle",
	metaPrefix + "_yfym_barcode",
}

var baseColumns = []string{
	colID, colType, colSKU, colGTIN, colName,
	colPublished, colFeatured, colVisibility,
	colShortDescription, colDescription,
	colSaleStart, colSaleEnd,
	colTaxStatus, colTaxClass, colStockStatus, colStock,
	colLowStock, colBackorders,
	colSoldIndividually, colWeight, colLength,
	colWidth, colHeight, colReviewsAllowed,
	colPurchaseNote, colSalePrice, colRegularPrice,
	colCategories, colTags, colShippingClass, colImages,
	colDownloadLimit, colDownloadExpiry, colParent,
	colGrouped, colUpsells, colCrossSells,
	colExternalURL, colButtonText, colPosition, colBrands, colBrand,
}

// Headers returns the complete fixed header list in emission order.
func Headers() []string {
	headers := make([]string, 0, len(baseColumns)+4*MaxAttributeSlots+len(metaColumns))
	headers = append(headers, baseColumns...)
	for i := 1; i <= MaxAttributeSlots; i++ {
		headers = append(headers,
			attrNameCol(i), attrValuesCol(i), attrVisibleCol(i), attrGlobalCol(i))
	}
	headers = append(headers, metaColumns...)
	return headers
}

// IndicatorColumns are the headers whose presence identifies a file as a
// native WooCommerce export.
func IndicatorColumns() []string {
	return []string{colID, colType, colSKU, colName, colRegularPrice}
}
