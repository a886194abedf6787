package product

// Remote payload shapes for the WooCommerce REST API (wc/v3). The CSV and
// REST paths converge on the same Product model; this file is the REST
// side of that contract.

type RemoteDimensions struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

type RemoteCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

type RemoteImage struct {
	Src  string `json:"src"`
	Name string `json:"name,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

type RemoteAttribute struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Options   []string `json:"options"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
}

type RemoteProduct struct {
	ID               *int              `json:"id,omitempty"`
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Status           string            `json:"status"`
	Featured         bool              `json:"featured"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	SKU              string            `json:"sku"`
	Virtual          bool              `json:"virtual"`
	Downloadable     bool              `json:"downloadable"`
	RegularPrice     string            `json:"regular_price,omitempty"`
	SalePrice        string            `json:"sale_price,omitempty"`
	ManageStock      *bool             `json:"manage_stock,omitempty"`
	StockQuantity    *int              `json:"stock_quantity,omitempty"`
	StockStatus      string            `json:"stock_status,omitempty"`
	Weight           string            `json:"weight,omitempty"`
	Dimensions       *RemoteDimensions `json:"dimensions,omitempty"`
	Categories       []RemoteCategory  `json:"categories,omitempty"`
	Images           []RemoteImage     `json:"images,omitempty"`
	Attributes       []RemoteAttribute `json:"attributes,omitempty"`
	MetaData         []Meta            `json:"meta_data,omitempty"`
	DateCreated      string            `json:"date_created,omitempty"`
	DateModified     string            `json:"date_modified,omitempty"`
}

type RemoteVariationAttribute struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

type RemoteVariation struct {
	RegularPrice  string                     `json:"regular_price,omitempty"`
	SalePrice     string                     `json:"sale_price,omitempty"`
	SKU           string                     `json:"sku,omitempty"`
	StockQuantity *int                       `json:"stock_quantity,omitempty"`
	Attributes    []RemoteVariationAttribute `json:"attributes,omitempty"`
	Image         *RemoteImage               `json:"image,omitempty"`
}

// ToRemote builds the API payload. Price and stock fields are sent only for
// simple products; for variable products those live on the variations.
func (p *Product) ToRemote() RemoteProduct {
	r := RemoteProduct{
		ID:               p.ID,
		Name:             p.Name,
		Type:             p.Type,
		Status:           p.Status,
		Featured:         p.Featured,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		SKU:              p.SKU,
		Virtual:          p.Virtual,
		Downloadable:     p.Downloadable,
		Weight:           p.Weight,
	}

	if p.Type == TypeSimple {
		r.RegularPrice = p.RegularPrice
		r.SalePrice = p.SalePrice
		manage := p.ManageStock
		r.ManageStock = &manage
		r.StockStatus = p.StockStatus
		if p.ManageStock && p.StockQuantity != nil {
			r.StockQuantity = p.StockQuantity
		}
	}

	if !p.Dimensions.Empty() {
		r.Dimensions = &RemoteDimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		}
	}

	for _, c := range p.Categories {
		r.Categories = append(r.Categories, RemoteCategory{ID: c.ID})
	}
	for _, img := range p.Images {
		r.Images = append(r.Images, RemoteImage{Src: img.Src, Name: img.Name, Alt: img.Alt})
	}
	for _, a := range p.Attributes {
		r.Attributes = append(r.Attributes, RemoteAttribute{
			ID:        a.ID,
			Name:      a.Name,
			Options:   a.Options,
			Visible:   a.Visible,
			Variation: a.Variation,
		})
	}
	if len(p.MetaData) > 0 {
		r.MetaData = p.MetaData
	}

	return r
}

// ToRemote builds the payload for POST products/{parent}/variations.
func (v *Variation) ToRemote() RemoteVariation {
	r := RemoteVariation{
		RegularPrice:  v.RegularPrice,
		SalePrice:     v.SalePrice,
		SKU:           v.SKU,
		StockQuantity: v.StockQuantity,
	}
	for _, a := range v.Attributes {
		r.Attributes = append(r.Attributes, RemoteVariationAttribute{Name: a.Name, Option: a.Option})
	}
	if v.Image != nil {
		r.Image = &RemoteImage{Src: v.Image.Src, Name: v.Image.Name, Alt: v.Image.Alt}
	}
	return r
}

// FromRemote builds a Product from an API record and snapshots it as the
// last-synced state.
func FromRemote(r RemoteProduct) *Product {
	p := &Product{
		ID:               r.ID,
		Name:             r.Name,
		Type:             r.Type,
		SKU:              r.SKU,
		RegularPrice:     r.RegularPrice,
		SalePrice:        r.SalePrice,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Status:           r.Status,
		Featured:         r.Featured,
		Virtual:          r.Virtual,
		Downloadable:     r.Downloadable,
		StockQuantity:    r.StockQuantity,
		StockStatus:      r.StockStatus,
		Weight:           r.Weight,
		MetaData:         r.MetaData,
		DateCreated:      r.DateCreated,
		DateModified:     r.DateModified,
	}
	if p.Type == "" {
		p.Type = TypeSimple
	}
	if p.Status == "" {
		p.Status = StatusPublish
	}
	if p.StockStatus == "" {
		p.StockStatus = StockInStock
	}
	if r.ManageStock != nil {
		p.ManageStock = *r.ManageStock
	}
	if r.Dimensions != nil {
		p.Dimensions = Dimensions{
			Length: r.Dimensions.Length,
			Width:  r.Dimensions.Width,
			Height: r.Dimensions.Height,
		}
	}
	for _, c := range r.Categories {
		p.Categories = append(p.Categories, Category{ID: c.ID, Name: c.Name})
	}
	for _, img := range r.Images {
		p.Images = append(p.Images, Image{Src: img.Src, Name: img.Name, Alt: img.Alt})
	}
	for _, a := range r.Attributes {
		p.Attributes = append(p.Attributes, Attribute{
			ID:        a.ID,
			Name:      a.Name,
			Options:   a.Options,
			Visible:   a.Visible,
			Variation: a.Variation,
		})
	}

	p.SaveOriginalData()
	return p
}
