package product

// Product types accepted by WooCommerce. A "variation" is only ever a CSV
// row type; in memory it lives inside its parent's Variations list.
const (
	TypeSimple   = "simple"
	TypeVariable = "variable"
	TypeGrouped  = "grouped"
	TypeExternal = "external"
)

const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
	StatusPrivate = "private"
)

const (
	StockInStock     = "instock"
	StockOutOfStock  = "outofstock"
	StockOnBackorder = "onbackorder"
)

type Image struct {
	Src  string `json:"src"`
	Name string `json:"name"`
	Alt  string `json:"alt"`
}

// Category IDs coming from CSV import are synthetic (assigned sequentially
// per row); only IDs from the REST API are real term IDs.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Attribute struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
	Visible bool     `json:"visible"`
	// Variation marks this attribute as an axis distinguishing sibling
	// variations. CSV import leaves it false; only the REST path sets it.
	Variation bool `json:"variation"`
}

// VariationAttribute pins one concrete value per variation axis.
type VariationAttribute struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

// Variation is owned by its parent Product and has no identity of its own
// here; the server assigns an ID on creation.
type Variation struct {
	RegularPrice  string
	SalePrice     string
	SKU           string
	StockQuantity *int
	Attributes    []VariationAttribute
	Image         *Image
}

// Dimensions holds decimal-as-text measurements. An empty string means the
// dimension was absent in the source, not zero.
type Dimensions struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

func (d Dimensions) Empty() bool {
	return d.Length == "" && d.Width == "" && d.Height == ""
}

type Meta struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Product is the canonical in-memory representation shared by the CSV
// interchange engine and the REST client. Prices and weight stay
// decimal-as-text so the original formatting survives a round trip.
type Product struct {
	ID               *int
	Name             string
	Type             string
	SKU              string
	RegularPrice     string
	SalePrice        string
	Description      string
	ShortDescription string
	Status           string
	Featured         bool
	Virtual          bool
	Downloadable     bool
	StockQuantity    *int
	ManageStock      bool
	StockStatus      string
	Weight           string
	Dimensions       Dimensions
	Categories       []Category
	Images           []Image
	Attributes       []Attribute
	// Variations is populated only when Type == TypeVariable.
	Variations   []*Variation
	MetaData     []Meta
	DateCreated  string
	DateModified string

	isNew      bool
	isModified bool
	isDeleted  bool
	original   []byte
}

// New returns a product with the same defaults the rest of the system
// assumes for unset fields.
func New(name string) *Product {
	return &Product{
		Name:        name,
		Type:        TypeSimple,
		Status:      StatusPublish,
		StockStatus: StockInStock,
	}
}

func IntPtr(n int) *int { return &n }
