package domain

// ProductInfo represents the structured record extracted from a food product label.
// String fields hold trimmed extracted text; an empty string means the field was not
// found, and such fields are omitted from JSON output.
type ProductInfo struct {
	ProductName  string `json:"product_name,omitempty"`
	ProductType  string `json:"product_type,omitempty"`
	Ingredients  string `json:"ingredients,omitempty"`
	Content      string `json:"content,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
	Storage      string `json:"storage,omitempty"`
	Seller       string `json:"seller,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Processor    string `json:"processor,omitempty"`
	Importer     string `json:"importer,omitempty"`

	Nutrition   *OrderedMap `json:"nutrition"`
	Allergen    string      `json:"allergen,omitempty"`
	ExtraFields *OrderedMap `json:"extra_fields"`
}

// NewProductInfo returns an empty record with initialized nutrition and
// extra-field maps.
func NewProductInfo() *ProductInfo {
	return &ProductInfo{
		Nutrition:   NewOrderedMap(),
		ExtraFields: NewOrderedMap(),
	}
}

// FieldAccessor pairs a canonical field key with getter/setter functions so the
// parser can walk the ten fixed fields in declaration order without reflection.
type FieldAccessor struct {
	Key string
	Get func(*ProductInfo) string
	Set func(*ProductInfo, string)
}

// FieldAccessors lists the ten product fields in canonical order.
var FieldAccessors = []FieldAccessor{
	{"product_name", func(p *ProductInfo) string { return p.ProductName }, func(p *ProductInfo, v string) { p.ProductName = v }},
	{"product_type", func(p *ProductInfo) string { return p.ProductType }, func(p *ProductInfo, v string) { p.ProductType = v }},
	{"ingredients", func(p *ProductInfo) string { return p.Ingredients }, func(p *ProductInfo, v string) { p.Ingredients = v }},
	{"content", func(p *ProductInfo) string { return p.Content }, func(p *ProductInfo, v string) { p.Content = v }},
	{"expiry", func(p *ProductInfo) string { return p.Expiry }, func(p *ProductInfo, v string) { p.Expiry = v }},
	{"storage", func(p *ProductInfo) string { return p.Storage }, func(p *ProductInfo, v string) { p.Storage = v }},
	{"seller", func(p *ProductInfo) string { return p.Seller }, func(p *ProductInfo, v string) { p.Seller = v }},
	{"manufacturer", func(p *ProductInfo) string { return p.Manufacturer }, func(p *ProductInfo, v string) { p.Manufacturer = v }},
	{"processor", func(p *ProductInfo) string { return p.Processor }, func(p *ProductInfo, v string) { p.Processor = v }},
	{"importer", func(p *ProductInfo) string { return p.Importer }, func(p *ProductInfo, v string) { p.Importer = v }},
}
