package commerce

import "encoding/json"

// ProductType is the forward-compatible product type enumeration.
//
// The backend sends one of the known wire keys ("simple", "grouped",
// "external", "variable") but is free to introduce new ones at any time,
// typically through extensions. Unknown keys are preserved verbatim as
// custom values rather than rejected, so decoding and re-encoding any
// wire value reproduces it exactly.
type ProductType struct {
	slug  string
	known bool
}

// Known product types. ProductTypeAffiliate travels as "external" on the
// wire; the rest use their slug as the wire key.
var (
	ProductTypeSimple    = ProductType{slug: "simple", known: true}
	ProductTypeGrouped   = ProductType{slug: "grouped", known: true}
	ProductTypeAffiliate = ProductType{slug: "external", known: true}
	ProductTypeVariable  = ProductType{slug: "variable", known: true}
)

var knownProductTypes = map[string]ProductType{
	"simple":   ProductTypeSimple,
	"grouped":  ProductTypeGrouped,
	"external": ProductTypeAffiliate,
	"variable": ProductTypeVariable,
}

// ParseProductType maps a wire key to its product type. Keys outside the
// known set produce a custom value carrying the key verbatim.
func ParseProductType(raw string) ProductType {
	if t, ok := knownProductTypes[raw]; ok {
		return t
	}
	return ProductType{slug: raw}
}

// WireValue returns the canonical wire key for known types and the original
// string for custom ones.
func (t ProductType) WireValue() string {
	return t.slug
}

// String returns the wire key
func (t ProductType) String() string {
	return t.slug
}

// IsCustom returns true if the type is not one of the known variants
func (t ProductType) IsCustom() bool {
	return !t.known
}

// DisplayName returns a human-readable name for the product type
func (t ProductType) DisplayName() string {
	switch t {
	case ProductTypeSimple:
		return "Simple"
	case ProductTypeGrouped:
		return "Grouped"
	case ProductTypeAffiliate:
		return "Affiliate"
	case ProductTypeVariable:
		return "Variable"
	default:
		return t.slug
	}
}

// UnmarshalJSON decodes a wire key into a product type, never failing on
// unknown keys.
func (t *ProductType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ParseProductType(raw)
	return nil
}

// MarshalJSON encodes the product type back to its wire key
func (t ProductType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.slug)
}
