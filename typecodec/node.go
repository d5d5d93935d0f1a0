// SPDX-License-Identifier: MIT

package typecodec

// Variant tags written to the "variant" field of a Node.
const (
	VariantUniversal   = "universal"
	VariantAbsurd      = "absurd"
	VariantKind        = "kind"
	VariantVoid        = "void"
	VariantFundamental = "fundamental"
	VariantSpecial     = "special"
	VariantMap         = "map"
	VariantProduct     = "product"
	VariantInf         = "inf"
	VariantSup         = "sup"
	VariantCollection  = "collection"
)

// Node is the serialised form of a type. Only the fields of its variant are set.
type Node struct {
	Variant string `yaml:"variant" json:"variant"`

	// Class and Name describe a fundamental; Name is omitted when it equals Class.
	Class string `yaml:"class,omitempty" json:"class,omitempty"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`

	Signifier string `yaml:"signifier,omitempty" json:"signifier,omitempty"`

	Domain   *Node `yaml:"domain,omitempty" json:"domain,omitempty"`
	Codomain *Node `yaml:"codomain,omitempty" json:"codomain,omitempty"`

	Components []*Node `yaml:"components,omitempty" json:"components,omitempty"`

	// Kind is the collection tag: collection, set or list.
	Kind    string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Element *Node  `yaml:"element,omitempty" json:"element,omitempty"`
}
