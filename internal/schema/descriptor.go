package schema

// ElementDescriptor is one element registry entry: the structural shape of
// an element tag under a particular schema version.
//
// Lists are short (rarely more than two dozen entries), so membership is a
// linear scan; no lookup maps are maintained.
type ElementDescriptor struct {
	// Tag is the element tag the descriptor describes.
	Tag string

	// AllowsText reports whether the element may carry text content.
	AllowsText bool

	// Children is the set of permitted child tags, in canonical order.
	Children []string

	// Attributes is the set of permitted attribute names.
	Attributes []string

	// Required names the attributes that must be explicitly set. Always a
	// subset of Attributes.
	Required []string

	// Defaults maps attribute names to the value an absent attribute takes.
	// Defaults are engineered so that a document lacking a newly introduced
	// attribute renders exactly as it did under the prior version.
	Defaults map[string]string

	// Inherited names the attributes whose effective value, when absent,
	// comes from the nearest ancestor that sets them.
	Inherited []string
}

// PermitsAttribute reports whether the attribute name is legal for the tag.
func (d *ElementDescriptor) PermitsAttribute(name string) bool {
	return contains(d.Attributes, name)
}

// IsRequired reports whether the attribute must be explicitly set.
func (d *ElementDescriptor) IsRequired(name string) bool {
	return contains(d.Required, name)
}

// PermitsChild reports whether the child tag is legal for the tag.
func (d *ElementDescriptor) PermitsChild(tag string) bool {
	return contains(d.Children, tag)
}

// IsInherited reports whether an absent attribute resolves through the
// node's ancestors.
func (d *ElementDescriptor) IsInherited(name string) bool {
	return contains(d.Inherited, name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// derive returns a copy of the descriptor with the given edits applied.
// Version constructors use it to restate only what changed relative to the
// predecessor's descriptor.
func (d *ElementDescriptor) derive(edit func(*ElementDescriptor)) *ElementDescriptor {
	nd := &ElementDescriptor{
		Tag:        d.Tag,
		AllowsText: d.AllowsText,
		Children:   append([]string(nil), d.Children...),
		Attributes: append([]string(nil), d.Attributes...),
		Required:   append([]string(nil), d.Required...),
		Defaults:   make(map[string]string, len(d.Defaults)),
		Inherited:  append([]string(nil), d.Inherited...),
	}
	for k, v := range d.Defaults {
		nd.Defaults[k] = v
	}
	edit(nd)
	return nd
}

// without returns the list minus the named entries.
func without(list []string, names ...string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if !contains(names, v) {
			out = append(out, v)
		}
	}
	return out
}
