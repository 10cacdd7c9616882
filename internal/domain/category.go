package domain

// CategoryKind selects one of the two parallel category taxonomies of the catalog.
type CategoryKind string

func (k CategoryKind) String() string {
	return string(k)
}

const (
	CategoryKindRepresentative CategoryKind = "representative" // what a medium shows
	CategoryKindConceptual     CategoryKind = "conceptual"     // what a medium means
)

var CategoryKinds = []CategoryKind{
	CategoryKindRepresentative,
	CategoryKindConceptual,
}

// RemoteMethod returns the listing method bound to the kind, or "" for an unknown kind.
func (k CategoryKind) RemoteMethod() string {
	switch k {
	case CategoryKindRepresentative:
		return "getCategories1"
	case CategoryKindConceptual:
		return "getCategories2"
	default:
		return ""
	}
}

// SearchParam returns the search request key filtering by a category of this kind.
func (k CategoryKind) SearchParam() string {
	switch k {
	case CategoryKindRepresentative:
		return "cat1_id"
	case CategoryKindConceptual:
		return "cat2_id"
	default:
		return ""
	}
}

// Valid reports whether k is one of the known kinds.
func (k CategoryKind) Valid() bool {
	return k.RemoteMethod() != ""
}

// Category is a node of one category tree. Root categories have a nil Parent.
type Category struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"` // Localized to the client language
	Key    string       `json:"key"`  // Opaque key the catalog lists the category under
	Kind   CategoryKind `json:"kind"`
	Parent *Category    `json:"-"`
}

// ParentRef names the parent whose children a category listing should return.
// The zero value refers to the root level.
type ParentRef struct {
	id       int
	category *Category
	set      bool
}

// RootRef returns the reference to the root level of a tree.
func RootRef() ParentRef {
	return ParentRef{}
}

// IDRef refers to a parent by its raw catalog id.
func IDRef(id int) ParentRef {
	return ParentRef{id: id, set: true}
}

// CategoryRef refers to a parent by an already fetched category.
func CategoryRef(c *Category) ParentRef {
	if c == nil {
		return RootRef()
	}
	return ParentRef{id: c.ID, category: c, set: true}
}

// IsRoot reports whether the reference points at the root level.
func (r ParentRef) IsRoot() bool {
	return !r.set
}

// ID returns the resolved parent id. It is 0 for the root level.
func (r ParentRef) ID() int {
	return r.id
}

// Category returns the referenced category, or nil when the reference is a raw id or root.
func (r ParentRef) Category() *Category {
	return r.category
}
