package schema

import "dirschema/internal/oid"

type ObjectClassKind int

const (
	Abstract ObjectClassKind = iota
	Structural
	Auxiliary
)

func NewObjectClassKind(s string) (ObjectClassKind, bool) {
	switch s {
	case "", "STRUCTURAL":
		return Structural, true
	case "ABSTRACT":
		return Abstract, true
	case "AUXILIARY":
		return Auxiliary, true
	default:
		return 0, false
	}
}

func (k ObjectClassKind) String() string {
	switch k {
	case Abstract:
		return "ABSTRACT"
	case Structural:
		return "STRUCTURAL"
	case Auxiliary:
		return "AUXILIARY"
	default:
		return "unknown"
	}
}

// ObjectClass is the linked form of an ObjectClassDescription. A
// structural class may have at most one structural superior in its
// chain; that invariant is checked by internal/validate, not here.
type ObjectClass struct {
	Header

	SuperiorOids []string
	ClassKind    ObjectClassKind
	MustOids     []string
	MayOids      []string
}

func (o *ObjectClass) Kind() oid.Kind { return oid.ObjectClass }

type ObjectClassBuilder struct {
	o ObjectClass
}

func NewObjectClassBuilder(numericOID string) *ObjectClassBuilder {
	b := &ObjectClassBuilder{}
	b.o.OID = numericOID
	return b
}

func (b *ObjectClassBuilder) Names(names ...string) *ObjectClassBuilder {
	b.o.Names = names
	return b
}

func (b *ObjectClassBuilder) Desc(d string) *ObjectClassBuilder {
	b.o.Desc = d
	return b
}

func (b *ObjectClassBuilder) Obsolete(v bool) *ObjectClassBuilder {
	b.o.Obsolete = v
	return b
}

func (b *ObjectClassBuilder) Superiors(oids ...string) *ObjectClassBuilder {
	b.o.SuperiorOids = oids
	return b
}

func (b *ObjectClassBuilder) ObjectClassKind(k ObjectClassKind) *ObjectClassBuilder {
	b.o.ClassKind = k
	return b
}

func (b *ObjectClassBuilder) Must(oids ...string) *ObjectClassBuilder {
	b.o.MustOids = oids
	return b
}

func (b *ObjectClassBuilder) May(oids ...string) *ObjectClassBuilder {
	b.o.MayOids = oids
	return b
}

func (b *ObjectClassBuilder) SchemaName(name string) *ObjectClassBuilder {
	b.o.SchemaName = name
	return b
}

func (b *ObjectClassBuilder) Build() *ObjectClass {
	o := b.o
	return &o
}
