package schema

import "dirschema/internal/oid"

// NameForm is the linked form of a NameFormDescription: the set of
// naming attributes permitted for entries of a given structural class.
type NameForm struct {
	Header

	ObjectClassOid string
	MustOids       []string
	MayOids        []string
}

func (f *NameForm) Kind() oid.Kind { return oid.NameForm }

type NameFormBuilder struct {
	f NameForm
}

func NewNameFormBuilder(numericOID string) *NameFormBuilder {
	b := &NameFormBuilder{}
	b.f.OID = numericOID
	return b
}

func (b *NameFormBuilder) Names(names ...string) *NameFormBuilder {
	b.f.Names = names
	return b
}

func (b *NameFormBuilder) ObjectClass(oid string) *NameFormBuilder {
	b.f.ObjectClassOid = oid
	return b
}

func (b *NameFormBuilder) Must(oids ...string) *NameFormBuilder {
	b.f.MustOids = oids
	return b
}

func (b *NameFormBuilder) May(oids ...string) *NameFormBuilder {
	b.f.MayOids = oids
	return b
}

func (b *NameFormBuilder) SchemaName(name string) *NameFormBuilder {
	b.f.SchemaName = name
	return b
}

func (b *NameFormBuilder) Build() *NameForm {
	f := b.f
	return &f
}
