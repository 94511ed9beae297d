package schema

import "dirschema/internal/oid"

// AttributeType is the linked, in-registry form of an
// AttributeTypeDescription. References to other entities are kept as
// OID strings, resolved on demand against the registries that own them
// -- never as owning pointers, so a disabled/deleted entity cannot be
// kept alive by a dangling reference.
type AttributeType struct {
	Header

	SuperiorOid  string // "" if none
	EqualityOid  string
	OrderingOid  string
	SubstringOid string
	SyntaxOid    string
	SyntaxLength int // 0 if unspecified

	SingleValue         bool
	Collective          bool
	NoUserModification  bool
	Usage               Usage
}

func (a *AttributeType) Kind() oid.Kind { return oid.AttributeType }

// AttributeTypeBuilder mirrors the teacher's fluent builder idiom for
// incrementally assembling a descriptor before it is handed to the
// entity factory for linking.
type AttributeTypeBuilder struct {
	a AttributeType
}

func NewAttributeTypeBuilder(numericOID string) *AttributeTypeBuilder {
	b := &AttributeTypeBuilder{}
	b.a.OID = numericOID
	return b
}

func (b *AttributeTypeBuilder) Names(names ...string) *AttributeTypeBuilder {
	b.a.Names = names
	return b
}

func (b *AttributeTypeBuilder) Desc(d string) *AttributeTypeBuilder {
	b.a.Desc = d
	return b
}

func (b *AttributeTypeBuilder) Obsolete(v bool) *AttributeTypeBuilder {
	b.a.Obsolete = v
	return b
}

func (b *AttributeTypeBuilder) Superior(oid string) *AttributeTypeBuilder {
	b.a.SuperiorOid = oid
	return b
}

func (b *AttributeTypeBuilder) Equality(oid string) *AttributeTypeBuilder {
	b.a.EqualityOid = oid
	return b
}

func (b *AttributeTypeBuilder) Ordering(oid string) *AttributeTypeBuilder {
	b.a.OrderingOid = oid
	return b
}

func (b *AttributeTypeBuilder) Substring(oid string) *AttributeTypeBuilder {
	b.a.SubstringOid = oid
	return b
}

func (b *AttributeTypeBuilder) Syntax(oid string, length int) *AttributeTypeBuilder {
	b.a.SyntaxOid = oid
	b.a.SyntaxLength = length
	return b
}

func (b *AttributeTypeBuilder) SingleValue(v bool) *AttributeTypeBuilder {
	b.a.SingleValue = v
	return b
}

func (b *AttributeTypeBuilder) Collective(v bool) *AttributeTypeBuilder {
	b.a.Collective = v
	return b
}

func (b *AttributeTypeBuilder) NoUserModification(v bool) *AttributeTypeBuilder {
	b.a.NoUserModification = v
	return b
}

func (b *AttributeTypeBuilder) Usage(u Usage) *AttributeTypeBuilder {
	b.a.Usage = u
	return b
}

func (b *AttributeTypeBuilder) SchemaName(name string) *AttributeTypeBuilder {
	b.a.SchemaName = name
	return b
}

func (b *AttributeTypeBuilder) Build() *AttributeType {
	a := b.a
	return &a
}
