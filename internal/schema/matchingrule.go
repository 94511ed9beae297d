package schema

import "dirschema/internal/oid"

// MatchingRule is the linked form of a MatchingRuleDescription. Its
// equality/ordering/substring semantics are delegated to a Normalizer
// and Comparator resolved by OID rather than embedded here, mirroring
// how the descriptor format itself only ever names a SYNTAX OID --
// the normalizer/comparator binding is an extension (§3 invariant 6).
type MatchingRule struct {
	Header

	SyntaxOid     string
	NormalizerOid string
	ComparatorOid string
}

func (m *MatchingRule) Kind() oid.Kind { return oid.MatchingRule }

type MatchingRuleBuilder struct {
	m MatchingRule
}

func NewMatchingRuleBuilder(numericOID string) *MatchingRuleBuilder {
	b := &MatchingRuleBuilder{}
	b.m.OID = numericOID
	return b
}

func (b *MatchingRuleBuilder) Names(names ...string) *MatchingRuleBuilder {
	b.m.Names = names
	return b
}

func (b *MatchingRuleBuilder) Desc(d string) *MatchingRuleBuilder {
	b.m.Desc = d
	return b
}

func (b *MatchingRuleBuilder) Obsolete(v bool) *MatchingRuleBuilder {
	b.m.Obsolete = v
	return b
}

func (b *MatchingRuleBuilder) Syntax(oid string) *MatchingRuleBuilder {
	b.m.SyntaxOid = oid
	return b
}

func (b *MatchingRuleBuilder) Normalizer(oid string) *MatchingRuleBuilder {
	b.m.NormalizerOid = oid
	return b
}

func (b *MatchingRuleBuilder) Comparator(oid string) *MatchingRuleBuilder {
	b.m.ComparatorOid = oid
	return b
}

func (b *MatchingRuleBuilder) SchemaName(name string) *MatchingRuleBuilder {
	b.m.SchemaName = name
	return b
}

func (b *MatchingRuleBuilder) Build() *MatchingRule {
	m := b.m
	return &m
}

// MatchingRuleUse is the linked form of a MatchingRuleUseDescription:
// the set of attribute types a matching rule is restricted to apply to.
// Its OID is the matching rule's own OID.
type MatchingRuleUse struct {
	Header

	AppliesOids []string
}

func (u *MatchingRuleUse) Kind() oid.Kind { return oid.MatchingRuleUse }
