package schema

import "dirschema/internal/oid"

// LdapSyntax is the linked form of an LdapSyntaxDescription. The actual
// ASN.1/LDAP-value check is delegated to a SyntaxChecker resolved by
// OID, the same extension pattern as MatchingRule's normalizer/comparator.
type LdapSyntax struct {
	Header

	SyntaxCheckerOid string
	HumanReadable    bool
}

func (s *LdapSyntax) Kind() oid.Kind { return oid.LdapSyntax }

type LdapSyntaxBuilder struct {
	s LdapSyntax
}

func NewLdapSyntaxBuilder(numericOID string) *LdapSyntaxBuilder {
	b := &LdapSyntaxBuilder{}
	b.s.OID = numericOID
	return b
}

func (b *LdapSyntaxBuilder) Desc(d string) *LdapSyntaxBuilder {
	b.s.Desc = d
	return b
}

func (b *LdapSyntaxBuilder) SyntaxChecker(oid string) *LdapSyntaxBuilder {
	b.s.SyntaxCheckerOid = oid
	return b
}

func (b *LdapSyntaxBuilder) HumanReadable(v bool) *LdapSyntaxBuilder {
	b.s.HumanReadable = v
	return b
}

func (b *LdapSyntaxBuilder) SchemaName(name string) *LdapSyntaxBuilder {
	b.s.SchemaName = name
	return b
}

func (b *LdapSyntaxBuilder) Build() *LdapSyntax {
	s := b.s
	return &s
}
