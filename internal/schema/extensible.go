package schema

import "dirschema/internal/oid"

// Normalizer, Comparator and SyntaxChecker are the pluggable behaviours
// that MatchingRule and LdapSyntax bind to by OID. FQCN follows the
// original's fully-qualified-class-name extension field (M-FQCN) --
// carried here as a plain identifying string naming the Go
// implementation registered for that OID, resolved by the caller's own
// lookup table rather than by reflection.
type Normalizer struct {
	Header
	FQCN string
}

func (n *Normalizer) Kind() oid.Kind { return oid.Normalizer }

type Comparator struct {
	Header
	FQCN string
}

func (c *Comparator) Kind() oid.Kind { return oid.Comparator }

type SyntaxChecker struct {
	Header
	FQCN string
}

func (s *SyntaxChecker) Kind() oid.Kind { return oid.SyntaxChecker }

func NewNormalizer(numericOID, fqcn string) *Normalizer {
	return &Normalizer{Header: Header{OID: numericOID}, FQCN: fqcn}
}

func NewComparator(numericOID, fqcn string) *Comparator {
	return &Comparator{Header: Header{OID: numericOID}, FQCN: fqcn}
}

func NewSyntaxChecker(numericOID, fqcn string) *SyntaxChecker {
	return &SyntaxChecker{Header: Header{OID: numericOID}, FQCN: fqcn}
}
