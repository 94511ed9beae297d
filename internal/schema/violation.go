package schema

import (
	"fmt"
	"strings"

	"dirschema/internal/oid"
)

// Code is a violation taxonomy tag per the reference-integrity and
// validation rules.
type Code string

const (
	AlreadyExists        Code = "AlreadyExists"
	NoSuchEntity         Code = "NoSuchEntity"
	DuplicateName        Code = "DuplicateName"
	UnknownSuperior      Code = "UnknownSuperior"
	UnknownSyntax        Code = "UnknownSyntax"
	UnknownMatchingRule  Code = "UnknownMatchingRule"
	UnknownObjectClass   Code = "UnknownObjectClass"
	UnknownAttributeType Code = "UnknownAttributeType"
	StillReferenced      Code = "StillReferenced"
	InheritanceCycle     Code = "InheritanceCycle"
	NoSyntax             Code = "NoSyntax"
	NoMatchingRule       Code = "NoMatchingRule"
	UsageMismatch        Code = "UsageMismatch"
	CollectiveOperational Code = "CollectiveOperational"
	NoUserModUserApp     Code = "NoUserModUserApp"
	CollectiveSingleValued Code = "CollectiveSingleValued"
	KindIncompatibility  Code = "KindIncompatibility"
	MustMayOverlap       Code = "MustMayOverlap"
	MissingNormalizer    Code = "MissingNormalizer"
	MissingComparator    Code = "MissingComparator"
	MissingSyntaxChecker Code = "MissingSyntaxChecker"
	SchemaDependencyMissing Code = "SchemaDependencyMissing"
	SchemaStillDepended  Code = "SchemaStillDepended"
	NoSuperior           Code = "NoSuperior"
)

// Violation is a single, structured schema-consistency failure.
type Violation struct {
	Code        Code
	Subject     string // OID or name of the entity the violation is about
	SubjectKind oid.Kind
	Referenced  string // the OID/name that could not be resolved, if any
	Detail      string
}

func (v *Violation) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %s", v.Code, v.SubjectKind, v.Subject)
	if v.Referenced != "" {
		fmt.Fprintf(&sb, " -> %s", v.Referenced)
	}
	if v.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", v.Detail)
	}
	return sb.String()
}

// Violations is an accumulated, non-short-circuiting set of failures.
// It implements error so a manager method can return it directly, but
// the caller should normally inspect the slice for individual codes.
type Violations []*Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "no violations"
	}
	lines := make([]string, len(vs))
	for i, v := range vs {
		lines[i] = v.Error()
	}
	return strings.Join(lines, "; ")
}

func (vs Violations) Len() int { return len(vs) }

// HasCode reports whether any violation carries code c.
func (vs Violations) HasCode(c Code) bool {
	for _, v := range vs {
		if v.Code == c {
			return true
		}
	}
	return false
}
