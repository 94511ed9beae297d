// Package resolve implements the reference-integrity resolver (C6): a
// whole-registry walk that checks every OID an entity names actually
// exists and is of the kind the reference expects, accumulating every
// failure it finds rather than stopping at the first one -- the same
// shape as the original's Registries.checkRefInteg and its four
// resolve(...) overloads.
package resolve

import (
	"fmt"
	"log"
	"os"

	"dirschema/internal/oid"
	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

var logger = log.New(os.Stderr, "resolve: ", log.Lshortfile)

// Check walks every entity in set and returns every reference-integrity
// violation found. An empty result means the whole graph is internally
// consistent.
func Check(set *registry.Set) schema.Violations {
	var vs schema.Violations

	for _, a := range set.AttributeTypes.All() {
		vs = append(vs, checkAttributeType(set, a)...)
	}
	for _, c := range set.ObjectClasses.All() {
		vs = append(vs, checkObjectClass(set, c)...)
	}
	for _, m := range set.MatchingRules.All() {
		vs = append(vs, checkMatchingRule(set, m)...)
	}
	for _, u := range set.MatchingRuleUses.All() {
		vs = append(vs, checkMatchingRuleUse(set, u)...)
	}
	for _, s := range set.Syntaxes.All() {
		vs = append(vs, checkSyntax(set, s)...)
	}
	for _, f := range set.NameForms.All() {
		vs = append(vs, checkNameForm(set, f)...)
	}
	for _, r := range set.DitContentRules.All() {
		vs = append(vs, checkDitContentRule(set, r)...)
	}
	for _, r := range set.DitStructureRules.All() {
		vs = append(vs, checkDitStructureRule(set, r)...)
	}

	if len(vs) > 0 {
		logger.Printf("checkRefInteg: %d violation(s)", len(vs))
	}
	return vs
}

func want(set *registry.Set, subj string, subjKind oid.Kind, ref string, wantKind oid.Kind, code schema.Code) *schema.Violation {
	if ref == "" {
		return nil
	}
	k, ok := set.OIDs.KindOf(ref)
	if !ok {
		return &schema.Violation{Code: code, Subject: subj, SubjectKind: subjKind, Referenced: ref, Detail: "not found"}
	}
	if k != wantKind {
		return &schema.Violation{Code: code, Subject: subj, SubjectKind: subjKind, Referenced: ref,
			Detail: fmt.Sprintf("expected %s, found %s", wantKind, k)}
	}
	return nil
}

func wantAll(set *registry.Set, subj string, subjKind oid.Kind, refs []string, wantKind oid.Kind, code schema.Code) schema.Violations {
	var vs schema.Violations
	for _, r := range refs {
		if v := want(set, subj, subjKind, r, wantKind, code); v != nil {
			vs = append(vs, v)
		}
	}
	return vs
}

func checkAttributeType(set *registry.Set, a *schema.AttributeType) schema.Violations {
	var vs schema.Violations
	if v := want(set, a.OID, oid.AttributeType, a.SuperiorOid, oid.AttributeType, schema.UnknownSuperior); v != nil {
		vs = append(vs, v)
	}
	if v := want(set, a.OID, oid.AttributeType, a.SyntaxOid, oid.LdapSyntax, schema.UnknownSyntax); v != nil {
		vs = append(vs, v)
	}
	if v := want(set, a.OID, oid.AttributeType, a.EqualityOid, oid.MatchingRule, schema.UnknownMatchingRule); v != nil {
		vs = append(vs, v)
	}
	if v := want(set, a.OID, oid.AttributeType, a.OrderingOid, oid.MatchingRule, schema.UnknownMatchingRule); v != nil {
		vs = append(vs, v)
	}
	if v := want(set, a.OID, oid.AttributeType, a.SubstringOid, oid.MatchingRule, schema.UnknownMatchingRule); v != nil {
		vs = append(vs, v)
	}
	return vs
}

func checkObjectClass(set *registry.Set, c *schema.ObjectClass) schema.Violations {
	var vs schema.Violations
	vs = append(vs, wantAll(set, c.OID, oid.ObjectClass, c.SuperiorOids, oid.ObjectClass, schema.UnknownSuperior)...)
	vs = append(vs, wantAll(set, c.OID, oid.ObjectClass, c.MustOids, oid.AttributeType, schema.UnknownAttributeType)...)
	vs = append(vs, wantAll(set, c.OID, oid.ObjectClass, c.MayOids, oid.AttributeType, schema.UnknownAttributeType)...)
	return vs
}

func checkMatchingRule(set *registry.Set, m *schema.MatchingRule) schema.Violations {
	var vs schema.Violations
	if v := want(set, m.OID, oid.MatchingRule, m.SyntaxOid, oid.LdapSyntax, schema.UnknownSyntax); v != nil {
		vs = append(vs, v)
	}
	if v := want(set, m.OID, oid.MatchingRule, m.NormalizerOid, oid.Normalizer, schema.MissingNormalizer); v != nil {
		vs = append(vs, v)
	}
	if v := want(set, m.OID, oid.MatchingRule, m.ComparatorOid, oid.Comparator, schema.MissingComparator); v != nil {
		vs = append(vs, v)
	}
	return vs
}

func checkMatchingRuleUse(set *registry.Set, u *schema.MatchingRuleUse) schema.Violations {
	var vs schema.Violations
	if v := want(set, u.OID, oid.MatchingRuleUse, u.OID, oid.MatchingRule, schema.UnknownMatchingRule); v != nil {
		vs = append(vs, v)
	}
	vs = append(vs, wantAll(set, u.OID, oid.MatchingRuleUse, u.AppliesOids, oid.AttributeType, schema.UnknownAttributeType)...)
	return vs
}

func checkSyntax(set *registry.Set, s *schema.LdapSyntax) schema.Violations {
	var vs schema.Violations
	if v := want(set, s.OID, oid.LdapSyntax, s.SyntaxCheckerOid, oid.SyntaxChecker, schema.MissingSyntaxChecker); v != nil {
		vs = append(vs, v)
	}
	return vs
}

func checkNameForm(set *registry.Set, f *schema.NameForm) schema.Violations {
	var vs schema.Violations
	if v := want(set, f.OID, oid.NameForm, f.ObjectClassOid, oid.ObjectClass, schema.UnknownObjectClass); v != nil {
		vs = append(vs, v)
	}
	vs = append(vs, wantAll(set, f.OID, oid.NameForm, f.MustOids, oid.AttributeType, schema.UnknownAttributeType)...)
	vs = append(vs, wantAll(set, f.OID, oid.NameForm, f.MayOids, oid.AttributeType, schema.UnknownAttributeType)...)
	return vs
}

func checkDitContentRule(set *registry.Set, r *schema.DitContentRule) schema.Violations {
	var vs schema.Violations
	if v := want(set, r.OID, oid.DitContentRule, r.OID, oid.ObjectClass, schema.UnknownObjectClass); v != nil {
		vs = append(vs, v)
	}
	vs = append(vs, wantAll(set, r.OID, oid.DitContentRule, r.AuxOids, oid.ObjectClass, schema.UnknownObjectClass)...)
	vs = append(vs, wantAll(set, r.OID, oid.DitContentRule, r.MustOids, oid.AttributeType, schema.UnknownAttributeType)...)
	vs = append(vs, wantAll(set, r.OID, oid.DitContentRule, r.MayOids, oid.AttributeType, schema.UnknownAttributeType)...)
	vs = append(vs, wantAll(set, r.OID, oid.DitContentRule, r.NotOids, oid.AttributeType, schema.UnknownAttributeType)...)
	return vs
}

func checkDitStructureRule(set *registry.Set, r *schema.DitStructureRule) schema.Violations {
	var vs schema.Violations
	if v := want(set, r.OID, oid.DitStructureRule, r.NameFormOid, oid.NameForm, schema.NoSuchEntity); v != nil {
		vs = append(vs, v)
	}
	for _, sup := range r.SuperiorRuleIDs {
		supOid := fmt.Sprintf("ruleid:%d", sup)
		if v := want(set, r.OID, oid.DitStructureRule, supOid, oid.DitStructureRule, schema.UnknownSuperior); v != nil {
			vs = append(vs, v)
		}
	}
	return vs
}
