// Package validate implements the §4.8/§4.9 consistency predicates a
// candidate AttributeType or ObjectClass must satisfy before a mutation
// is allowed to commit. Unlike internal/resolve (which only checks that
// referenced OIDs exist and are the right kind), validate checks the
// semantic rules that only make sense once references are known to
// resolve -- usage/collective/user-modifiability interactions, cycle
// freedom, and MUST/MAY overlap.
package validate

import (
	"dirschema/internal/oid"
	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

const kindAT = oid.AttributeType

// AttributeType runs every §4.8 rule against a, given the registries it
// would be added to. It does not re-check that referenced OIDs exist --
// call resolve.Check (or resolve a single entity) first; a rule here
// that depends on a missing reference is simply skipped.
func AttributeType(set *registry.Set, a *schema.AttributeType) schema.Violations {
	var vs schema.Violations

	if registry.AttributeTypeCycle(set, a) {
		vs = append(vs, &schema.Violation{
			Code: schema.InheritanceCycle, Subject: a.OID, SubjectKind: kindAT,
			Detail: "superior chain does not terminate",
		})
		// Every other rule below assumes a terminating chain; stop here.
		return vs
	}

	if _, _, ok := registry.EffectiveSyntax(set, a); !ok {
		vs = append(vs, &schema.Violation{
			Code: schema.NoSyntax, Subject: a.OID, SubjectKind: kindAT,
			Detail: "no syntax, directly or inherited",
		})
	}

	_, hasEq := registry.EffectiveEquality(set, a)
	_, hasOrd := registry.EffectiveOrdering(set, a)
	_, hasSub := registry.EffectiveSubstring(set, a)
	if !hasEq && !hasOrd && !hasSub {
		vs = append(vs, &schema.Violation{
			Code: schema.NoMatchingRule, Subject: a.OID, SubjectKind: kindAT,
			Detail: "no equality, ordering or substring rule, directly or inherited",
		})
	}

	if a.Collective {
		if a.Usage != schema.UserApplications {
			vs = append(vs, &schema.Violation{
				Code: schema.CollectiveOperational, Subject: a.OID, SubjectKind: kindAT,
				Detail: "COLLECTIVE attribute must have USAGE userApplications",
			})
		}
		if a.SingleValue {
			vs = append(vs, &schema.Violation{
				Code: schema.CollectiveSingleValued, Subject: a.OID, SubjectKind: kindAT,
				Detail: "COLLECTIVE attribute cannot be SINGLE-VALUE",
			})
		}
	}

	if a.NoUserModification && a.Usage == schema.UserApplications {
		vs = append(vs, &schema.Violation{
			Code: schema.NoUserModUserApp, Subject: a.OID, SubjectKind: kindAT,
			Detail: "NO-USER-MODIFICATION requires an operational USAGE",
		})
	}

	if a.SuperiorOid != "" {
		if sup, ok := set.AttributeTypes.Get(a.SuperiorOid); ok && sup.Usage != a.Usage {
			vs = append(vs, &schema.Violation{
				Code: schema.UsageMismatch, Subject: a.OID, SubjectKind: kindAT,
				Referenced: a.SuperiorOid,
				Detail:     "USAGE must match superior's USAGE",
			})
		}
	}

	return vs
}
