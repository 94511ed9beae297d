package validate

import (
	"dirschema/internal/oid"
	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

const kindOC = oid.ObjectClass

// rootObjectClassOID is "top" -- the one object class §4.9 allows to
// declare zero superiors.
const rootObjectClassOID = "2.5.6.0"

// ObjectClass runs every §4.9 rule against c. As with AttributeType,
// referenced-OID existence is resolve.Check's job; this assumes
// references that exist are being looked at by kind and content.
func ObjectClass(set *registry.Set, c *schema.ObjectClass) schema.Violations {
	var vs schema.Violations

	if registry.ObjectClassCycle(set, c) {
		vs = append(vs, &schema.Violation{
			Code: schema.InheritanceCycle, Subject: c.OID, SubjectKind: kindOC,
			Detail: "superior graph does not terminate",
		})
		return vs
	}

	if len(c.SuperiorOids) == 0 && c.OID != rootObjectClassOID {
		vs = append(vs, &schema.Violation{
			Code: schema.NoSuperior, Subject: c.OID, SubjectKind: kindOC,
			Detail: "every object class but the root requires at least one superior",
		})
	}

	if c.ClassKind == schema.Structural {
		structuralSups := 0
		for _, supOid := range c.SuperiorOids {
			if sup, ok := set.ObjectClasses.Get(supOid); ok && sup.ClassKind == schema.Structural {
				structuralSups++
			}
		}
		if structuralSups > 1 {
			vs = append(vs, &schema.Violation{
				Code: schema.KindIncompatibility, Subject: c.OID, SubjectKind: kindOC,
				Detail: "a STRUCTURAL class may have at most one STRUCTURAL superior",
			})
		}
	}

	for _, supOid := range c.SuperiorOids {
		sup, ok := set.ObjectClasses.Get(supOid)
		if !ok {
			continue
		}
		if !kindCompatible(c.ClassKind, sup.ClassKind) {
			vs = append(vs, &schema.Violation{
				Code: schema.KindIncompatibility, Subject: c.OID, SubjectKind: kindOC,
				Referenced: supOid,
				Detail:     c.ClassKind.String() + " cannot derive from " + sup.ClassKind.String(),
			})
		}
	}

	must := map[string]bool{}
	for _, m := range c.MustOids {
		must[m] = true
	}
	for _, m := range c.MayOids {
		if must[m] {
			vs = append(vs, &schema.Violation{
				Code: schema.MustMayOverlap, Subject: c.OID, SubjectKind: kindOC,
				Referenced: m,
				Detail:     "attribute listed in both MUST and MAY",
			})
		}
	}

	return vs
}

// kindCompatible reports whether child may derive from parent per
// §4.9's kind-compatibility table: ABSTRACT may only derive from
// ABSTRACT; STRUCTURAL and AUXILIARY may derive from their own kind or
// from ABSTRACT.
func kindCompatible(child, parent schema.ObjectClassKind) bool {
	if parent == schema.Abstract {
		return true
	}
	return child == parent
}
