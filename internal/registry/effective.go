package registry

import "dirschema/internal/schema"

// EffectiveSyntax walks a's superior chain (capped against cycles) and
// returns the first SYNTAX OID found, starting at a itself -- the
// inherited-syntax rule attribute types fall back to per §4.8.
func EffectiveSyntax(set *Set, a *schema.AttributeType) (string, int, bool) {
	seen := map[string]bool{}
	for a != nil && !seen[a.OID] {
		seen[a.OID] = true
		if a.SyntaxOid != "" {
			return a.SyntaxOid, a.SyntaxLength, true
		}
		a = supOf(set, a)
	}
	return "", 0, false
}

func EffectiveEquality(set *Set, a *schema.AttributeType) (string, bool) {
	return walkRule(set, a, func(a *schema.AttributeType) string { return a.EqualityOid })
}

func EffectiveOrdering(set *Set, a *schema.AttributeType) (string, bool) {
	return walkRule(set, a, func(a *schema.AttributeType) string { return a.OrderingOid })
}

func EffectiveSubstring(set *Set, a *schema.AttributeType) (string, bool) {
	return walkRule(set, a, func(a *schema.AttributeType) string { return a.SubstringOid })
}

func walkRule(set *Set, a *schema.AttributeType, pick func(*schema.AttributeType) string) (string, bool) {
	seen := map[string]bool{}
	for a != nil && !seen[a.OID] {
		seen[a.OID] = true
		if r := pick(a); r != "" {
			return r, true
		}
		a = supOf(set, a)
	}
	return "", false
}

func supOf(set *Set, a *schema.AttributeType) *schema.AttributeType {
	if a.SuperiorOid == "" {
		return nil
	}
	sup, ok := set.AttributeTypes.Get(a.SuperiorOid)
	if !ok {
		return nil
	}
	return sup
}

// AttributeTypeCycle reports whether a's superior chain loops back on
// itself rather than terminating.
func AttributeTypeCycle(set *Set, a *schema.AttributeType) bool {
	seen := map[string]bool{a.OID: true}
	for cur := supOf(set, a); cur != nil; cur = supOf(set, cur) {
		if seen[cur.OID] {
			return true
		}
		seen[cur.OID] = true
	}
	return false
}

// ObjectClassCycle reports whether c's superior graph (possibly multiple
// superiors) contains a cycle, via grey/black DFS marking.
func ObjectClassCycle(set *Set, c *schema.ObjectClass) bool {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := map[string]int{}
	var visit func(oid string) bool
	visit = func(objOid string) bool {
		switch color[objOid] {
		case grey:
			return true
		case black:
			return false
		}
		color[objOid] = grey
		if oc, ok := set.ObjectClasses.Get(objOid); ok {
			for _, sup := range oc.SuperiorOids {
				if visit(sup) {
					return true
				}
			}
		}
		color[objOid] = black
		return false
	}
	return visit(c.OID)
}
