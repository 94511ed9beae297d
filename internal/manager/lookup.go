package manager

import (
	"fmt"

	"dirschema/internal/oid"
	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

// LookupOID resolves nameOrOID the way the typed LookupX calls do, but
// without handing back the entity itself. A hit belonging to a disabled
// schema is reported as a miss, per §3 invariant 8.
func (m *Manager) LookupOID(nameOrOID string) (string, oid.Kind, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || !m.entityVisibleLocked(o, k) {
		return "", 0, false
	}
	return o, k, true
}

func (m *Manager) LookupAttributeType(nameOrOID string) (*schema.AttributeType, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || k != oid.AttributeType {
		return nil, false
	}
	at, ok := m.live.AttributeTypes.Get(o)
	if !ok || !m.schemaEnabledLocked(at.Schema()) {
		return nil, false
	}
	return at, true
}

func (m *Manager) LookupObjectClass(nameOrOID string) (*schema.ObjectClass, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || k != oid.ObjectClass {
		return nil, false
	}
	oc, ok := m.live.ObjectClasses.Get(o)
	if !ok || !m.schemaEnabledLocked(oc.Schema()) {
		return nil, false
	}
	return oc, true
}

func (m *Manager) LookupMatchingRule(nameOrOID string) (*schema.MatchingRule, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || k != oid.MatchingRule {
		return nil, false
	}
	mr, ok := m.live.MatchingRules.Get(o)
	if !ok || !m.schemaEnabledLocked(mr.Schema()) {
		return nil, false
	}
	return mr, true
}

func (m *Manager) LookupLdapSyntax(nameOrOID string) (*schema.LdapSyntax, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || k != oid.LdapSyntax {
		return nil, false
	}
	ls, ok := m.live.Syntaxes.Get(o)
	if !ok || !m.schemaEnabledLocked(ls.Schema()) {
		return nil, false
	}
	return ls, true
}

// schemaEnabledLocked reports whether name is visible to lookups: a
// schema the manager has never tracked (its own first commit, before
// loadWithDepsLocked records it) is enabled by default, same as one
// explicitly enabled. Callers must hold m.mu.
func (m *Manager) schemaEnabledLocked(name string) bool {
	s, ok := m.schemas[name]
	return !ok || s.Enabled
}

// visibleSetLocked returns the subset of set whose entities belong to an
// enabled schema: the view resolve.Check and the validators run a
// mutation against, so a disabled schema's entities can neither trip nor
// satisfy a reference-integrity rule for anything still live. Callers
// must hold m.mu.
func (m *Manager) visibleSetLocked(set *registry.Set) *registry.Set {
	vis := registry.New()
	for _, e := range set.AttributeTypes.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.AttributeTypes, e)
		}
	}
	for _, e := range set.ObjectClasses.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.ObjectClasses, e)
		}
	}
	for _, e := range set.MatchingRules.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.MatchingRules, e)
		}
	}
	for _, e := range set.MatchingRuleUses.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.MatchingRuleUses, e)
		}
	}
	for _, e := range set.Syntaxes.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.Syntaxes, e)
		}
	}
	for _, e := range set.DitContentRules.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.DitContentRules, e)
		}
	}
	for _, e := range set.DitStructureRules.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.DitStructureRules, e)
		}
	}
	for _, e := range set.NameForms.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.NameForms, e)
		}
	}
	for _, e := range set.Normalizers.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.Normalizers, e)
		}
	}
	for _, e := range set.Comparators.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.Comparators, e)
		}
	}
	for _, e := range set.SyntaxCheckers.All() {
		if m.schemaEnabledLocked(e.Schema()) {
			_ = registry.Register(vis, vis.SyntaxCheckers, e)
		}
	}
	return vis
}

// entityVisibleLocked reports whether the entity kind k registered as o
// belongs to an enabled schema. Callers must hold m.mu.
func (m *Manager) entityVisibleLocked(o string, k oid.Kind) bool {
	switch k {
	case oid.AttributeType:
		e, ok := m.live.AttributeTypes.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.ObjectClass:
		e, ok := m.live.ObjectClasses.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.MatchingRule:
		e, ok := m.live.MatchingRules.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.MatchingRuleUse:
		e, ok := m.live.MatchingRuleUses.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.LdapSyntax:
		e, ok := m.live.Syntaxes.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.DitContentRule:
		e, ok := m.live.DitContentRules.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.DitStructureRule:
		e, ok := m.live.DitStructureRules.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.NameForm:
		e, ok := m.live.NameForms.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.Normalizer:
		e, ok := m.live.Normalizers.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.Comparator:
		e, ok := m.live.Comparators.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	case oid.SyntaxChecker:
		e, ok := m.live.SyntaxCheckers.Get(o)
		return ok && m.schemaEnabledLocked(e.Schema())
	default:
		return false
	}
}

// EffectiveSyntax returns at's own or inherited SYNTAX.
func (m *Manager) EffectiveSyntax(at *schema.AttributeType) (string, int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return registry.EffectiveSyntax(m.live, at)
}

// EffectiveEquality returns at's own or inherited EQUALITY rule.
func (m *Manager) EffectiveEquality(at *schema.AttributeType) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return registry.EffectiveEquality(m.live, at)
}

// Enable turns on a previously disabled schema, after checking every
// schema it depends on is itself enabled.
func (m *Manager) Enable(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.schemas[name]
	if !ok {
		return fmt.Errorf("manager: %s: %s", schema.NoSuchEntity, name)
	}
	for _, dep := range s.Dependencies {
		if d, ok := m.schemas[dep]; !ok || !d.Enabled {
			return &schema.Violation{
				Code: schema.SchemaDependencyMissing, Subject: name, Referenced: dep,
				Detail: "dependency is not enabled",
			}
		}
	}
	s.Enabled = true
	return nil
}

// Disable turns off schema name, after checking nothing still enabled
// depends on it.
func (m *Manager) Disable(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.schemas[name]
	if !ok {
		return fmt.Errorf("manager: %s: %s", schema.NoSuchEntity, name)
	}
	for n, other := range m.schemas {
		if !other.Enabled || n == name {
			continue
		}
		for _, dep := range other.Dependencies {
			if dep == name {
				return &schema.Violation{
					Code: schema.SchemaStillDepended, Subject: name, Referenced: n,
					Detail: "still depended on",
				}
			}
		}
	}
	s.Enabled = false
	return nil
}

// IsEnabled reports whether schema name is currently enabled.
func (m *Manager) IsEnabled(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schemas[name]
	return ok && s.Enabled
}
