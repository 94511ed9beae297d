// Package manager implements the SchemaManager (C8): the single public
// surface for loading, adding to, deleting from, and enabling/disabling
// a live schema. Every mutation runs against a private copy-on-write
// clone of the current registry set; only a mutation that produces zero
// reference-integrity and validation violations is swapped in as the
// new live set. A single reader-writer lock serializes every mutation
// (the "single logical writer" in §5) while readers (the lookup calls)
// run concurrently against whatever set was live when they started.
package manager

import (
	"fmt"
	"log"
	"os"
	"sync"

	"dirschema/internal/descriptor"
	"dirschema/internal/factory"
	"dirschema/internal/loader"
	"dirschema/internal/oid"
	"dirschema/internal/registry"
	"dirschema/internal/resolve"
	"dirschema/internal/schema"
	"dirschema/internal/validate"
)

var logger = log.New(os.Stderr, "manager: ", log.Lshortfile)

// Listener is notified when a schema is committed into the live set:
// LoadWithDeps calls SchemaLoaded after each schema's commit. Manager has
// no operation that removes a schema from the live set (Disable only
// hides it), so SchemaUnloaded is never called.
type Listener interface {
	SchemaLoaded(name string)
	SchemaUnloaded(name string)
}

// Manager is the SchemaManager. The zero value is not usable; use New.
type Manager struct {
	mu sync.RWMutex

	live    *registry.Set
	schemas map[string]*schema.Set

	parser    descriptor.Parser
	listeners []Listener

	lastErrors schema.Violations
}

func New() *Manager {
	return &Manager{
		live:    registry.New(),
		schemas: make(map[string]*schema.Set),
		parser:  descriptor.Default(),
	}
}

// AddListener registers l to be notified of future schema loads/unloads.
func (m *Manager) AddListener(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// GetErrors returns the violations from the most recently rejected
// mutation, or nil if the last mutation committed cleanly.
func (m *Manager) GetErrors() schema.Violations {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErrors
}

// commit validates shadow as a whole and, if it passes, installs it as
// the new live set. On failure the live set is untouched and the
// violations are both returned and stashed for GetErrors.
func (m *Manager) commit(shadow *registry.Set) error {
	visible := m.visibleSetLocked(shadow)

	vs := resolve.Check(visible)

	for _, a := range visible.AttributeTypes.All() {
		vs = append(vs, validate.AttributeType(visible, a)...)
	}
	for _, c := range visible.ObjectClasses.All() {
		vs = append(vs, validate.ObjectClass(visible, c)...)
	}

	if len(vs) > 0 {
		m.lastErrors = vs
		logger.Printf("commit rejected: %d violation(s)", len(vs))
		return vs
	}

	m.lastErrors = nil
	m.live = shadow
	logger.Printf("commit accepted")
	return nil
}

// LoadWithDeps loads schemaName and every schema it transitively
// depends on from src, in dependency order, each as its own commit.
// A schema already present in the live set is skipped.
func (m *Manager) LoadWithDeps(src loader.Loader, schemaName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.loadWithDepsLocked(src, schemaName, map[string]bool{})
}

func (m *Manager) loadWithDepsLocked(src loader.Loader, name string, visiting map[string]bool) error {
	if _, ok := m.schemas[name]; ok {
		return nil
	}
	if visiting[name] {
		return fmt.Errorf("manager: schema dependency cycle at %s", name)
	}
	visiting[name] = true

	raw, err := src.LoadSchema(name)
	if err != nil {
		return fmt.Errorf("manager: loading schema %s: %w", name, err)
	}

	for _, dep := range raw.Dependencies {
		if err := m.loadWithDepsLocked(src, dep, visiting); err != nil {
			return err
		}
	}

	shadow := m.live.Clone()
	if err := m.applyRawSchema(shadow, raw); err != nil {
		return fmt.Errorf("manager: building schema %s: %w", name, err)
	}

	if err := m.commit(shadow); err != nil {
		return fmt.Errorf("manager: schema %s rejected: %w", name, err)
	}

	m.schemas[name] = &schema.Set{Name: name, Dependencies: raw.Dependencies, Enabled: true}
	for _, l := range m.listeners {
		l.SchemaLoaded(name)
		logger.Printf("listener notified: schema %s loaded", name)
	}
	return nil
}

func (m *Manager) applyRawSchema(shadow *registry.Set, raw *loader.RawSchema) error {
	for _, s := range raw.LdapSyntaxes {
		d, err := m.parser.LdapSyntax(s)
		if err != nil {
			return err
		}
		ls := factory.BuildLdapSyntax(shadow, raw.Name, d, "", true)
		if err := registry.Register(shadow, shadow.Syntaxes, ls); err != nil {
			return err
		}
	}
	for _, s := range raw.MatchingRules {
		d, err := m.parser.MatchingRule(s)
		if err != nil {
			return err
		}
		mr, err := factory.BuildMatchingRule(shadow, raw.Name, d, "", "")
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.MatchingRules, mr); err != nil {
			return err
		}
	}
	for _, s := range raw.AttributeTypes {
		d, err := m.parser.AttributeType(s)
		if err != nil {
			return err
		}
		at, err := factory.BuildAttributeType(shadow, raw.Name, d)
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.AttributeTypes, at); err != nil {
			return err
		}
	}
	for _, s := range raw.ObjectClasses {
		d, err := m.parser.ObjectClass(s)
		if err != nil {
			return err
		}
		oc, err := factory.BuildObjectClass(shadow, raw.Name, d)
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.ObjectClasses, oc); err != nil {
			return err
		}
	}
	for _, s := range raw.LdapSyntaxes {
		d, err := m.parser.LdapSyntax(s)
		if err != nil {
			return err
		}
		ls := factory.BuildLdapSyntax(shadow, raw.Name, d, "", true)
		if err := registry.Register(shadow, shadow.Syntaxes, ls); err != nil {
			return err
		}
	}
	for _, s := range raw.MatchingRules {
		d, err := m.parser.MatchingRule(s)
		if err != nil {
			return err
		}
		mr, err := factory.BuildMatchingRule(shadow, raw.Name, d, "", "")
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.MatchingRules, mr); err != nil {
			return err
		}
	}
	for _, s := range raw.MatchingRuleUses {
		d, err := m.parser.MatchingRuleUse(s)
		if err != nil {
			return err
		}
		u, err := factory.BuildMatchingRuleUse(shadow, raw.Name, d)
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.MatchingRuleUses, u); err != nil {
			return err
		}
	}
	for _, s := range raw.NameForms {
		d, err := m.parser.NameForm(s)
		if err != nil {
			return err
		}
		f, err := factory.BuildNameForm(shadow, raw.Name, d)
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.NameForms, f); err != nil {
			return err
		}
	}
	for _, s := range raw.DitContentRules {
		d, err := m.parser.DitContentRule(s)
		if err != nil {
			return err
		}
		r, err := factory.BuildDitContentRule(shadow, raw.Name, d)
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.DitContentRules, r); err != nil {
			return err
		}
	}
	for _, s := range raw.DitStructureRules {
		d, err := m.parser.DitStructureRule(s)
		if err != nil {
			return err
		}
		r, err := factory.BuildDitStructureRule(shadow, raw.Name, d)
		if err != nil {
			return err
		}
		if err := registry.Register(shadow, shadow.DitStructureRules, r); err != nil {
			return err
		}
	}
	return nil
}

// AddAttributeType parses and commits a single AttributeTypeDescription
// into schemaName.
func (m *Manager) AddAttributeType(schemaName, descriptorStr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.parser.AttributeType(descriptorStr)
	if err != nil {
		return fmt.Errorf("manager: %w", err)
	}

	shadow := m.live.Clone()
	at, err := factory.BuildAttributeType(shadow, schemaName, d)
	if err != nil {
		return err
	}
	if err := registry.Register(shadow, shadow.AttributeTypes, at); err != nil {
		if vs, ok := err.(schema.Violations); ok {
			m.lastErrors = vs
		}
		return err
	}
	return m.commit(shadow)
}

// AddObjectClass parses and commits a single ObjectClassDescription
// into schemaName.
func (m *Manager) AddObjectClass(schemaName, descriptorStr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.parser.ObjectClass(descriptorStr)
	if err != nil {
		return fmt.Errorf("manager: %w", err)
	}

	shadow := m.live.Clone()
	oc, err := factory.BuildObjectClass(shadow, schemaName, d)
	if err != nil {
		return err
	}
	if err := registry.Register(shadow, shadow.ObjectClasses, oc); err != nil {
		if vs, ok := err.(schema.Violations); ok {
			m.lastErrors = vs
		}
		return err
	}
	return m.commit(shadow)
}

// DeleteAttributeType removes the attribute type named by nameOrOID, if
// nothing else in the live set still references it.
func (m *Manager) DeleteAttributeType(nameOrOID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || k != oid.AttributeType {
		return fmt.Errorf("manager: %s: %s", schema.NoSuchEntity, nameOrOID)
	}

	if refs := referencingAttributeType(m.live, o); len(refs) > 0 {
		return &schema.Violation{
			Code: schema.StillReferenced, Subject: o, SubjectKind: oid.AttributeType,
			Detail: fmt.Sprintf("referenced by %v", refs),
		}
	}

	shadow := m.live.Clone()
	registry.Unregister(shadow, shadow.AttributeTypes, o)
	return m.commit(shadow)
}

// DeleteObjectClass removes the object class named by nameOrOID, if
// nothing else in the live set still references it.
func (m *Manager) DeleteObjectClass(nameOrOID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, k, ok := m.live.OIDs.Resolve(nameOrOID)
	if !ok || k != oid.ObjectClass {
		return fmt.Errorf("manager: %s: %s", schema.NoSuchEntity, nameOrOID)
	}

	for _, c := range m.live.ObjectClasses.All() {
		for _, sup := range c.SuperiorOids {
			if sup == o {
				return &schema.Violation{
					Code: schema.StillReferenced, Subject: o, SubjectKind: oid.ObjectClass,
					Referenced: c.OID, Detail: "still a superior",
				}
			}
		}
	}

	shadow := m.live.Clone()
	registry.Unregister(shadow, shadow.ObjectClasses, o)
	return m.commit(shadow)
}

func referencingAttributeType(set *registry.Set, target string) []string {
	var refs []string
	for _, a := range set.AttributeTypes.All() {
		if a.SuperiorOid == target {
			refs = append(refs, a.OID)
		}
	}
	for _, c := range set.ObjectClasses.All() {
		for _, m := range c.MustOids {
			if m == target {
				refs = append(refs, c.OID)
			}
		}
		for _, m := range c.MayOids {
			if m == target {
				refs = append(refs, c.OID)
			}
		}
	}
	return refs
}
