package registry

import (
	"testing"

	"dirschema/internal/schema"
)

func TestEffectiveSyntaxInheritsFromSuperior(t *testing.T) {
	s := New()
	name := schema.NewAttributeTypeBuilder("2.5.4.41").
		Names("name").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).
		Equality("2.5.13.2").
		SchemaName("system").Build()
	mustRegisterAT(t, s, name)

	cn := schema.NewAttributeTypeBuilder("2.5.4.3").
		Names("cn").
		Superior("2.5.4.41").
		SchemaName("system").Build()
	mustRegisterAT(t, s, cn)

	syn, _, ok := EffectiveSyntax(s, cn)
	if !ok || syn != "1.3.6.1.4.1.1466.115.121.1.15" {
		t.Fatalf("EffectiveSyntax = %q, %v, want the inherited syntax", syn, ok)
	}

	eq, ok := EffectiveEquality(s, cn)
	if !ok || eq != "2.5.13.2" {
		t.Fatalf("EffectiveEquality = %q, %v, want the inherited matching rule", eq, ok)
	}
}

func TestEffectiveSyntaxOwnValueWins(t *testing.T) {
	s := New()
	name := schema.NewAttributeTypeBuilder("2.5.4.41").Names("name").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).SchemaName("system").Build()
	mustRegisterAT(t, s, name)

	cn := schema.NewAttributeTypeBuilder("2.5.4.3").Names("cn").
		Superior("2.5.4.41").Syntax("1.3.6.1.4.1.1466.115.121.1.26", 0).SchemaName("system").Build()
	mustRegisterAT(t, s, cn)

	syn, _, ok := EffectiveSyntax(s, cn)
	if !ok || syn != "1.3.6.1.4.1.1466.115.121.1.26" {
		t.Fatalf("EffectiveSyntax = %q, %v, want cn's own syntax, not the inherited one", syn, ok)
	}
}

func TestEffectiveSyntaxMissingReturnsFalse(t *testing.T) {
	s := New()
	orphan := schema.NewAttributeTypeBuilder("1.1.1").Names("orphan").SchemaName("system").Build()
	mustRegisterAT(t, s, orphan)

	if _, _, ok := EffectiveSyntax(s, orphan); ok {
		t.Fatal("expected EffectiveSyntax to report false for an attribute type with no syntax anywhere in its chain")
	}
}

func TestAttributeTypeCycleDetected(t *testing.T) {
	s := New()
	a := schema.NewAttributeTypeBuilder("1.1.1").Names("a").Superior("1.1.2").SchemaName("system").Build()
	b := schema.NewAttributeTypeBuilder("1.1.2").Names("b").Superior("1.1.1").SchemaName("system").Build()
	mustRegisterAT(t, s, a)
	mustRegisterAT(t, s, b)

	if !AttributeTypeCycle(s, a) {
		t.Fatal("expected a cycle between a and b")
	}
}

func TestAttributeTypeCycleAbsentOnDanglingSuperior(t *testing.T) {
	s := New()
	a := schema.NewAttributeTypeBuilder("1.1.1").Names("a").Superior("9.9.9.9").SchemaName("system").Build()
	mustRegisterAT(t, s, a)

	if AttributeTypeCycle(s, a) {
		t.Fatal("a dangling (unresolved) superior reference is not a cycle")
	}
}

func TestObjectClassCycleDetected(t *testing.T) {
	s := New()
	top := schema.NewObjectClassBuilder("2.5.6.1").Names("top1").Superiors("2.5.6.2").SchemaName("system").Build()
	other := schema.NewObjectClassBuilder("2.5.6.2").Names("top2").Superiors("2.5.6.1").SchemaName("system").Build()
	if err := Register(s, s.ObjectClasses, top); err != nil {
		t.Fatal(err)
	}
	if err := Register(s, s.ObjectClasses, other); err != nil {
		t.Fatal(err)
	}

	if !ObjectClassCycle(s, top) {
		t.Fatal("expected a cycle between top and other")
	}
}
