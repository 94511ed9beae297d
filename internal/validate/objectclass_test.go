package validate

import (
	"testing"

	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

func regOC(t *testing.T, set *registry.Set, c *schema.ObjectClass) {
	t.Helper()
	if err := registry.Register(set, set.ObjectClasses, c); err != nil {
		t.Fatalf("Register(%s): %v", c.OID, err)
	}
}

func TestObjectClassMustMayOverlap(t *testing.T) {
	set := registry.New()
	c := schema.NewObjectClassBuilder("1.2.0").Names("overlap").
		Must("2.5.4.3").May("2.5.4.3").SchemaName("system").Build()
	regOC(t, set, c)

	vs := ObjectClass(set, c)
	if !vs.HasCode(schema.MustMayOverlap) {
		t.Fatalf("expected MustMayOverlap, got %v", vs)
	}
}

func TestObjectClassAtMostOneStructuralSuperior(t *testing.T) {
	set := registry.New()
	s1 := schema.NewObjectClassBuilder("1.2.1").Names("s1").
		ObjectClassKind(schema.Structural).SchemaName("system").Build()
	s2 := schema.NewObjectClassBuilder("1.2.2").Names("s2").
		ObjectClassKind(schema.Structural).SchemaName("system").Build()
	regOC(t, set, s1)
	regOC(t, set, s2)

	child := schema.NewObjectClassBuilder("1.2.3").Names("child").
		ObjectClassKind(schema.Structural).
		Superiors("1.2.1", "1.2.2").SchemaName("system").Build()
	regOC(t, set, child)

	vs := ObjectClass(set, child)
	if !vs.HasCode(schema.KindIncompatibility) {
		t.Fatalf("expected KindIncompatibility for two structural superiors, got %v", vs)
	}
}

func TestObjectClassKindCompatibilityTable(t *testing.T) {
	set := registry.New()
	abstractSup := schema.NewObjectClassBuilder("2.5.6.0").Names("top").
		ObjectClassKind(schema.Abstract).SchemaName("system").Build()
	structuralSup := schema.NewObjectClassBuilder("1.2.4").Names("structSup").
		ObjectClassKind(schema.Structural).SchemaName("system").Build()
	regOC(t, set, abstractSup)
	regOC(t, set, structuralSup)

	// AUXILIARY deriving from a STRUCTURAL superior is incompatible: only
	// its own kind or ABSTRACT are allowed parents.
	aux := schema.NewObjectClassBuilder("1.2.5").Names("aux").
		ObjectClassKind(schema.Auxiliary).
		Superiors("1.2.4").SchemaName("system").Build()
	regOC(t, set, aux)

	vs := ObjectClass(set, aux)
	if !vs.HasCode(schema.KindIncompatibility) {
		t.Fatalf("expected KindIncompatibility for AUXILIARY deriving from STRUCTURAL, got %v", vs)
	}

	// AUXILIARY deriving from ABSTRACT is fine.
	auxOk := schema.NewObjectClassBuilder("1.2.6").Names("auxOk").
		ObjectClassKind(schema.Auxiliary).
		Superiors("2.5.6.0").SchemaName("system").Build()
	regOC(t, set, auxOk)

	if vs := ObjectClass(set, auxOk); vs.HasCode(schema.KindIncompatibility) {
		t.Fatalf("AUXILIARY deriving from ABSTRACT should be compatible, got %v", vs)
	}
}

func TestObjectClassRequiresASuperior(t *testing.T) {
	set := registry.New()
	orphan := schema.NewObjectClassBuilder("1.2.9").Names("orphan").SchemaName("system").Build()
	regOC(t, set, orphan)

	vs := ObjectClass(set, orphan)
	if !vs.HasCode(schema.NoSuperior) {
		t.Fatalf("expected NoSuperior for a non-root class with no superiors, got %v", vs)
	}
}

func TestObjectClassRootNeedsNoSuperior(t *testing.T) {
	set := registry.New()
	top := schema.NewObjectClassBuilder(rootObjectClassOID).Names("top").
		ObjectClassKind(schema.Abstract).SchemaName("system").Build()
	regOC(t, set, top)

	if vs := ObjectClass(set, top); vs.HasCode(schema.NoSuperior) {
		t.Fatalf("root class should not require a superior, got %v", vs)
	}
}

func TestObjectClassCycleShortCircuits(t *testing.T) {
	set := registry.New()
	a := schema.NewObjectClassBuilder("1.2.7").Names("a").Superiors("1.2.8").SchemaName("system").Build()
	b := schema.NewObjectClassBuilder("1.2.8").Names("b").Superiors("1.2.7").SchemaName("system").Build()
	regOC(t, set, a)
	regOC(t, set, b)

	vs := ObjectClass(set, a)
	if len(vs) != 1 || !vs.HasCode(schema.InheritanceCycle) {
		t.Fatalf("expected exactly one InheritanceCycle violation, got %v", vs)
	}
}
