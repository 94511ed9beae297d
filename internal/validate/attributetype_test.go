package validate

import (
	"testing"

	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

func reg(t *testing.T, set *registry.Set, a *schema.AttributeType) {
	t.Helper()
	if err := registry.Register(set, set.AttributeTypes, a); err != nil {
		t.Fatalf("Register(%s): %v", a.OID, err)
	}
}

func TestAttributeTypeNoSyntaxNoMatchingRule(t *testing.T) {
	set := registry.New()
	a := schema.NewAttributeTypeBuilder("1.1.0").Names("noSyntax").SchemaName("system").Build()
	reg(t, set, a)

	vs := AttributeType(set, a)
	if !vs.HasCode(schema.NoSyntax) || !vs.HasCode(schema.NoMatchingRule) {
		t.Fatalf("expected NoSyntax and NoMatchingRule, got %v", vs)
	}
}

func TestAttributeTypeCollectiveMustBeUserApplications(t *testing.T) {
	set := registry.New()
	a := schema.NewAttributeTypeBuilder("1.1.1").Names("collOp").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).
		Equality("2.5.13.2").
		Collective(true).
		Usage(schema.DirectoryOperation).
		SchemaName("system").Build()
	reg(t, set, a)

	vs := AttributeType(set, a)
	if !vs.HasCode(schema.CollectiveOperational) {
		t.Fatalf("expected CollectiveOperational, got %v", vs)
	}
}

func TestAttributeTypeCollectiveSingleValueRejected(t *testing.T) {
	set := registry.New()
	a := schema.NewAttributeTypeBuilder("1.1.2").Names("collSv").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).
		Equality("2.5.13.2").
		Collective(true).
		SingleValue(true).
		SchemaName("system").Build()
	reg(t, set, a)

	vs := AttributeType(set, a)
	if !vs.HasCode(schema.CollectiveSingleValued) {
		t.Fatalf("expected CollectiveSingleValued, got %v", vs)
	}
}

func TestAttributeTypeNoUserModificationRequiresOperationalUsage(t *testing.T) {
	set := registry.New()
	a := schema.NewAttributeTypeBuilder("1.1.3").Names("nums").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).
		Equality("2.5.13.2").
		NoUserModification(true).
		SchemaName("system").Build()
	reg(t, set, a)

	vs := AttributeType(set, a)
	if !vs.HasCode(schema.NoUserModUserApp) {
		t.Fatalf("expected NoUserModUserApp, got %v", vs)
	}
}

func TestAttributeTypeUsageMustMatchSuperior(t *testing.T) {
	set := registry.New()
	name := schema.NewAttributeTypeBuilder("2.5.4.41").Names("name").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).
		Equality("2.5.13.2").
		Usage(schema.UserApplications).
		SchemaName("system").Build()
	reg(t, set, name)

	child := schema.NewAttributeTypeBuilder("1.1.4").Names("childOp").
		Superior("2.5.4.41").
		Usage(schema.DirectoryOperation).
		SchemaName("system").Build()
	reg(t, set, child)

	vs := AttributeType(set, child)
	if !vs.HasCode(schema.UsageMismatch) {
		t.Fatalf("expected UsageMismatch, got %v", vs)
	}
}

func TestAttributeTypeCleanPasses(t *testing.T) {
	set := registry.New()
	a := schema.NewAttributeTypeBuilder("1.1.5").Names("clean").
		Syntax("1.3.6.1.4.1.1466.115.121.1.15", 0).
		Equality("2.5.13.2").
		SchemaName("system").Build()
	reg(t, set, a)

	if vs := AttributeType(set, a); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
}

func TestAttributeTypeCycleShortCircuits(t *testing.T) {
	set := registry.New()
	a := schema.NewAttributeTypeBuilder("1.1.6").Names("a").Superior("1.1.7").SchemaName("system").Build()
	b := schema.NewAttributeTypeBuilder("1.1.7").Names("b").Superior("1.1.6").SchemaName("system").Build()
	reg(t, set, a)
	reg(t, set, b)

	vs := AttributeType(set, a)
	if len(vs) != 1 || !vs.HasCode(schema.InheritanceCycle) {
		t.Fatalf("expected exactly one InheritanceCycle violation, got %v", vs)
	}
}
