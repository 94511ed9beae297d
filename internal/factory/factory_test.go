package factory

import (
	"testing"

	"dirschema/internal/descriptor"
	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

func TestBuildAttributeTypeResolvesNameReference(t *testing.T) {
	set := registry.New()
	name := schema.NewAttributeTypeBuilder("2.5.4.41").Names("name").SchemaName("system").Build()
	if err := registry.Register(set, set.AttributeTypes, name); err != nil {
		t.Fatal(err)
	}

	d := &descriptor.AttributeType{OID: "2.5.4.3", Names: []string{"cn"}, Superior: "name"}
	cn, err := BuildAttributeType(set, "system", d)
	if err != nil {
		t.Fatalf("BuildAttributeType: %v", err)
	}
	if cn.SuperiorOid != "2.5.4.41" {
		t.Fatalf("SuperiorOid = %q, want the resolved canonical OID", cn.SuperiorOid)
	}
}

func TestBuildAttributeTypePassesNumericOidSuperiorThrough(t *testing.T) {
	set := registry.New()
	d := &descriptor.AttributeType{OID: "1.1.2", Names: []string{"badSup"}, Superior: "9.9.9.9"}

	at, err := BuildAttributeType(set, "system", d)
	if err != nil {
		t.Fatalf("BuildAttributeType should not eagerly fail on an unregistered numeric OID: %v", err)
	}
	if at.SuperiorOid != "9.9.9.9" {
		t.Fatalf("SuperiorOid = %q, want the numeric OID passed through verbatim", at.SuperiorOid)
	}
}

func TestBuildAttributeTypeUnresolvableNameIsDependencyError(t *testing.T) {
	set := registry.New()
	d := &descriptor.AttributeType{OID: "1.1.3", Names: []string{"x"}, Superior: "noSuchName"}

	_, err := BuildAttributeType(set, "system", d)
	if err == nil {
		t.Fatal("expected an error for an unresolvable bare name reference")
	}
	de, ok := err.(*DependencyError)
	if !ok {
		t.Fatalf("expected *DependencyError, got %T", err)
	}
	if de.Reference != "noSuchName" {
		t.Fatalf("Reference = %q", de.Reference)
	}
}

func TestBuildObjectClassResolvesMustMay(t *testing.T) {
	set := registry.New()
	cn := schema.NewAttributeTypeBuilder("2.5.4.3").Names("cn").SchemaName("system").Build()
	if err := registry.Register(set, set.AttributeTypes, cn); err != nil {
		t.Fatal(err)
	}

	d := &descriptor.ObjectClass{OID: "1.2.0", Names: []string{"test"}, Must: []string{"cn"}}
	oc, err := BuildObjectClass(set, "system", d)
	if err != nil {
		t.Fatalf("BuildObjectClass: %v", err)
	}
	if len(oc.MustOids) != 1 || oc.MustOids[0] != "2.5.4.3" {
		t.Fatalf("MustOids = %v", oc.MustOids)
	}
}
