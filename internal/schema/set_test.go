package schema

import (
	"reflect"
	"sort"
	"testing"
)

func TestDependencyGraphTransitiveDependencies(t *testing.T) {
	g := NewDependencyGraph(&Manifest{Schemas: []Set{
		{Name: "system"},
		{Name: "cosine", Dependencies: []string{"system"}},
		{Name: "inetorgperson", Dependencies: []string{"cosine"}},
	}})

	got := g.TransitiveDependencies("inetorgperson")
	sort.Strings(got)
	want := []string{"cosine", "inetorgperson", "system"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TransitiveDependencies = %v, want %v", got, want)
	}
}

func TestDependencyGraphDependents(t *testing.T) {
	g := NewDependencyGraph(&Manifest{Schemas: []Set{
		{Name: "system"},
		{Name: "cosine", Dependencies: []string{"system"}},
		{Name: "inetorgperson", Dependencies: []string{"cosine"}},
	}})

	got := g.Dependents("system")
	if len(got) != 1 || got[0] != "cosine" {
		t.Fatalf("Dependents(system) = %v, want [cosine]", got)
	}
}

func TestDependencyGraphGet(t *testing.T) {
	g := NewDependencyGraph(&Manifest{Schemas: []Set{{Name: "system", Enabled: true}}})

	s, ok := g.Get("system")
	if !ok || !s.Enabled {
		t.Fatalf("Get(system) = %v, %v", s, ok)
	}

	if _, ok := g.Get("nope"); ok {
		t.Fatal("Get should miss for an undeclared schema")
	}
}
