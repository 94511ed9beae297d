package oid

import (
	"testing"

	fuzz "github.com/google/gofuzz"
)

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	if err := r.Register("2.5.4.3", AttributeType, "cn", "commonName"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	o, k, ok := r.Resolve("CN")
	if !ok || o != "2.5.4.3" || k != AttributeType {
		t.Fatalf("Resolve(CN) = %q, %v, %v", o, k, ok)
	}

	o, _, ok = r.Resolve("  CommonName ")
	if !ok || o != "2.5.4.3" {
		t.Fatalf("Resolve with folded whitespace failed: %q, %v", o, ok)
	}

	if o, _, ok := r.Resolve("2.5.4.3"); !ok || o != "2.5.4.3" {
		t.Fatalf("Resolve by bare OID failed")
	}
}

func TestRegisterDuplicateOID(t *testing.T) {
	r := New()
	if err := r.Register("2.5.4.3", AttributeType, "cn"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("2.5.4.3", AttributeType, "other"); err == nil {
		t.Fatal("expected error registering a duplicate OID")
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	r := New()
	if err := r.Register("2.5.4.3", AttributeType, "cn"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("2.5.4.41", AttributeType, "CN"); err == nil {
		t.Fatal("expected error registering a name already bound to another OID")
	}
}

func TestUnregister(t *testing.T) {
	r := New()
	_ = r.Register("2.5.4.3", AttributeType, "cn")
	r.Unregister("2.5.4.3")

	if r.HasOID("2.5.4.3") {
		t.Fatal("OID still registered after Unregister")
	}
	if _, _, ok := r.Resolve("cn"); ok {
		t.Fatal("name still resolves after Unregister")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r := New()
	_ = r.Register("2.5.4.3", AttributeType, "cn")

	c := r.Clone()
	c.Unregister("2.5.4.3")

	if !r.HasOID("2.5.4.3") {
		t.Fatal("mutating the clone affected the original registry")
	}
	if c.HasOID("2.5.4.3") {
		t.Fatal("clone retained the unregistered OID")
	}
}

// TestNormaliseIsIdempotent fuzzes random name strings and checks that
// folding an already-normalised name is a no-op, the property Resolve
// relies on to treat two spellings of a name as the same key.
func TestNormaliseIsIdempotent(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 12)
	var s string
	for i := 0; i < 500; i++ {
		f.Fuzz(&s)
		once := Normalise(s)
		twice := Normalise(once)
		if once != twice {
			t.Fatalf("Normalise(%q) = %q, but Normalise of that = %q", s, once, twice)
		}
	}
}

func TestNamesOfPreservesDeclarationOrder(t *testing.T) {
	r := New()
	_ = r.Register("2.5.4.41", AttributeType, "name", "alias")

	names := r.NamesOf("2.5.4.41")
	if len(names) != 2 || names[0] != "name" || names[1] != "alias" {
		t.Fatalf("NamesOf = %v, want [name alias]", names)
	}
}
