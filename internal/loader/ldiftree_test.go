package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTreeLoaderListSchemas(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "system"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "inetorgperson"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "notadir.txt"), "x")

	l := NewTreeLoader(root)
	names, err := l.ListSchemas()
	if err != nil {
		t.Fatalf("ListSchemas: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("ListSchemas = %v, want 2 directory entries", names)
	}
}

func TestTreeLoaderLoadSchema(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "system")
	writeFile(t, filepath.Join(dir, "attributetypes.ldif"), "# a comment\n\n( 2.5.4.3 NAME 'cn' )\n")
	writeFile(t, filepath.Join(dir, "dependencies.ldif"), "core\n")

	l := NewTreeLoader(root)
	rs, err := l.LoadSchema("system")
	if err != nil {
		t.Fatalf("LoadSchema: %v", err)
	}
	if len(rs.AttributeTypes) != 1 || rs.AttributeTypes[0] != "( 2.5.4.3 NAME 'cn' )" {
		t.Fatalf("AttributeTypes = %v", rs.AttributeTypes)
	}
	if len(rs.Dependencies) != 1 || rs.Dependencies[0] != "core" {
		t.Fatalf("Dependencies = %v", rs.Dependencies)
	}
	if len(rs.ObjectClasses) != 0 {
		t.Fatalf("ObjectClasses should be empty for a schema that defines none, got %v", rs.ObjectClasses)
	}
}

func TestTreeLoaderMissingFilesLoadEmpty(t *testing.T) {
	l := NewTreeLoader(t.TempDir())
	if _, err := l.LoadSchema("doesnotexist"); err != nil {
		t.Fatalf("a schema directory with no files at all should load empty, not error: %v", err)
	}
}
