package loader

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// JarLoader reads a schema archive -- a zip or jar file laid out the
// same way TreeLoader expects a directory: one top-level entry per
// schema name, one member per descriptor kind underneath it. A member
// may additionally be gzip-compressed (".ldif.gz"), read with
// klauspost/compress/gzip rather than the standard library's, the same
// substitution the rest of the retrieval pack makes for this format.
type JarLoader struct {
	r *zip.Reader
}

// NewJarLoader opens a jar/zip archive from ra, whose total size is
// size.
func NewJarLoader(ra io.ReaderAt, size int64) (*JarLoader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("loader: opening jar: %w", err)
	}
	return &JarLoader{r: zr}, nil
}

func (l *JarLoader) ListSchemas() ([]string, error) {
	seen := map[string]bool{}
	for _, f := range l.r.File {
		dir := strings.SplitN(f.Name, "/", 2)[0]
		if dir != "" && dir != f.Name {
			seen[dir] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (l *JarLoader) LoadSchema(name string) (*RawSchema, error) {
	rs := &RawSchema{Name: name}

	kinds := map[string]*[]string{
		"attributetypes":    &rs.AttributeTypes,
		"objectclasses":     &rs.ObjectClasses,
		"matchingrules":     &rs.MatchingRules,
		"ldapsyntaxes":      &rs.LdapSyntaxes,
		"matchingruleuse":   &rs.MatchingRuleUses,
		"nameforms":         &rs.NameForms,
		"ditcontentrules":   &rs.DitContentRules,
		"ditstructurerules": &rs.DitStructureRules,
		"dependencies":      &rs.Dependencies,
	}

	prefix := name + "/"
	for _, f := range l.r.File {
		if !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		base := strings.TrimSuffix(path.Base(f.Name), ".gz")
		base = strings.TrimSuffix(base, ".ldif")
		dest, ok := kinds[base]
		if !ok {
			continue
		}

		lines, err := readJarMember(f)
		if err != nil {
			return nil, err
		}
		*dest = lines
	}

	logger.Printf("loaded schema %s from jar", name)
	return rs, nil
}

func readJarMember(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("loader: opening jar member %s: %w", f.Name, err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if strings.HasSuffix(f.Name, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("loader: gunzip %s: %w", f.Name, err)
		}
		defer gz.Close()
		r = gz
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
