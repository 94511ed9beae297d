package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// TreeLoader reads a schema as a directory per schema name, each
// containing one file per descriptor kind. Reading the nine files of a
// single schema (eight descriptor kinds plus its dependency list) is
// pure I/O with no shared mutable state, so
// it happens concurrently via an errgroup -- outside any manager lock,
// since only the caller's later, serialized Add/LoadWithDeps call
// touches the registries (§5).
type TreeLoader struct {
	Root string
}

func NewTreeLoader(root string) *TreeLoader {
	return &TreeLoader{Root: root}
}

func (l *TreeLoader) ListSchemas() ([]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("loader: reading schema root %s: %w", l.Root, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

type treeFile struct {
	name string
	dest *[]string
}

func (l *TreeLoader) LoadSchema(name string) (*RawSchema, error) {
	dir := filepath.Join(l.Root, name)
	rs := &RawSchema{Name: name}

	files := []treeFile{
		{"attributetypes.ldif", &rs.AttributeTypes},
		{"objectclasses.ldif", &rs.ObjectClasses},
		{"matchingrules.ldif", &rs.MatchingRules},
		{"ldapsyntaxes.ldif", &rs.LdapSyntaxes},
		{"matchingruleuse.ldif", &rs.MatchingRuleUses},
		{"nameforms.ldif", &rs.NameForms},
		{"ditcontentrules.ldif", &rs.DitContentRules},
		{"ditstructurerules.ldif", &rs.DitStructureRules},
		{"dependencies.ldif", nil},
	}

	var g errgroup.Group
	results := make([][]string, len(files))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			lines, err := readLdifLines(filepath.Join(dir, f.name))
			if err != nil {
				return err
			}
			results[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, f := range files {
		if f.dest != nil {
			*f.dest = results[i]
		}
	}
	rs.Dependencies = results[len(files)-1]

	logger.Printf("loaded schema %s from %s", name, dir)
	return rs, nil
}

// readLdifLines returns every non-blank, non-comment line of path. A
// missing file is not an error -- not every schema defines every kind.
func readLdifLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return lines, nil
}
