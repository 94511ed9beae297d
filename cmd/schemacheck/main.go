// Command schemacheck loads a schema tree (or a packaged jar of one)
// and reports whatever reference-integrity and validation violations
// the SchemaManager finds, without ever starting a directory server --
// the wire protocol and entry handling this repo's teacher implemented
// are out of scope here.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"dirschema/internal/bootstrap"
	"dirschema/internal/loader"
	"dirschema/internal/manager"
	"dirschema/internal/schema"
)

var logger = log.New(os.Stderr, "schemacheck: ", log.Lshortfile)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:   "schemacheck",
		Short: "load and validate a directory schema",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a schema manifest (YAML)")

	root.AddCommand(loadCmd(), checkCmd(), dumpSubschemaCmd(), depsCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func openManager() (*manager.Manager, loader.Loader, *Config, error) {
	m := manager.New()

	if cfgPath == "" {
		cfg := &Config{Manifest: schema.Manifest{Schemas: []schema.Set{{Name: "system", Enabled: true}}}}
		return m, bootstrap.System(), cfg, nil
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	var ld loader.Loader
	switch cfg.LoaderKind {
	case "tree":
		ld = loader.NewTreeLoader(cfg.SchemaRoot)
	case "jar":
		f, err := os.Open(cfg.SchemaRoot)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("schemacheck: opening jar %s: %w", cfg.SchemaRoot, err)
		}
		fi, err := f.Stat()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("schemacheck: opening jar %s: %w", cfg.SchemaRoot, err)
		}
		jl, err := loader.NewJarLoader(f, fi.Size())
		if err != nil {
			return nil, nil, nil, err
		}
		ld = jl
	default:
		return nil, nil, nil, fmt.Errorf("schemacheck: unsupported loaderKind %q", cfg.LoaderKind)
	}

	return m, ld, cfg, nil
}

func loadAll(m *manager.Manager, ld loader.Loader, cfg *Config) error {
	names := cfg.SchemaNames()
	if len(names) == 0 {
		var err error
		names, err = ld.ListSchemas()
		if err != nil {
			return err
		}
	}
	for _, name := range names {
		if err := m.LoadWithDeps(ld, name); err != nil {
			return err
		}
	}
	return nil
}

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "load the configured schemas and report success or failure",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ld, cfg, err := openManager()
			if err != nil {
				return err
			}
			if err := loadAll(m, ld, cfg); err != nil {
				return err
			}
			fmt.Println("schema loaded cleanly")
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "load the configured schemas and print any violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ld, cfg, err := openManager()
			if err != nil {
				return err
			}
			if err := loadAll(m, ld, cfg); err != nil {
				for _, v := range m.GetErrors() {
					fmt.Println(v.Error())
				}
				return err
			}
			fmt.Println("no violations")
			return nil
		},
	}
}

func dumpSubschemaCmd() *cobra.Command {
	var attr string
	cmd := &cobra.Command{
		Use:   "dump-subschema",
		Short: "print one attribute type's effective syntax and equality rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ld, cfg, err := openManager()
			if err != nil {
				return err
			}
			if err := loadAll(m, ld, cfg); err != nil {
				return err
			}

			if attr == "" {
				return fmt.Errorf("schemacheck: --attr is required")
			}

			at, ok := m.LookupAttributeType(attr)
			if !ok {
				return fmt.Errorf("schemacheck: no such attribute type %q", attr)
			}

			syn, length, hasSyntax := m.EffectiveSyntax(at)
			eq, hasEq := m.EffectiveEquality(at)
			fmt.Printf("%s (%v)\n", at.OID, at.Names)
			if hasSyntax {
				fmt.Printf("  syntax:   %s{%d}\n", syn, length)
			}
			if hasEq {
				fmt.Printf("  equality: %s\n", eq)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&attr, "attr", "", "attribute type name or OID to inspect")
	return cmd
}

// depsCmd reports a schema's place in the manifest's dependency graph
// without loading anything -- purely a read of the YAML, for diagnosing
// a manifest before spending time on LDIF parsing.
func depsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <schema>",
		Short: "print a schema's transitive dependencies and dependents from the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				return fmt.Errorf("schemacheck: deps requires --config")
			}
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			name := args[0]
			g := cfg.Graph()
			if _, ok := g.Get(name); !ok {
				return fmt.Errorf("schemacheck: manifest declares no schema %q", name)
			}
			fmt.Printf("transitive dependencies: %v\n", g.TransitiveDependencies(name))
			fmt.Printf("dependents: %v\n", g.Dependents(name))
			return nil
		},
	}
}
