package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/parashar08/ig-json-parser/internal/config"
	"github.com/parashar08/ig-json-parser/internal/diag"
	"github.com/parashar08/ig-json-parser/internal/gen"
	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/model/schema"
	"github.com/parashar08/ig-json-parser/internal/pg"
	"github.com/parashar08/ig-json-parser/internal/scan"
	"github.com/spf13/pflag"
)

// Version is printed by --version.
var Version = "dev"

type Settings struct {
	WorkingDir string
	ConfigFile string

	// Jobs overrides the jobs of the config when positive.
	Jobs   int
	DryRun bool
	Logger *log.Logger
}

type Args struct {
	Settings Settings
	Version  bool
}

// ParseArgs parses the command line arguments. Relative directories are
// resolved against wd.
func ParseArgs(args []string, wd string, output io.Writer) (*Args, error) {
	a := &Args{}

	fs := pflag.NewFlagSet("igjson", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&a.Settings.WorkingDir, "dir", "C", wd, "directory to run in")
	fs.StringVarP(&a.Settings.ConfigFile, "config", "c", config.DefaultFile, "config file, relative to the directory")
	fs.IntVarP(&a.Settings.Jobs, "jobs", "j", 0, "units to generate in parallel, overrides the config")
	fs.BoolVar(&a.Settings.DryRun, "dry-run", false, "generate and report the files without writing them")
	fs.BoolVarP(&a.Version, "version", "v", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	if a.Settings.Jobs < 0 {
		return nil, fmt.Errorf("--jobs can't be negative, got %d", a.Settings.Jobs)
	}

	if !filepath.IsAbs(a.Settings.WorkingDir) {
		a.Settings.WorkingDir = filepath.Join(wd, a.Settings.WorkingDir)
	}

	return a, nil
}

// batch is a set of types generated into the same directory.
type batch struct {
	dir   string
	opts  gen.Options
	types []model.Type
}

func Run(ctx context.Context, s Settings) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	configPath := s.ConfigFile
	if configPath == "" {
		configPath = config.DefaultFile
	}

	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(s.WorkingDir, configPath)
	}

	cfg, err := config.Read(configPath)
	if err != nil {
		return err
	}

	jobs := cfg.Jobs
	if s.Jobs > 0 {
		jobs = s.Jobs
	}

	batches, err := collect(ctx, s, cfg)
	if err != nil {
		return err
	}

	failed := 0
	for _, b := range batches {
		units, err := gen.Generate(ctx, b.types, b.opts, jobs)
		if err != nil {
			return err
		}

		n, err := write(s, logger, b.dir, units)
		if err != nil {
			return err
		}

		failed += n
	}

	if failed > 0 {
		return fmt.Errorf("%d unit(s) could not be generated", failed)
	}

	return nil
}

func collect(ctx context.Context, s Settings, cfg *config.Config) ([]batch, error) {
	batches := make([]batch, 0)

	schemaTypes, err := readSchemas(s, cfg)
	if err != nil {
		return nil, err
	}

	db, err := migrate(s, cfg)
	if err != nil {
		return nil, err
	}

	tableTypes, err := pg.Types(db, cfg.MappingMode())
	if err != nil {
		return nil, fmt.Errorf("failed to read migrated tables: %w", err)
	}

	if types := append(schemaTypes, tableTypes...); len(types) > 0 {
		if err := checkOwners(types); err != nil {
			return nil, err
		}

		batches = append(batches, batch{
			dir: filepath.Join(s.WorkingDir, cfg.Package.Path),
			opts: gen.Options{
				Package:    cfg.PackageName(),
				StreamPath: cfg.Stream,
				EmitTypes:  true,
			},
			types: types,
		})
	}

	pkgs, err := scanPackages(ctx, s, cfg)
	if err != nil {
		return nil, err
	}

	for _, p := range pkgs {
		if len(p.Types) == 0 {
			continue
		}

		batches = append(batches, batch{
			dir: p.Dir,
			opts: gen.Options{
				Package:    p.Name,
				StreamPath: cfg.Stream,
			},
			types: p.Types,
		})
	}

	return batches, nil
}

func readSchemas(s Settings, cfg *config.Config) ([]model.Type, error) {
	files, err := glob(s, schemaPaths(cfg))
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, nil
	}

	types, err := schema.ReadTypes(files)
	if err != nil {
		return nil, fmt.Errorf("failed to read schemas: %w", err)
	}

	return types, nil
}

func migrate(s Settings, cfg *config.Config) (*pg.DB, error) {
	db := pg.NewDB()

	files, err := glob(s, migrationPaths(cfg))
	if err != nil {
		return nil, err
	}

	for _, mf := range files {
		if err := pg.MigrateFile(db, mf); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func scanPackages(ctx context.Context, s Settings, cfg *config.Config) ([]scan.Package, error) {
	if len(cfg.Packages) == 0 {
		return nil, nil
	}

	patterns := make([]string, 0, len(cfg.Packages))
	for _, p := range cfg.Packages {
		patterns = append(patterns, p.Path)
	}

	return scan.Load(ctx, s.WorkingDir, patterns...)
}

func schemaPaths(cfg *config.Config) []string {
	paths := make([]string, 0, len(cfg.Schemas))
	for _, c := range cfg.Schemas {
		paths = append(paths, c.Path)
	}

	return paths
}

func migrationPaths(cfg *config.Config) []string {
	paths := make([]string, 0, len(cfg.Migrations))
	for _, c := range cfg.Migrations {
		paths = append(paths, c.Path)
	}

	return paths
}

// glob resolves the glob patterns relative to the working directory. Files
// matched by more than one pattern are returned once.
func glob(s Settings, patterns []string) ([]string, error) {
	files := make([]string, 0)
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(s.WorkingDir, pattern))
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve files using glob "%s": %w`, pattern, err)
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, nil
}

// checkOwners rejects types that would be generated into the same file.
func checkOwners(types []model.Type) error {
	seen := make(map[string]bool, len(types))

	for _, t := range types {
		if seen[t.Owner] {
			return fmt.Errorf(`type "%s" is defined by more than one schema or table`, t.Owner)
		}

		seen[t.Owner] = true
	}

	return nil
}

// write writes the units into dir and returns how many failed. Failed units
// are logged but never written.
func write(s Settings, logger *log.Logger, dir string, units []gen.Unit) (int, error) {
	if !s.DryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf(`failed to create directory "%s": %w`, dir, err)
		}
	}

	failed := 0
	for _, u := range units {
		diag.Log(logger, u.Diagnostics)

		if u.Failed() {
			failed += 1
			continue
		}

		path := filepath.Join(dir, u.Filename)
		rel, err := filepath.Rel(s.WorkingDir, path)
		if err != nil {
			rel = path
		}

		if s.DryRun {
			logger.Printf("would write %s", rel)
			continue
		}

		if err := os.WriteFile(path, []byte(u.Text), 0o644); err != nil {
			return 0, fmt.Errorf(`failed to write "%s": %w`, path, err)
		}

		logger.Printf("wrote %s", rel)
	}

	return failed, nil
}
