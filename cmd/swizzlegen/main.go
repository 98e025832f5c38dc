// Command swizzlegen writes the swizzle accessors of the glm vector types.
//
// For every vector arity it writes a declaration file holding the
// SwizzlerN interface and a definition file holding the accessor methods.
//
// Usage:
//
//	swizzlegen --out glm --package glm
//
// Or via go:generate from inside the glm package:
//
//	//go:generate go run ../cmd/swizzlegen --out . --package glm
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oliverbestmann/lanemath/internal/lane"
	"github.com/oliverbestmann/lanemath/internal/swizzle"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Generator writes the accessor files of every vector arity into OutputDir.
type Generator struct {
	OutputDir string
	Package   string
}

// Run writes all artifacts. The files are independent of each other and
// written concurrently.
func (g *Generator) Run(ctx context.Context) error {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)

	for source := 2; source <= swizzle.MaxWidth; source++ {
		group.Go(func() error {
			return g.write(ctx, swizzle.DeclarationFile(source), source, swizzle.Declaration)
		})

		group.Go(func() error {
			return g.write(ctx, swizzle.DefinitionFile(source), source, swizzle.Definition)
		})
	}

	return group.Wait()
}

type emitter func(pkg string, source int) ([]byte, error)

func (g *Generator) write(ctx context.Context, name string, source int, emit emitter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("Generating swizzle accessors", slog.String("file", name), slog.Int("arity", source))

	src, err := emit(g.Package, source)
	if err != nil {
		return fmt.Errorf("generate %s: %w", name, err)
	}

	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	accessors, err := swizzle.Accessors(source)
	if err != nil {
		return err
	}

	slog.Info("Wrote swizzle accessors",
		slog.String("path", path),
		slog.Int("arity", source),
		slog.Int("accessors", 2*len(accessors)),
	)

	return nil
}

func newCommand() *cobra.Command {
	var (
		gen        Generator
		profileDir string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "swizzlegen",
		Short:         "Generate the swizzle accessors of the glm vector types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{AddSource: true, Level: level})
			slog.SetDefault(slog.New(handler))

			if profileDir != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
			}

			slog.Info("Lane target detected", slog.String("target", lane.Target()))

			return gen.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gen.OutputDir, "out", "glm", "directory to write the generated files to")
	flags.StringVar(&gen.Package, "package", "glm", "package name of the generated files")
	flags.StringVar(&profileDir, "profile", "", "write a cpu profile to this directory")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
