package main

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oliverbestmann/lanemath/internal/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorWritesEveryArity(t *testing.T) {
	dir := t.TempDir()

	gen := Generator{OutputDir: dir, Package: "vecs"}
	require.NoError(t, gen.Run(context.Background()))

	for source := 2; source <= swizzle.MaxWidth; source++ {
		accessors, err := swizzle.Accessors(source)
		require.NoError(t, err)

		fset := token.NewFileSet()

		decl, err := parser.ParseFile(fset, swizzle.DeclarationFile(source), readFile(t, dir, swizzle.DeclarationFile(source)), 0)
		require.NoError(t, err)
		assert.Equal(t, "vecs", decl.Name.Name)

		def, err := parser.ParseFile(fset, swizzle.DefinitionFile(source), readFile(t, dir, swizzle.DefinitionFile(source)), 0)
		require.NoError(t, err)
		assert.Equal(t, "vecs", def.Name.Name)

		var funcs int
		for _, d := range def.Decls {
			if _, ok := d.(*ast.FuncDecl); ok {
				funcs++
			}
		}

		assert.Equal(t, 2*len(accessors), funcs, "source %d", source)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2*(swizzle.MaxWidth-1))
}

func TestCheckedInFilesAreCurrent(t *testing.T) {
	dir := t.TempDir()

	gen := Generator{OutputDir: dir, Package: "glm"}
	require.NoError(t, gen.Run(context.Background()))

	for source := 2; source <= swizzle.MaxWidth; source++ {
		for _, name := range []string{swizzle.DeclarationFile(source), swizzle.DefinitionFile(source)} {
			got := strings.Fields(readFile(t, dir, name))
			want := strings.Fields(readFile(t, filepath.Join("..", "..", "glm"), name))
			assert.Equal(t, want, got, "%s is out of date, run go generate ./glm", name)
		}
	}
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()

	cmd := newCommand()
	cmd.SetArgs([]string{"--out", dir, "--package", "glm", "--verbose"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "swizzle2.gen.go"))
	assert.FileExists(t, filepath.Join(dir, "swizzle4_decl.gen.go"))
}

func TestCommandRejectsArguments(t *testing.T) {
	cmd := newCommand()
	cmd.SetArgs([]string{"--out", t.TempDir(), "extra"})
	assert.Error(t, cmd.Execute())
}

func TestGeneratorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := Generator{OutputDir: t.TempDir(), Package: "glm"}
	assert.ErrorIs(t, gen.Run(ctx), context.Canceled)
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()

	buf, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(buf)
}
