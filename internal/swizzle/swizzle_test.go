package swizzle

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		n, base, digits int
		want            Selection
	}{
		{0, 3, 4, Selection{0, 0, 0, 0}},
		{1, 3, 4, Selection{1, 0, 0, 0}},
		{3, 3, 4, Selection{0, 1, 0, 0}},
		{5, 2, 3, Selection{1, 0, 1}},
		{255, 4, 4, Selection{3, 3, 3, 3}},
		{0, 1, 2, Selection{0, 0}},
	}

	for _, tt := range tests {
		got := ToBase(tt.n, tt.base, tt.digits)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ToBase(%d, %d, %d) mismatch (-want +got):\n%s", tt.n, tt.base, tt.digits, diff)
		}
	}
}

func TestEnumerateCounts(t *testing.T) {
	for source := 1; source <= MaxWidth; source++ {
		for width := 1; width <= MaxWidth; width++ {
			selections, err := Enumerate(source, width)
			require.NoError(t, err)

			want := pow(source, width)
			assert.Len(t, selections, want, "source %d width %d", source, width)

			seen := map[string]bool{}
			for _, s := range selections {
				assert.Len(t, s, width)
				assert.NoError(t, s.Validate(source))
				assert.False(t, seen[s.Key()], "duplicate %s", s.Name())
				seen[s.Key()] = true
			}
		}
	}
}

func TestEnumerateOrder(t *testing.T) {
	selections, err := Enumerate(2, 2)
	require.NoError(t, err)

	names := make([]string, len(selections))
	for i, s := range selections {
		names[i] = s.Name()
	}

	if diff := cmp.Diff([]string{"XX", "XY", "YX", "YY"}, names); diff != "" {
		t.Errorf("Enumerate(2, 2) mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateCachedCopy(t *testing.T) {
	first, err := Enumerate(3, 1)
	require.NoError(t, err)

	first[0] = Selection{AxisW}

	second, err := Enumerate(3, 1)
	require.NoError(t, err)
	assert.Equal(t, Selection{AxisX}, second[0])
}

func TestEnumerateCachedSelectionsAreNotShared(t *testing.T) {
	first, err := Enumerate(3, 2)
	require.NoError(t, err)

	first[0][0] = AxisW

	second, err := Enumerate(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "XX", second[0].Name())
	assert.NoError(t, second[0].Validate(3))

	second[1][1] = AxisW

	third, err := Enumerate(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "XY", third[1].Name())
}

func TestEnumerateArity(t *testing.T) {
	for _, tt := range []struct{ source, width int }{{0, 1}, {5, 1}, {2, 0}, {2, 5}} {
		_, err := Enumerate(tt.source, tt.width)
		assert.ErrorIs(t, err, ErrArity)
	}
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		source int
		want   int
	}{
		{1, 4},
		{2, 2 + 4 + 8 + 16},
		{3, 3 + 9 + 27 + 81},
		{4, 4 + 16 + 64 + 256},
	}

	for _, tt := range tests {
		selections, err := Accessors(tt.source)
		require.NoError(t, err)
		assert.Len(t, selections, tt.want)
	}
}

func TestSelectionNames(t *testing.T) {
	s := Selection{AxisZ, AxisX, AxisY, AxisW}
	assert.Equal(t, "ZXYW", s.Name())
	assert.Equal(t, "BRGA", s.ColorName())
	assert.Equal(t, "2013", s.Key())

	assert.Equal(t, "W", AxisW.String())
	assert.Equal(t, "A", AxisW.Color())
	assert.Equal(t, "Axis(7)", Axis(7).String())
}

func TestSelectionLanes(t *testing.T) {
	assert.Equal(t, [4]int{2, 2, 2, 2}, Selection{AxisZ}.Lanes())
	assert.Equal(t, [4]int{1, 0, 2, 3}, Selection{AxisY, AxisX}.Lanes())
	assert.Equal(t, [4]int{2, 0, 1, 3}, Selection{AxisZ, AxisX, AxisY}.Lanes())
	assert.Equal(t, [4]int{0, 0, 0, 0}, Selection{AxisX, AxisX, AxisX, AxisX}.Lanes())
}

func TestSelectionValidate(t *testing.T) {
	assert.NoError(t, Selection{AxisY, AxisY}.Validate(2))
	assert.ErrorIs(t, Selection{AxisX, AxisZ}.Validate(2), ErrIndex)
	assert.ErrorIs(t, Selection{}.Validate(2), ErrArity)
	assert.ErrorIs(t, Selection{0, 0, 0, 0, 0}.Validate(4), ErrArity)
}

func parse(t *testing.T, src []byte) *ast.File {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)
	return file
}

func TestDeclaration(t *testing.T) {
	src, err := Declaration("glm", 3)
	require.NoError(t, err)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by swizzlegen. DO NOT EDIT.\n"))
	assert.Contains(t, text, "type Swizzler3[T Float] interface {")
	assert.Contains(t, text, "\tX() T\n")
	assert.Contains(t, text, "\tR() T\n")
	assert.Contains(t, text, "\tZXY() Vec3[T]\n")
	assert.Contains(t, text, "\tBRG() Vec3[T]\n")
	assert.Contains(t, text, "\tXXXX() Vec4[T]\n")
	assert.NotContains(t, text, "W()")

	file := parse(t, src)
	spec := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
	methods := spec.Type.(*ast.InterfaceType).Methods.List
	assert.Len(t, methods, 2*(3+9+27+81))
}

func TestDefinition(t *testing.T) {
	src, err := Definition("glm", 4)
	require.NoError(t, err)

	text := string(src)
	assert.Contains(t, text, "func (lhs Vec4[T]) W() T { return lhs.lanes.Permute(3, 3, 3, 3).First() }\n")
	assert.Contains(t, text, "func (lhs Vec4[T]) A() T { return lhs.lanes.Permute(3, 3, 3, 3).First() }\n")
	assert.Contains(t, text, "func (lhs Vec4[T]) YX() Vec2[T] { return Vec2[T]{lhs.lanes.Permute(1, 0, 2, 3).Truncate(2)} }\n")
	assert.Contains(t, text, "func (lhs Vec4[T]) WZYX() Vec4[T] { return Vec4[T]{lhs.lanes.Permute(3, 2, 1, 0)} }\n")
	assert.Contains(t, text, "func (lhs Vec4[T]) ABGR() Vec4[T] { return Vec4[T]{lhs.lanes.Permute(3, 2, 1, 0)} }\n")

	file := parse(t, src)
	funcs := 0
	for _, decl := range file.Decls {
		if _, ok := decl.(*ast.FuncDecl); ok {
			funcs++
		}
	}
	assert.Equal(t, 2*(4+16+64+256), funcs)
}

func TestDefinitionSmallSource(t *testing.T) {
	src, err := Definition("glm", 2)
	require.NoError(t, err)

	text := string(src)
	assert.Contains(t, text, "func (lhs Vec2[T]) YYY() Vec3[T] { return Vec3[T]{lhs.lanes.Permute(1, 1, 1, 3).Truncate(3)} }\n")
	assert.NotContains(t, text, "Z()")
}

func TestNoVectorType(t *testing.T) {
	_, err := Declaration("glm", 1)
	assert.ErrorIs(t, err, ErrArity)

	_, err = Definition("glm", 5)
	assert.ErrorIs(t, err, ErrArity)
}
