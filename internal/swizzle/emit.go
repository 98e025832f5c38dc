package swizzle

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

const header = "// Code generated by swizzlegen. DO NOT EDIT.\n"

// DeclarationFile is the name of the file holding the accessor interface of
// the given source arity.
func DeclarationFile(source int) string {
	return fmt.Sprintf("swizzle%d_decl.gen.go", source)
}

// DefinitionFile is the name of the file holding the accessor methods of the
// given source arity.
func DefinitionFile(source int) string {
	return fmt.Sprintf("swizzle%d.gen.go", source)
}

// Declaration emits the interface SwizzlerN listing every accessor of VecN
// with its result type, in both naming systems.
func Declaration(pkg string, source int) ([]byte, error) {
	selections, err := vectorAccessors(source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "\npackage %s\n", pkg)
	fmt.Fprintf(&buf, "\n// Swizzler%d is the swizzle accessor surface of Vec%d. Every accessor exists\n", source, source)
	buf.WriteString("// twice, once in axis letters and once in color letters.\n")
	fmt.Fprintf(&buf, "type Swizzler%d[T Float] interface {\n", source)
	for _, s := range selections {
		fmt.Fprintf(&buf, "\t%s() %s\n", s.Name(), resultType(len(s)))
		fmt.Fprintf(&buf, "\t%s() %s\n", s.ColorName(), resultType(len(s)))
	}
	buf.WriteString("}\n")

	return format(DeclarationFile(source), buf.Bytes())
}

// Definition emits one method per accessor of VecN. Each body is a single
// lane permute, truncated to the result width; a single component result
// is broadcast and then narrowed to a scalar.
func Definition(pkg string, source int) ([]byte, error) {
	selections, err := vectorAccessors(source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "\npackage %s\n", pkg)
	for _, s := range selections {
		body := methodBody(s)
		fmt.Fprintf(&buf, "\nfunc (lhs Vec%d[T]) %s() %s { return %s }\n", source, s.Name(), resultType(len(s)), body)
		fmt.Fprintf(&buf, "\nfunc (lhs Vec%d[T]) %s() %s { return %s }\n", source, s.ColorName(), resultType(len(s)), body)
	}

	return format(DefinitionFile(source), buf.Bytes())
}

// vectorAccessors returns the validated accessors of a source arity that
// has a vector type. A single lane source is the scalar itself.
func vectorAccessors(source int) ([]Selection, error) {
	if source < 2 || source > MaxWidth {
		return nil, fmt.Errorf("%w: no vector type with %d components", ErrArity, source)
	}

	selections, err := Accessors(source)
	if err != nil {
		return nil, err
	}

	for _, s := range selections {
		if err := s.Validate(source); err != nil {
			return nil, fmt.Errorf("accessor %s: %w", s.Name(), err)
		}
	}
	return selections, nil
}

func resultType(width int) string {
	if width == 1 {
		return "T"
	}
	return fmt.Sprintf("Vec%d[T]", width)
}

func methodBody(s Selection) string {
	lanes := s.Lanes()
	permute := fmt.Sprintf("lhs.lanes.Permute(%d, %d, %d, %d)", lanes[0], lanes[1], lanes[2], lanes[3])

	switch len(s) {
	case 1:
		return permute + ".First()"
	case MaxWidth:
		return fmt.Sprintf("Vec%d[T]{%s}", MaxWidth, permute)
	default:
		return fmt.Sprintf("Vec%d[T]{%s.Truncate(%d)}", len(s), permute, len(s))
	}
}

func format(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}
