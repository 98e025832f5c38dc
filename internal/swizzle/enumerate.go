// Package swizzle enumerates the swizzle accessors of the fixed size vector
// types and emits their Go source.
//
// A swizzle reads 1 to 4 components of a source vector in any order, with
// repetition, and packs them into a new vector (or a scalar for a single
// component). For a source of arity S there are S^K accessors of width K.
package swizzle

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

// MaxWidth is the widest source and the widest result of a swizzle.
const MaxWidth = 4

var (
	ErrArity = errors.New("swizzle: arity out of range")
	ErrIndex = errors.New("swizzle: component index out of range")
)

// Selection is an ordered choice of source components: element i is the
// source component written to result position i.
type Selection []Axis

// Name is the accessor name in axis letters, e.g. "ZXY".
func (s Selection) Name() string {
	var sb strings.Builder
	for _, a := range s {
		sb.WriteString(a.String())
	}
	return sb.String()
}

// ColorName is the accessor name in color letters, e.g. "BRG".
func (s Selection) ColorName() string {
	var sb strings.Builder
	for _, a := range s {
		sb.WriteString(a.Color())
	}
	return sb.String()
}

// Key identifies the digit sequence of the selection.
func (s Selection) Key() string {
	return string(lo.Map(s, func(a Axis, _ int) byte { return '0' + byte(a) }))
}

// Lanes returns the four source lanes a permute has to select for this
// selection. A single component is broadcast to every lane; positions past
// the end of a wider selection keep their own lane.
func (s Selection) Lanes() [MaxWidth]int {
	if len(s) == 1 {
		x := int(s[0])
		return [MaxWidth]int{x, x, x, x}
	}

	lanes := [MaxWidth]int{0, 1, 2, 3}
	for i, a := range s {
		lanes[i] = int(a)
	}
	return lanes
}

// Validate checks that the selection only reads components that exist in
// a source of the given arity.
func (s Selection) Validate(source int) error {
	if len(s) < 1 || len(s) > MaxWidth {
		return fmt.Errorf("%w: selection of %d components", ErrArity, len(s))
	}

	for i, a := range s {
		if int(a) >= source {
			return fmt.Errorf("%w: %v at position %d of a %d component source", ErrIndex, a, i, source)
		}
	}
	return nil
}

// ToBase writes n as a base numeral of the given number of digits, least
// significant digit first. Digit i is the component read at position i.
func ToBase(n, base, digits int) Selection {
	s := make(Selection, digits)
	for i := range s {
		s[i] = Axis(n % base)
		n /= base
	}
	return s
}

type enumeration struct {
	source, width int
}

var enumerations, _ = lru.New[enumeration, []Selection](MaxWidth * MaxWidth)

// Enumerate returns the selections of the given width over a source of the
// given arity, ordered by digit sequence. Every numeral of MaxWidth digits is
// cut down to its first width digits, so the same prefix shows up many times
// and is only kept once.
func Enumerate(source, width int) ([]Selection, error) {
	if source < 1 || source > MaxWidth {
		return nil, fmt.Errorf("%w: source arity %d", ErrArity, source)
	}

	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: width %d", ErrArity, width)
	}

	key := enumeration{source: source, width: width}
	if cached, ok := enumerations.Get(key); ok {
		return cloneSelections(cached), nil
	}

	count := pow(source, MaxWidth)

	prefixes := make([]Selection, 0, count)
	for n := 0; n < count; n++ {
		prefixes = append(prefixes, ToBase(n, source, MaxWidth)[:width])
	}

	unique := lo.UniqBy(prefixes, Selection.Key)
	slices.SortFunc(unique, func(a, b Selection) int {
		return slices.Compare(a, b)
	})

	enumerations.Add(key, cloneSelections(unique))
	return unique, nil
}

func cloneSelections(selections []Selection) []Selection {
	return lo.Map(selections, func(s Selection, _ int) Selection {
		return slices.Clone(s)
	})
}

// Accessors returns every selection over a source of the given arity, all
// widths from 1 to MaxWidth, narrowest first.
func Accessors(source int) ([]Selection, error) {
	var result []Selection
	for width := 1; width <= MaxWidth; width++ {
		selections, err := Enumerate(source, width)
		if err != nil {
			return nil, err
		}

		result = append(result, selections...)
	}
	return result, nil
}

func pow(base, exp int) int {
	result := 1
	for range exp {
		result *= base
	}
	return result
}
