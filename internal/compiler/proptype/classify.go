package proptype

import (
	"regexp"
	"strings"

	"github.com/stencil-elm/elmproxy/internal/compiler/parser"
)

var (
	enumPattern        = regexp.MustCompile(`^("[^"]*" \| )*"[^"]*"$`)
	fixedObjectPattern = regexp.MustCompile(`^\{ .*\}$`)
)

// matcher pairs a cheap textual test with the constructor of its category
type matcher struct {
	kind    Kind
	matches func(typeString string) bool
	build   func(meta Metadata, typeString string) (Type, error)
}

// matchers is the classification table, in priority order. It is filled in
// init because composite categories classify their sub-types recursively.
var matchers []matcher

func init() {
	matchers = []matcher{
		{
			kind:    KindBoolean,
			matches: exactly("boolean"),
			build:   func(meta Metadata, _ string) (Type, error) { return &Boolean{meta: meta}, nil },
		},
		{
			kind:    KindNumber,
			matches: exactly("number"),
			build:   func(meta Metadata, _ string) (Type, error) { return &Number{meta: meta}, nil },
		},
		{
			kind:    KindString,
			matches: exactly("string"),
			build:   func(meta Metadata, _ string) (Type, error) { return &String{meta: meta}, nil },
		},
		{
			kind:    KindAnyObject,
			matches: exactly("object"),
			build:   func(meta Metadata, _ string) (Type, error) { return &AnyObject{meta: meta}, nil },
		},
		{
			kind:    KindEnum,
			matches: enumPattern.MatchString,
			build:   func(meta Metadata, s string) (Type, error) { return newEnum(meta, s) },
		},
		{
			kind:    KindFixedObject,
			matches: fixedObjectPattern.MatchString,
			build:   func(meta Metadata, s string) (Type, error) { return newFixedObject(meta, s) },
		},
		{
			kind:    KindArray,
			matches: func(s string) bool { return strings.HasSuffix(s, "[]") },
			build:   func(meta Metadata, s string) (Type, error) { return newArray(meta, s) },
		},
		{
			kind:    KindUnion,
			matches: parser.HasTopLevelUnion,
			build:   func(meta Metadata, s string) (Type, error) { return newUnion(meta, s) },
		},
	}
}

func exactly(want string) func(string) bool {
	return func(s string) bool { return s == want }
}

// Classify maps metadata to the first category that both matches one of its
// type strings textually and reports itself supported after construction.
// Categories are tried in priority order; for each, the original type string
// is tried before the resolved one. When nothing fits, an *Unsupported is
// returned.
//
// The error return is reserved for hard failures that must abort generation,
// such as a string literal that cannot become an Elm constructor name.
func Classify(meta Metadata) (Type, error) {
	candidates := meta.candidates()
	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i], _ = Normalize(c)
	}

	for _, m := range matchers {
		for _, typeString := range normalized {
			if !m.matches(typeString) {
				continue
			}
			typ, err := m.build(meta, typeString)
			if err != nil {
				return nil, err
			}
			if typ.Supported() {
				return typ, nil
			}
		}
	}

	return NewUnsupported(meta), nil
}

// MustClassify is like Classify but panics on a hard failure.
// It simplifies tests and static tables.
func MustClassify(meta Metadata) Type {
	typ, err := Classify(meta)
	if err != nil {
		panic(err)
	}
	return typ
}

// TextualMatches lists the categories whose pattern matches the normalized
// typeString, in priority order, before any construction is attempted.
func TextualMatches(typeString string) []Kind {
	normalized, _ := Normalize(typeString)
	var kinds []Kind
	for _, m := range matchers {
		if m.matches(normalized) {
			kinds = append(kinds, m.kind)
		}
	}
	return kinds
}
