package proptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	typ, err := Classify(prop("foo", "boolean | string"))
	require.NoError(t, err)
	require.Equal(t, KindUnion, typ.Kind())

	union := typ.(*Union)
	assert.Equal(t, []string{"Foo0", "Foo1"}, union.Constructors())

	assert.True(t, typ.Supported())
	assert.Equal(t, "Foo", typ.Annotation())
	assert.Equal(t, []string{"Foo"}, typ.CustomTypeNames())
	assert.Equal(t, []string{"type Foo\n    = Foo0 Bool\n    | Foo1 String"}, typ.CustomTypeDeclarations())
	assert.Equal(t, "fooEncoder", typ.AttributeEncoderName())
	assert.False(t, typ.SettableAsAttribute())

	encoders := typ.Encoders()
	require.Len(t, encoders, 2)
	assert.Equal(t, `fooEncoder : Foo -> Value
fooEncoder value =
    case value of
        Foo0 member ->
            Encode.bool member

        Foo1 member ->
            Encode.string member`, encoders[0])
	assert.Contains(t, encoders[1], "boolToString")
}

func TestUnion_FiltersUndefined(t *testing.T) {
	typ := MustClassify(prop("foo", "undefined | number | string | undefined"))
	assert.Equal(t, []string{"Foo0", "Foo1"}, typ.(*Union).Constructors())
}

func TestUnion_SingleMemberIsRejected(t *testing.T) {
	u, err := newUnion(prop("foo", "string | undefined"), "string | undefined")
	require.NoError(t, err)

	assert.False(t, u.Supported())
	assert.ErrorIs(t, u.ParseErr(), errSingleMember)

	typ := MustClassify(prop("foo", "string | undefined"))
	assert.Equal(t, KindString, typ.Kind())
}

func TestUnion_CompositeMembers(t *testing.T) {
	typ := MustClassify(prop("value", "{ id: number; } | number[]"))
	require.True(t, typ.Supported())

	assert.Equal(t, []string{"type Value\n    = Value0 Value0Value\n    | Value1 (List Int)"}, typ.CustomTypeDeclarations())
	assert.Equal(t, []string{"Value0Value"}, typ.TypeAliasNames())
	assert.Contains(t, typ.Encoders()[0], "Value0 member ->\n            value0ValueEncoder member")
	assert.Contains(t, typ.Encoders()[0], "Value1 member ->\n            Encode.list Encode.int member")
}

func TestUnion_UnsupportedMember(t *testing.T) {
	typ, err := Classify(prop("foo", "boolean | symbol"))
	require.NoError(t, err)
	assert.Equal(t, KindUnsupported, typ.Kind())
}

func TestClassify_ResolvedForm(t *testing.T) {
	typ, err := Classify(PropertyMetadata("my-foo", "size", "ButtonSize", `"small" | "large"`))
	require.NoError(t, err)
	assert.Equal(t, KindEnum, typ.Kind())

	typ, err = Classify(PropertyMetadata("my-foo", "size", "ButtonSize", "ButtonSize"))
	require.NoError(t, err)
	assert.Equal(t, KindUnsupported, typ.Kind())
}

func TestTextualMatches(t *testing.T) {
	assert.Equal(t, []Kind{KindEnum, KindUnion}, TextualMatches(`"a" | "b"`))
	assert.Equal(t, []Kind{KindBoolean}, TextualMatches("undefined | boolean"))
	assert.Equal(t, []Kind{KindArray, KindUnion}, TextualMatches("boolean | string[]"))
	assert.Empty(t, TextualMatches("symbol"))
}
