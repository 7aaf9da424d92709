package proptype

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

func TestEnum_ConstructorsInSourceOrder(t *testing.T) {
	typ, err := Classify(prop("size", `"foo" | "bar" | "baz"`))
	require.NoError(t, err)
	require.Equal(t, KindEnum, typ.Kind())

	enum := typ.(*Enum)
	assert.Equal(t, []string{"Foo", "Bar", "Baz"}, enum.Constructors())
	assert.Equal(t, []string{"foo", "bar", "baz"}, enum.Values())

	assert.Equal(t, "Size", typ.Annotation())
	assert.Equal(t, []string{"Size"}, typ.CustomTypeNames())
	assert.Equal(t, []string{"type Size\n    = Foo\n    | Bar\n    | Baz"}, typ.CustomTypeDeclarations())
	assert.Equal(t, "sizeToString", typ.AttributeEncoderName())
	assert.Equal(t, "(sizeToString >> Encode.string)", typ.JSONEncoderName())
	assert.True(t, typ.SettableAsAttribute())
}

func TestEnum_Encoder(t *testing.T) {
	typ := MustClassify(prop("size", `"small" | "x-large"`))

	require.Len(t, typ.Encoders(), 1)
	assert.Equal(t, `sizeToString : Size -> String
sizeToString value =
    case value of
        Small ->
            "small"

        XLarge ->
            "x-large"`, typ.Encoders()[0])
}

func TestEnum_OptionalLiterals(t *testing.T) {
	for _, typeString := range []string{`undefined | "a" | "b"`, `"a" | "b" | undefined`} {
		typ, err := Classify(prop("mode", typeString))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, typ.(*Enum).Constructors(), typeString)
	}
}

func TestEnum_WordLiterals(t *testing.T) {
	typ := MustClassify(prop("placement", `"top left" | "bottom_right"`))
	assert.Equal(t, []string{"TopLeft", "BottomRight"}, typ.(*Enum).Constructors())
}

func TestEnum_InvalidConstructorName(t *testing.T) {
	for _, typeString := range []string{`"1x" | "2x"`, `"" | "a"`, `"a" | "$b"`} {
		t.Run(typeString, func(t *testing.T) {
			typ, err := Classify(prop("scale", typeString))
			require.Error(t, err)
			assert.Nil(t, typ)

			var compilerErr *errors.CompilerError
			require.True(t, stderrors.As(err, &compilerErr))
			assert.Equal(t, errors.ErrInvalidConstructorName, compilerErr.Code)
			assert.Equal(t, "my-foo", compilerErr.Component)
			assert.Equal(t, "scale", compilerErr.Item)
		})
	}
}

func TestEnum_DuplicateConstructor(t *testing.T) {
	_, err := Classify(prop("variant", `"a-b" | "aB"`))

	var compilerErr *errors.CompilerError
	require.True(t, stderrors.As(err, &compilerErr))
	assert.Equal(t, errors.ErrDuplicateConstructor, compilerErr.Code)
	assert.Contains(t, compilerErr.Message, "AB")
}

func TestEnum_NestedReportsTopLevelProperty(t *testing.T) {
	_, err := Classify(prop("config", `{ scale: "1x" | "2x"; }`))

	var compilerErr *errors.CompilerError
	require.True(t, stderrors.As(err, &compilerErr))
	assert.Equal(t, "config", compilerErr.Item)
}

func TestElmString(t *testing.T) {
	assert.Equal(t, `"plain"`, elmString("plain"))
	assert.Equal(t, `"a<b"`, elmString("a<b"))
	assert.Equal(t, `"say \"hi\""`, elmString(`say "hi"`))
}
