package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_Classify(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name string
		line string
		want LineKind
	}{
		{"empty", "", LineBlank},
		{"whitespace only", " \t ", LineBlank},
		{"block comment open", "/* Copyright", LineBlockComment},
		{"block comment body with parens", " * Permission (the Software)", LineBlockComment},
		{"annotation", "    //! \\brief  Does things", LineAnnotation},
		{"bare marker", "//!", LineAnnotation},
		{"declaration", "    void Foo(int a);", LineCandidate},
		{"paren only in trailing comment", "int m_x; // see Foo()", LineCode},
		{"paren in trailing annotation comment", "int m_x; //!< see Foo()", LineCandidate},
		{"plain code", "int m_x;", LineCode},
		{"access specifier", "public:", LineCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Classify(tt.line))
		})
	}
}

func TestVocabulary_MaskComment(t *testing.T) {
	v := DefaultVocabulary()

	assert.Equal(t, "int a;", v.MaskComment("int a; // trailing (note)"))
	assert.Equal(t, "int a; //!< kept", v.MaskComment("int a; //!< kept"))
	assert.Equal(t, "", v.MaskComment("// whole line"))
	assert.Equal(t, "void Foo();", v.MaskComment("void Foo();"))
}

func TestIndentation(t *testing.T) {
	assert.Equal(t, "    ", Indentation("    void Foo();"))
	assert.Equal(t, "\t\t", Indentation("\t\tvoid Foo();"))
	assert.Equal(t, "", Indentation("void Foo();"))
	assert.Equal(t, "  ", Indentation("  "))
}

func TestVocabulary_AssembleDeclaration(t *testing.T) {
	v := DefaultVocabulary()

	t.Run("single line", func(t *testing.T) {
		lines := []string{"class Foo {", "    void Bar(int a);", "};"}

		decl, err := v.AssembleDeclaration(lines, 1)
		require.NoError(t, err)

		assert.Equal(t, "void Bar(int a);", decl.Text)
		assert.Equal(t, 1, decl.Start)
		assert.Equal(t, 1, decl.End)
	})

	t.Run("wrapped across lines", func(t *testing.T) {
		lines := []string{
			"    HevcPipeline(",
			"        CodechalHwInterface *hwInterface,   // hw",
			"        CodechalDebugInterface *debugInterface);",
			"    int m_x;",
		}

		decl, err := v.AssembleDeclaration(lines, 0)
		require.NoError(t, err)

		assert.Equal(t, "HevcPipeline( CodechalHwInterface *hwInterface, CodechalDebugInterface *debugInterface);", decl.Text)
		assert.Equal(t, 2, decl.End)
	})

	t.Run("terminator inside a masked comment does not count", func(t *testing.T) {
		lines := []string{"void Foo(int a) // a; b", "{"}

		_, err := v.AssembleDeclaration(lines, 0)

		var malformed *MalformedDeclarationError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.Line)
	})

	t.Run("start out of range", func(t *testing.T) {
		_, err := v.AssembleDeclaration([]string{"void Foo();"}, 3)

		var malformed *MalformedDeclarationError
		require.ErrorAs(t, err, &malformed)
	})
}
