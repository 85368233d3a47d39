package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/annogen/internal/model"
)

func TestVocabulary_ParseSignature(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name    string
		decl    string
		virtual bool
		ret     string
		method  string
		params  []m.Parameter
	}{
		{
			name:    "virtual status method with reference parameter",
			decl:    "virtual MOS_STATUS DoThing(int a, CString &b);",
			virtual: true,
			ret:     "MOS_STATUS",
			method:  "DoThing",
			params:  []m.Parameter{{Type: "int", Name: "a"}, {Type: "CString", Name: "&b"}},
		},
		{
			name:   "reference marker on the type moves to the name",
			decl:   "void Set(CString& b);",
			ret:    "void",
			method: "Set",
			params: []m.Parameter{{Type: "CString", Name: "&b"}},
		},
		{
			name:   "destructor",
			decl:   "~Foo();",
			method: "~Foo",
		},
		{
			name:    "virtual destructor with inline body",
			decl:    "virtual ~HevcPipeline() {};",
			virtual: true,
			method:  "~HevcPipeline",
		},
		{
			name:   "constructor",
			decl:   "Foo(int a);",
			method: "Foo",
			params: []m.Parameter{{Type: "int", Name: "a"}},
		},
		{
			name:   "explicit constructor",
			decl:   "explicit Foo(int a);",
			method: "Foo",
			params: []m.Parameter{{Type: "int", Name: "a"}},
		},
		{
			name:   "constructor with space before parenthesis",
			decl:   "Foo (int a);",
			method: "Foo",
			params: []m.Parameter{{Type: "int", Name: "a"}},
		},
		{
			name:   "static method",
			decl:   "static void Reset();",
			ret:    "void",
			method: "Reset",
		},
		{
			name:   "space before parenthesis keeps return type",
			decl:   "MOS_STATUS Init (void *settings);",
			ret:    "MOS_STATUS",
			method: "Init",
			params: []m.Parameter{{Type: "void", Name: "*settings"}},
		},
		{
			name:   "multi-word parameters are dropped",
			decl:   "bool Check(const Bar &b, int c, unsigned long d);",
			ret:    "bool",
			method: "Check",
			params: []m.Parameter{{Type: "int", Name: "c"}},
		},
		{
			name:   "void parameter list",
			decl:   "int Count(void) const;",
			ret:    "int",
			method: "Count",
		},
		{
			name:   "wrapped pointer parameters",
			decl:   "HevcPipeline( CodechalHwInterface *hwInterface, CodechalDebugInterface *debugInterface);",
			method: "HevcPipeline",
			params: []m.Parameter{
				{Type: "CodechalHwInterface", Name: "*hwInterface"},
				{Type: "CodechalDebugInterface", Name: "*debugInterface"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := v.ParseSignature(tt.decl)
			require.NoError(t, err)

			assert.Equal(t, tt.virtual, sig.IsVirtual)
			assert.Equal(t, tt.ret, sig.ReturnType)
			assert.Equal(t, tt.method, sig.MethodName)
			assert.Equal(t, tt.method+"Test", sig.TestName)
			assert.Equal(t, tt.params, sig.Parameters)
		})
	}
}

func TestVocabulary_ParseSignature_Errors(t *testing.T) {
	v := DefaultVocabulary()

	for _, decl := range []string{
		"int m_value;",
		"void Foo(int a;",
		"void Foo(int a,);",
		"void Foo(, int a);",
		"void Set(const Foo &a);",
		"void Set(unsigned int a, const char *b);",
		"Foo(int);",
	} {
		t.Run(decl, func(t *testing.T) {
			_, err := v.ParseSignature(decl)

			var malformed *MalformedDeclarationError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestVocabulary_ParseSignature_Statements(t *testing.T) {
	v := DefaultVocabulary()

	for _, decl := range []string{
		"if (m_x) {m_x = 0;",
		"while(m_count > 0) {m_count--;",
		"for (i = 0; i < n; i++)",
		"return (m_x);",
		"else if (m_y) {m_y = 0;",
		"(void)m_x;",
	} {
		t.Run(decl, func(t *testing.T) {
			sig, err := v.ParseSignature(decl)
			require.NoError(t, err)

			assert.Empty(t, sig.MethodName)
			assert.Empty(t, sig.ReturnType)
			assert.Empty(t, sig.Parameters)
			assert.False(t, sig.IsConstructor())
			assert.False(t, sig.IsDestructor())
		})
	}
}

func TestMethodSignature_Kinds(t *testing.T) {
	dtor := m.NewMethodSignature(true, "", "~Foo", nil)
	assert.True(t, dtor.IsDestructor())
	assert.False(t, dtor.IsConstructor())
	assert.Equal(t, "Foo", dtor.ClassName())

	ctor := m.NewMethodSignature(false, "", "Foo", nil)
	assert.True(t, ctor.IsConstructor())
	assert.Equal(t, "FooTest", ctor.TestName)

	assert.False(t, m.NewMethodSignature(false, "", "", nil).IsConstructor())

	method := m.NewMethodSignature(false, "void", "Run", nil)
	assert.False(t, method.IsConstructor())
	assert.False(t, method.IsDestructor())
}
