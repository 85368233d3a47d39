package annotation

import (
	"slices"
	"strings"
	"unicode"

	m "github.com/mouse-blink/annogen/internal/model"
)

// ParseSignature reads a logical declaration with a deliberately narrow
// grammar: optional specifiers, a single return-type token, the name, and a
// flat parameter list taken from the first `(` to the first `)` after it.
// Nested parentheses, templates and multi-word types are not modeled.
func (v Vocabulary) ParseSignature(decl string) (m.MethodSignature, error) {
	s, virtual := v.stripSpecifiers(strings.TrimSpace(decl))

	open := strings.Index(s, "(")
	if open == -1 {
		return m.MethodSignature{}, &MalformedDeclarationError{Reason: "no opening parenthesis"}
	}

	closing := strings.Index(s[open+1:], ")")
	if closing == -1 {
		return m.MethodSignature{}, &MalformedDeclarationError{Reason: "unclosed parameter list"}
	}

	returnType, name, ok := splitReturnAndName(s, open)
	if !ok {
		// A control statement such as `if (m_x) {` inside an inline body
		// gets a bare placeholder block.
		return m.NewMethodSignature(virtual, "", "", nil), nil
	}

	params, err := parseParameters(s[open+1 : open+1+closing])
	if err != nil {
		return m.MethodSignature{}, err
	}

	return m.NewMethodSignature(virtual, returnType, name, params), nil
}

func (v Vocabulary) stripSpecifiers(s string) (string, bool) {
	virtual := false

	for {
		idx := strings.IndexFunc(s, unicode.IsSpace)
		if idx == -1 {
			return s, virtual
		}

		word := s[:idx]

		switch {
		case word == virtualKeyword:
			virtual = true
		case slices.Contains(v.Qualifiers, word):
		default:
			return s, virtual
		}

		s = strings.TrimSpace(s[idx:])
	}
}

// statementKeywords lead control statements that share the `word (...)`
// shape with a constructor written with a space before its parenthesis.
var statementKeywords = []string{"if", "for", "while", "switch", "return", "sizeof", "catch", "do", "else"}

// splitReturnAndName treats the token before the first whitespace as the
// return type unless that token already reaches the `(`, which is the
// constructor/destructor shape. It reports false when a name-only shape is
// really a statement, as in `if (m_x)` or `while(n)`.
func splitReturnAndName(s string, open int) (string, string, bool) {
	space := strings.IndexFunc(s, unicode.IsSpace)
	if space != -1 && space < open {
		if slices.Contains(statementKeywords, s[:space]) {
			return "", "", false
		}

		if name := strings.TrimSpace(s[space+1 : open]); name != "" {
			return s[:space], name, true
		}
		// `Foo (int a)`: the only token before the parenthesis is the name.
	}

	name := strings.TrimSpace(s[:open])
	if !isIdentifier(strings.TrimPrefix(name, "~")) || slices.Contains(statementKeywords, name) {
		return "", "", false
	}

	return "", name, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == ':'):
		default:
			return false
		}
	}

	return true
}

func parseParameters(text string) ([]m.Parameter, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "void" {
		return nil, nil
	}

	var params []m.Parameter

	for _, piece := range strings.Split(text, ",") {
		fields := strings.Fields(piece)

		switch len(fields) {
		case 0:
			return nil, &MalformedDeclarationError{Reason: "empty entry in parameter list (" + text + ")"}
		case 2:
			typ, name := fields[0], fields[1]
			if len(typ) > 1 && strings.HasSuffix(typ, "&") {
				typ = strings.TrimSuffix(typ, "&")
				name = "&" + name
			}

			params = append(params, m.Parameter{Type: typ, Name: name})
		}
	}

	if len(params) == 0 {
		return nil, &MalformedDeclarationError{Reason: "no parameter of the form `type name` in (" + text + ")"}
	}

	return params, nil
}
