package model

import "strings"

// Parameter is one (type, name) pair of a parsed parameter list.
// A trailing reference marker on the type is moved onto the name, so
// `CString& b` is stored as {Type: "CString", Name: "&b"}.
type Parameter struct {
	Type string
	Name string
}

// MethodSignature is the line-level view of a method declaration.
type MethodSignature struct {
	IsVirtual  bool
	ReturnType string // empty for constructors and destructors
	MethodName string
	TestName   string // always MethodName + "Test"
	Parameters []Parameter
}

// NewMethodSignature builds a signature and derives its TestName.
func NewMethodSignature(virtual bool, returnType, name string, params []Parameter) MethodSignature {
	return MethodSignature{
		IsVirtual:  virtual,
		ReturnType: returnType,
		MethodName: name,
		TestName:   name + "Test",
		Parameters: params,
	}
}

// IsDestructor reports whether the method name starts with `~`.
func (s MethodSignature) IsDestructor() bool {
	return strings.HasPrefix(s.MethodName, "~")
}

// IsConstructor reports whether the declaration had a name, no return type
// and is not a destructor.
func (s MethodSignature) IsConstructor() bool {
	return s.ReturnType == "" && s.MethodName != "" && !s.IsDestructor()
}

// ClassName returns the method name without a leading `~`.
func (s MethodSignature) ClassName() string {
	return strings.TrimPrefix(s.MethodName, "~")
}
