package annotation

import (
	"strings"

	m "github.com/mouse-blink/annogen/internal/model"
)

// MethodBlock builds the annotation block placed above a declaration.
func (v Vocabulary) MethodBlock(sig m.MethodSignature, indent string) []string {
	block := []string{v.blank(indent)}

	switch {
	case sig.IsDestructor():
		block = append(block, v.tagLine(indent, v.BriefTag, "Destructor of class "+sig.ClassName()))
	case sig.IsConstructor():
		block = append(block, v.tagLine(indent, v.BriefTag, "Constructor of class "+sig.MethodName))
	default:
		block = append(block, v.tagLine(indent, v.BriefTag, ""))
	}

	for _, p := range sig.Parameters {
		block = append(block,
			v.tagLine(indent, v.ParamTag, v.ParamDirection+" "+strings.TrimLeft(p.Name, "&*")),
			v.blank(indent),
		)
	}

	if sig.ReturnType != "" && !sig.IsDestructor() {
		block = append(block, v.tagLine(indent, v.ReturnTag, sig.ReturnType))
		if sig.ReturnType == v.StatusType {
			block = append(block, v.noteLine(indent, v.StatusDescription))
		} else {
			block = append(block, v.blank(indent))
		}
	}

	return append(block, v.blank(indent))
}

// FileBlock builds the four-line file-level block.
func (v Vocabulary) FileBlock(filename string) []string {
	return []string{
		v.blank(""),
		v.tagLine("", v.FileTag, filename),
		v.tagLine("", v.BriefTag, ""),
		v.blank(""),
	}
}
