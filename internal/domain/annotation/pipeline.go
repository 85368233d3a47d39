package annotation

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/annogen/internal/model"
)

// Options configures one pipeline run. Header is shared read-only between runs.
type Options struct {
	Vocabulary     Vocabulary
	Header         []string
	ImplExtensions []string
}

// DefaultImplExtensions lists the implementation-file extensions whose methods
// are not annotated.
func DefaultImplExtensions() []string {
	return []string{".c", ".cc", ".cpp", ".cxx"}
}

// DefaultOptions returns options with the default vocabulary and no header.
func DefaultOptions() Options {
	return Options{
		Vocabulary:     DefaultVocabulary(),
		ImplExtensions: DefaultImplExtensions(),
	}
}

// Result is the augmented file plus what was added to it.
type Result struct {
	Lines           []string
	HeaderPrepended bool
	FileBlockAdded  bool
	MethodBlocks    int
	Ignored         bool
	Signatures      []m.MethodSignature
}

// Changed reports whether anything was added.
func (r Result) Changed() bool {
	return r.HeaderPrepended || r.FileBlockAdded || r.MethodBlocks > 0
}

// Annotate runs the header check, the file-level check and, for declaration
// files, the method scan over one file. The input slice is never modified.
func Annotate(lines []string, filename string, opts Options) (Result, error) {
	v := opts.Vocabulary

	if v.fileIgnored(lines) {
		return Result{Lines: lines, Ignored: true}, nil
	}

	input, prepended := EnsureHeader(lines, opts.Header)
	res := Result{HeaderPrepended: prepended}
	out := make([]string, 0, len(input)+16)

	start := v.skipPreamble(input, len(opts.Header))

	fileAnn := FileAnnotation{End: start}
	if start < len(input) && v.Classify(input[start]) == LineAnnotation {
		fileAnn = v.DetectFileAnnotation(input, start)
	}

	out = append(out, input[:fileAnn.End]...)

	if !fileAnn.Conforms() {
		out = append(out, v.FileBlock(filename)...)
		res.FileBlockAdded = true
	}

	if isImplementation(filename, opts.ImplExtensions) {
		res.Lines = append(out, input[fileAnn.End:]...)

		return res, nil
	}

	s := methodScan{vocab: v, lines: input, out: out}
	if err := s.run(fileAnn.End); err != nil {
		offset := 0
		if prepended {
			offset = len(opts.Header)
		}

		return Result{}, locate(err, filename, offset)
	}

	res.Lines = s.out
	res.MethodBlocks = s.blocks
	res.Signatures = s.signatures

	return res, nil
}

// skipPreamble returns the index of the first line after the header template
// that is neither blank nor part of a block comment.
func (v Vocabulary) skipPreamble(lines []string, from int) int {
	idx := from
	for ; idx < len(lines); idx++ {
		kind := v.Classify(lines[idx])
		if kind != LineBlank && kind != LineBlockComment {
			break
		}
	}

	return idx
}

func isImplementation(filename string, exts []string) bool {
	return slices.Contains(exts, strings.ToLower(filepath.Ext(filename)))
}

// methodScan walks declaration-file lines, appending to out.
type methodScan struct {
	vocab      Vocabulary
	lines      []string
	out        []string
	blocks     int
	signatures []m.MethodSignature

	// skipNext is set by a candidate with `:` after its `(`, on the guess
	// that it opens a base-class or member initializer list. It also fires
	// on `::` in parameter types.
	skipNext bool
	// depth counts parentheses left open by the last candidate; lines read
	// while it is positive continue that declaration.
	depth int
}

func (s *methodScan) run(from int) error {
	v := s.vocab

	for idx := from; idx < len(s.lines); idx++ {
		line := s.lines[idx]
		masked := v.MaskComment(strings.TrimSpace(line))

		switch {
		case s.skipNext:
			s.skipNext = false
			s.depth = max(0, s.depth+parenBalance(masked))
		case s.depth > 0:
			s.depth = max(0, s.depth+parenBalance(masked))
		case v.Classify(line) == LineCandidate:
			if err := s.candidate(idx, masked); err != nil {
				return err
			}
		}

		s.out = append(s.out, line)
	}

	return nil
}

func (s *methodScan) candidate(idx int, masked string) error {
	v := s.vocab

	decl, err := v.AssembleDeclaration(s.lines, idx)
	if err != nil {
		return atLine(err, idx)
	}

	sig, err := v.ParseSignature(decl.Text)
	if err != nil {
		return atLine(err, idx)
	}

	s.signatures = append(s.signatures, sig)

	annotated, err := v.HasMethodAnnotation(s.lines, idx)
	if err != nil {
		return err
	}

	if !annotated && !declarationIgnored(s.lines, idx) {
		s.out = append(s.out, v.MethodBlock(sig, Indentation(s.lines[idx]))...)
		s.blocks++
	}

	if open := strings.Index(masked, "("); open != -1 && strings.Contains(masked[open:], ":") {
		s.skipNext = true
	}

	s.depth = max(0, parenBalance(masked))

	return nil
}

func parenBalance(s string) int {
	return strings.Count(s, "(") - strings.Count(s, ")")
}

// atLine fills in the 1-based line of a parse error raised without one.
func atLine(err error, idx int) error {
	var malformed *MalformedDeclarationError
	if errors.As(err, &malformed) && malformed.Line == 0 {
		malformed.Line = idx + 1
	}

	return err
}

// locate stamps the file name and maps the line back to the unprefixed file.
func locate(err error, filename string, offset int) error {
	var malformed *MalformedDeclarationError
	if errors.As(err, &malformed) {
		malformed.File = filename
		malformed.Line -= offset

		return err
	}

	var underflow *AnnotationScanUnderflowError
	if errors.As(err, &underflow) {
		underflow.File = filename
		underflow.Line -= offset
	}

	return err
}
