package writer

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/imports"
	"strings"
)

// Mode selects whether a Writer produces text or only records import candidates.
type Mode int

const (
	// Collecting discards output and records every type reference as an import candidate.
	Collecting Mode = iota
	// Emitting produces text, printing type references per the supplied Resolution.
	Emitting
)

func (m Mode) String() string {
	if m == Collecting {
		return "collecting"
	}
	return "emitting"
}

const (
	// DefaultIndent is two spaces.
	DefaultIndent = "  "
	// DefaultColumnLimit is the column at which wrapping points break.
	DefaultColumnLimit = 100
)

// Scope is a type declaration open on the scope stack: its simple name and the simple names of
// its member types.
type Scope struct {
	Name   string
	Nested []string
}

func (s Scope) hasNested(simpleName string) bool {
	for _, name := range s.Nested {
		if name == simpleName {
			return true
		}
	}
	return false
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the indentation unit.
func WithIndent(indent string) Option {
	return func(w *Writer) {
		w.indent = indent
	}
}

// WithColumnLimit sets the wrapping column.
func WithColumnLimit(limit int) Option {
	return func(w *Writer) {
		if limit > 0 {
			w.columnLimit = limit
		}
	}
}

// WithPackage sets the package of the file being written.
func WithPackage(packageName string) Option {
	return func(w *Writer) {
		w.packageName = packageName
	}
}

// WithStaticImports sets the explicit static imports used to shorten member references.
func WithStaticImports(statics *imports.StaticSet) Option {
	return func(w *Writer) {
		w.statics = statics
	}
}

// WithResolution sets the import decisions consulted while emitting.
func WithResolution(resolution *imports.Resolution) Option {
	return func(w *Writer) {
		w.resolution = resolution
	}
}

// WithCandidates sets the candidate set filled while collecting.
func WithCandidates(candidates *imports.CandidateSet) Option {
	return func(w *Writer) {
		w.candidates = candidates
	}
}

// Writer turns blocks into indented, wrapped Java text. It carries the scope stack and the type
// variables in scope so that type references print in their shortest unambiguous form.
// The first error is sticky: later calls are ignored and Err reports it.
type Writer struct {
	mode        Mode
	indent      string
	columnLimit int
	packageName string

	out         *sink
	builder     *strings.Builder
	wrapper     *lineWrapper
	indentLevel int

	javadoc         bool
	comment         bool
	trailingNewline bool
	statementLine   int

	scopes        []Scope
	typeVariables []string

	statics    *imports.StaticSet
	resolution *imports.Resolution
	candidates *imports.CandidateSet

	closed bool
	err    error
}

// New returns a writer in mode.
func New(mode Mode, options ...Option) *Writer {
	ret := &Writer{
		mode:          mode,
		indent:        DefaultIndent,
		columnLimit:   DefaultColumnLimit,
		statementLine: -1,
	}
	for _, option := range options {
		option(ret)
	}
	ret.out = &sink{}
	if mode == Emitting {
		ret.builder = &strings.Builder{}
		ret.out.builder = ret.builder
	}
	if mode == Collecting && ret.candidates == nil {
		ret.candidates = imports.NewCandidateSet(ret.packageName)
	}
	ret.wrapper = newLineWrapper(ret.out, ret.indent, ret.columnLimit)
	return ret
}

// Mode returns the writer mode.
func (w *Writer) Mode() Mode {
	return w.mode
}

// Indent returns the indentation unit.
func (w *Writer) Indent() string {
	return w.indent
}

// PackageName returns the package of the file being written.
func (w *Writer) PackageName() string {
	return w.packageName
}

// Candidates returns the candidates recorded so far; nil when emitting.
func (w *Writer) Candidates() *imports.CandidateSet {
	return w.candidates
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless an earlier error is already recorded.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// IndentBy increases the indentation level.
func (w *Writer) IndentBy(levels int) {
	w.indentLevel += levels
}

// UnindentBy decreases the indentation level.
func (w *Writer) UnindentBy(levels int) {
	if w.indentLevel-levels < 0 {
		w.Fail(errors.Newf("cannot unindent %d from %d", levels, w.indentLevel))
		return
	}
	w.indentLevel -= levels
}

// PushScope opens a type declaration.
func (w *Writer) PushScope(scope Scope) {
	w.scopes = append(w.scopes, scope)
}

// PopScope closes the innermost type declaration.
func (w *Writer) PopScope() {
	if len(w.scopes) == 0 {
		w.Fail(errors.New("scope stack is empty"))
		return
	}
	w.scopes = w.scopes[:len(w.scopes)-1]
}

// Scopes returns the open scopes, outermost first.
func (w *Writer) Scopes() []Scope {
	return w.scopes
}

// SuspendStatement ends statement tracking while a nested declaration is written and returns
// the state to pass to ResumeStatement.
func (w *Writer) SuspendStatement() int {
	previous := w.statementLine
	w.statementLine = -1
	return previous
}

// ResumeStatement restores the state returned by SuspendStatement.
func (w *Writer) ResumeStatement(previous int) {
	w.statementLine = previous
}

// PopTypeVariables removes names pushed by EmitTypeVariables.
func (w *Writer) PopTypeVariables(names ...string) {
	for _, name := range names {
		for i := len(w.typeVariables) - 1; i >= 0; i-- {
			if w.typeVariables[i] == name {
				w.typeVariables = append(w.typeVariables[:i], w.typeVariables[i+1:]...)
				break
			}
		}
	}
}

func (w *Writer) isTypeVariable(name string) bool {
	for _, candidate := range w.typeVariables {
		if candidate == name {
			return true
		}
	}
	return false
}

// EmitBlankLine emits an empty line unless the output already ends with one.
func (w *Writer) EmitBlankLine() {
	if w.out.endsWithBlankLine() {
		return
	}
	w.EmitAndIndent("\n")
}

// Close flushes pending wrapping decisions.
func (w *Writer) Close() error {
	if !w.closed {
		w.wrapper.close()
		w.closed = true
	}
	return w.err
}

// String returns the text written so far; empty in Collecting mode.
func (w *Writer) String() string {
	if w.builder == nil {
		return ""
	}
	return w.builder.String()
}

// EmitAndIndent writes text, indenting each new line and prefixing comment lines.
func (w *Writer) EmitAndIndent(text string) {
	if w.err != nil {
		return
	}
	if w.closed {
		w.Fail(errors.New("writer is closed"))
		return
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if (w.javadoc || w.comment) && w.trailingNewline {
				w.emitIndentation()
				if w.javadoc {
					w.wrapper.append(" *")
				} else {
					w.wrapper.append("//")
				}
			}
			w.wrapper.append("\n")
			w.trailingNewline = true
			if w.statementLine != -1 {
				if w.statementLine == 0 {
					w.IndentBy(2)
				}
				w.statementLine++
			}
		}
		if line == "" {
			continue
		}
		if w.trailingNewline {
			w.emitIndentation()
			if w.javadoc {
				w.wrapper.append(" * ")
			} else if w.comment {
				w.wrapper.append("// ")
			}
		}
		w.wrapper.append(line)
		w.trailingNewline = false
	}
}

func (w *Writer) emitIndentation() {
	for i := 0; i < w.indentLevel; i++ {
		w.wrapper.append(w.indent)
	}
}
