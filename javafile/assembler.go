package javafile

import (
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/imports"
	"github.com/viant/javagen/writer"
	"go.uber.org/zap"
)

// Phase is a step of assembling one file.
type Phase int

const (
	// Collecting walks the declaration tree without output, recording type references.
	Collecting Phase = iota
	// Resolving decides short and qualified names and the import lines.
	Resolving
	// Emitting walks the same tree again, producing text.
	Emitting
	// Done holds the finished text.
	Done
)

func (p Phase) String() string {
	switch p {
	case Collecting:
		return "collecting"
	case Resolving:
		return "resolving"
	case Emitting:
		return "emitting"
	}
	return "done"
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger receiving phase transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithPhaseListener registers fn to be called on entering each phase.
func WithPhaseListener(fn func(file *File, phase Phase)) Option {
	return func(a *Assembler) {
		a.listeners = append(a.listeners, fn)
	}
}

// Assembler renders files in two passes over the declaration tree. It holds no per-file state
// and may be shared by goroutines rendering different files.
type Assembler struct {
	logger    *zap.Logger
	listeners []func(file *File, phase Phase)
}

// NewAssembler returns an assembler.
func NewAssembler(options ...Option) *Assembler {
	ret := &Assembler{logger: zap.NewNop()}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func (a *Assembler) enter(file *File, phase Phase) {
	a.logger.Debug("assembling", zap.String("file", file.Path()), zap.Stringer("phase", phase))
	for _, listener := range a.listeners {
		listener(file, phase)
	}
}

// Assemble returns the source text of file.
func (a *Assembler) Assemble(file *File) (string, error) {
	if err := file.Validate(); err != nil {
		return "", err
	}
	statics := imports.NewStaticSet(file.StaticImports...)
	options := a.writerOptions(file, statics)

	a.enter(file, Collecting)
	candidates := imports.NewCandidateSet(file.PackageName)
	collector := writer.New(writer.Collecting, append(options, writer.WithCandidates(candidates))...)
	emitFile(collector, file, nil)
	if err := collector.Close(); err != nil {
		return "", err
	}

	a.enter(file, Resolving)
	resolution := imports.Resolve(candidates, statics, imports.Options{SkipImplicitNamespaceImports: file.SkipJavaLangImports})
	a.logger.Debug("resolved imports",
		zap.String("file", file.Path()),
		zap.Int("candidates", candidates.Len()),
		zap.Int("imports", len(resolution.TypeImports())),
		zap.Int("staticImports", len(resolution.StaticImports())))

	a.enter(file, Emitting)
	emitter := writer.New(writer.Emitting, append(options, writer.WithResolution(resolution))...)
	emitFile(emitter, file, resolution)
	if err := emitter.Close(); err != nil {
		return "", err
	}

	a.enter(file, Done)
	return emitter.String(), nil
}

func (a *Assembler) writerOptions(file *File, statics *imports.StaticSet) []writer.Option {
	ret := []writer.Option{writer.WithPackage(file.PackageName), writer.WithStaticImports(statics)}
	if file.Indent != "" {
		ret = append(ret, writer.WithIndent(file.Indent))
	}
	if file.ColumnLimit > 0 {
		ret = append(ret, writer.WithColumnLimit(file.ColumnLimit))
	}
	return ret
}

// emitFile writes the comment, package clause, imports and root type. Both passes run it; only
// the emitting pass has a resolution to print import lines from.
func emitFile(w *writer.Writer, file *File, resolution *imports.Resolution) {
	if !file.Comment.IsEmpty() {
		w.EmitComment(file.Comment)
	}
	if file.PackageName != "" {
		w.Emit("package $L;\n", code.L(file.PackageName))
		w.EmitBlankLine()
	}
	if statics := imports.NewStaticSet(file.StaticImports...).Sorted(); len(statics) > 0 {
		for _, imp := range statics {
			w.Emit("import static $L;\n", code.L(imp.String()))
		}
		w.EmitBlankLine()
	}
	if resolution != nil {
		typeImports := resolution.TypeImports()
		for _, imp := range typeImports {
			w.Emit("import $L;\n", code.L(imp.CanonicalName()))
		}
		if len(typeImports) > 0 {
			w.EmitBlankLine()
		}
	}
	file.Type.Emit(w)
}
