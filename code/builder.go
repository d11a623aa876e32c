package code

// Builder accumulates templates into a Block. The first FormatError is kept and returned by
// Build; later calls are ignored once an error is recorded.
type Builder struct {
	block Block
	err   error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a template.
func (b *Builder) Add(format string, args ...Arg) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.block.add(format, args)
	return b
}

// AddStatement appends a statement terminated by ";" and a newline. Continuation lines of a
// wrapped statement are indented twice.
func (b *Builder) AddStatement(format string, args ...Arg) *Builder {
	b.Add("$[")
	b.Add(format, args...)
	return b.Add(";\n$]")
}

// AddComment appends a single line comment.
func (b *Builder) AddComment(format string, args ...Arg) *Builder {
	b.Add("// ")
	b.Add(format, args...)
	return b.Add("\n")
}

// BeginControlFlow opens a control flow block such as "if (x == 5)".
func (b *Builder) BeginControlFlow(controlFlow string, args ...Arg) *Builder {
	b.Add(controlFlow+" {\n", args...)
	return b.Indent()
}

// NextControlFlow closes the current branch and opens another, e.g. "else if (x == 10)".
func (b *Builder) NextControlFlow(controlFlow string, args ...Arg) *Builder {
	b.Unindent()
	b.Add("} "+controlFlow+" {\n", args...)
	return b.Indent()
}

// EndControlFlow closes the current control flow block.
func (b *Builder) EndControlFlow() *Builder {
	b.Unindent()
	return b.Add("}\n")
}

// EndControlFlowWith closes a block with a trailing clause, e.g. "while (more)" of a do loop.
func (b *Builder) EndControlFlowWith(controlFlow string, args ...Arg) *Builder {
	b.Unindent()
	return b.Add("} "+controlFlow+";\n", args...)
}

// Indent increases the indentation level of subsequent lines.
func (b *Builder) Indent() *Builder {
	return b.Add("$>")
}

// Unindent decreases the indentation level of subsequent lines.
func (b *Builder) Unindent() *Builder {
	return b.Add("$<")
}

// AddBlock appends the parts and arguments of another block.
func (b *Builder) AddBlock(block *Block) *Builder {
	if b.err != nil || block == nil {
		return b
	}
	b.block.parts = append(b.block.parts, block.parts...)
	b.block.args = append(b.block.args, block.args...)
	return b
}

// IsEmpty reports whether nothing has been added.
func (b *Builder) IsEmpty() bool {
	return len(b.block.parts) == 0
}

// Err returns the first recorded error.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the accumulated block.
func (b *Builder) Build() (*Block, error) {
	if b.err != nil {
		return nil, b.err
	}
	parts := make([]string, len(b.block.parts))
	copy(parts, b.block.parts)
	args := make([]Arg, len(b.block.args))
	copy(args, b.block.args)
	return &Block{parts: parts, args: args}, nil
}
