package writer

import (
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/types"
	"strings"
)

// Emit parses format against args and emits the resulting block.
func (w *Writer) Emit(format string, args ...code.Arg) {
	if w.err != nil {
		return
	}
	block, err := code.Of(format, args...)
	if err != nil {
		w.Fail(err)
		return
	}
	w.EmitBlock(block, false)
}

// EmitBlock expands the placeholders of block. With ensureTrailingNewline, a newline is added
// when the output does not already end with one.
func (w *Writer) EmitBlock(block *code.Block, ensureTrailingNewline bool) {
	if w.err != nil || block == nil {
		return
	}
	parts := block.Parts()
	args := block.Args()
	a := 0
	var deferred *types.ClassName
	for i, part := range parts {
		switch part {
		case "$L":
			w.emitLiteral(args[a])
			a++
		case "$N":
			w.EmitAndIndent(args[a].Text())
			a++
		case "$S":
			arg := args[a]
			a++
			if arg.IsNull() {
				w.EmitAndIndent("null")
				continue
			}
			w.EmitAndIndent(code.StringLiteral(arg.Text(), w.indent))
		case "$T":
			typeName := args[a].Type()
			a++
			if className, ok := typeName.(types.ClassName); ok && i+1 < len(parts) &&
				!strings.HasPrefix(parts[i+1], "$") && w.statics.HasOwner(className) {
				deferred = &className
				continue
			}
			w.EmitType(typeName)
		case "$$":
			w.EmitAndIndent("$")
		case "$>":
			w.IndentBy(1)
		case "$<":
			w.UnindentBy(1)
		case "$[":
			if w.statementLine != -1 {
				w.Fail(code.NewFormatError(strings.Join(parts, ""), "statement enter $[ followed by statement enter $["))
				return
			}
			w.statementLine = 0
		case "$]":
			if w.statementLine == -1 {
				w.Fail(code.NewFormatError(strings.Join(parts, ""), "statement exit $] has no matching statement enter $["))
				return
			}
			if w.statementLine > 0 {
				w.UnindentBy(2)
			}
			w.statementLine = -1
		case "$W":
			w.wrapper.wrappingSpace(w.indentLevel + 2)
		case "$Z":
			w.wrapper.zeroWidthSpace(w.indentLevel + 2)
		default:
			if deferred != nil {
				owner := *deferred
				deferred = nil
				if strings.HasPrefix(part, ".") && w.emitStaticImportMember(owner, part) {
					continue
				}
				w.EmitType(owner)
			}
			w.EmitAndIndent(part)
		}
		if w.err != nil {
			return
		}
	}
	if ensureTrailingNewline && w.out.lastChar() != '\n' {
		w.EmitAndIndent("\n")
	}
}

func (w *Writer) emitLiteral(arg code.Arg) {
	if block, ok := arg.Block(); ok {
		w.EmitBlock(block, false)
		return
	}
	w.EmitAndIndent(arg.Text())
}

// emitStaticImportMember prints ".member..." as "member..." when member is statically imported.
func (w *Writer) emitStaticImportMember(owner types.ClassName, part string) bool {
	withoutDot := part[1:]
	if !code.StartsWithIdentifier(withoutDot) {
		return false
	}
	if !w.statics.Covers(owner, code.MemberName(withoutDot)) {
		return false
	}
	w.EmitAndIndent(withoutDot)
	return true
}

// EmitComment emits block as "//" line comments followed by a newline.
func (w *Writer) EmitComment(block *code.Block) {
	w.trailingNewline = true
	w.comment = true
	w.EmitBlock(block, false)
	w.EmitAndIndent("\n")
	w.comment = false
}

// EmitJavadoc emits block as a "/** ... */" comment. Empty blocks emit nothing.
func (w *Writer) EmitJavadoc(block *code.Block) {
	if block.IsEmpty() {
		return
	}
	w.EmitAndIndent("/**\n")
	w.javadoc = true
	w.EmitBlock(block, true)
	w.javadoc = false
	w.EmitAndIndent(" */\n")
}
