package code

import (
	"strconv"
	"strings"
)

// Block is a parsed template: literal text parts interleaved with placeholder parts
// ("$L", "$S", "$T", "$N" and control tokens), and the arguments consumed by the placeholders
// in order. A block is immutable once built and may be emitted any number of times.
type Block struct {
	parts []string
	args  []Arg
}

// Parts returns the format parts.
func (b *Block) Parts() []string {
	return b.parts
}

// Args returns the arguments, one per consuming placeholder part.
func (b *Block) Args() []Arg {
	return b.args
}

// IsEmpty reports whether the block has no parts.
func (b *Block) IsEmpty() bool {
	return b == nil || len(b.parts) == 0
}

// Of parses format against args.
func Of(format string, args ...Arg) (*Block, error) {
	block := &Block{}
	if err := block.add(format, args); err != nil {
		return nil, err
	}
	return block, nil
}

// MustOf is Of for templates known to be valid; it panics on a FormatError.
func MustOf(format string, args ...Arg) *Block {
	block, err := Of(format, args...)
	if err != nil {
		panic(err)
	}
	return block
}

// Join concatenates blocks with separator, which is parsed as a template without arguments.
func Join(blocks []*Block, separator string) (*Block, error) {
	builder := NewBuilder()
	for i, block := range blocks {
		if i > 0 {
			builder.Add(separator)
		}
		builder.AddBlock(block)
	}
	return builder.Build()
}

func isNoArgToken(c byte) bool {
	switch c {
	case '$', '>', '<', '[', ']', 'W', 'Z':
		return true
	}
	return false
}

func (b *Block) add(format string, args []Arg) error {
	hasIndexed := false
	relative := 0
	for p := 0; p < len(format); {
		if format[p] != '$' {
			next := strings.IndexByte(format[p+1:], '$')
			end := len(format)
			if next != -1 {
				end = p + 1 + next
			}
			b.parts = append(b.parts, format[p:end])
			p = end
			continue
		}
		p++
		indexStart := p
		for p < len(format) && format[p] >= '0' && format[p] <= '9' {
			p++
		}
		indexEnd := p
		if p >= len(format) {
			return formatErrorf(format, "dangling format characters")
		}
		c := format[p]
		p++

		if isNoArgToken(c) {
			if indexStart != indexEnd {
				return formatErrorf(format, "$$, $>, $<, $[, $], $W, and $Z may not have an index")
			}
			b.parts = append(b.parts, "$"+string(c))
			continue
		}
		switch c {
		case 'L', 'S', 'T', 'N':
		default:
			return formatErrorf(format, "invalid format token $%c", c)
		}

		var index int
		if indexStart < indexEnd {
			position, err := strconv.Atoi(format[indexStart:indexEnd])
			if err != nil {
				return formatErrorf(format, "invalid index %s", format[indexStart:indexEnd])
			}
			index = position - 1
			hasIndexed = true
			if index < 0 || index >= len(args) {
				return formatErrorf(format, "index %d for $%c is out of range, %d arguments supplied", position, c, len(args))
			}
		} else {
			if hasIndexed {
				return formatErrorf(format, "unindexed $%c follows an indexed placeholder", c)
			}
			index = relative
			relative++
			if index >= len(args) {
				return formatErrorf(format, "too few arguments, $%c at position %d", c, index+1)
			}
		}

		arg := args[index]
		if reason := arg.mismatch(c); reason != "" {
			return formatErrorf(format, "argument %d: %s", index+1, reason)
		}
		b.parts = append(b.parts, "$"+string(c))
		b.args = append(b.args, arg)
	}
	return nil
}
