package writer

import (
	"strings"
	"unicode/utf8"
)

type flushType int

const (
	flushNone flushType = iota
	flushWrap
	flushSpace
	flushEmpty
)

// sink receives finished text and remembers the last two characters written.
type sink struct {
	builder *strings.Builder
	tail    [2]byte
}

func (s *sink) write(text string) {
	if text == "" {
		return
	}
	if s.builder != nil {
		s.builder.WriteString(text)
	}
	if len(text) == 1 {
		s.tail[0], s.tail[1] = s.tail[1], text[0]
		return
	}
	s.tail[0], s.tail[1] = text[len(text)-2], text[len(text)-1]
}

func (s *sink) lastChar() byte {
	return s.tail[1]
}

func (s *sink) endsWithBlankLine() bool {
	return s.tail[0] == '\n' && s.tail[1] == '\n'
}

// lineWrapper defers the whitespace placed by wrapping points until it knows whether the text
// that follows fits within the column limit.
type lineWrapper struct {
	out         *sink
	indent      string
	columnLimit int
	buffer      strings.Builder
	column      int
	indentLevel int
	nextFlush   flushType
}

func newLineWrapper(out *sink, indent string, columnLimit int) *lineWrapper {
	return &lineWrapper{out: out, indent: indent, columnLimit: columnLimit, indentLevel: -1}
}

func (l *lineWrapper) append(text string) {
	if l.nextFlush != flushNone {
		nextNewline := strings.IndexByte(text, '\n')
		if nextNewline == -1 && l.column+utf8.RuneCountInString(text) <= l.columnLimit {
			l.buffer.WriteString(text)
			l.column += utf8.RuneCountInString(text)
			return
		}
		wrap := nextNewline == -1 || l.column+utf8.RuneCountInString(text[:nextNewline]) > l.columnLimit
		if wrap {
			l.flush(flushWrap)
		} else {
			l.flush(l.nextFlush)
		}
	}
	l.out.write(text)
	if lastNewline := strings.LastIndexByte(text, '\n'); lastNewline != -1 {
		l.column = utf8.RuneCountInString(text[lastNewline+1:])
		return
	}
	l.column += utf8.RuneCountInString(text)
}

// wrappingSpace emits a space, or a newline followed by indentLevel indents when the text up
// to the next wrapping point does not fit.
func (l *lineWrapper) wrappingSpace(indentLevel int) {
	if l.nextFlush != flushNone {
		l.flush(l.nextFlush)
	}
	l.column++
	l.nextFlush = flushSpace
	l.indentLevel = indentLevel
}

// zeroWidthSpace emits nothing, or a newline with indentation when the following text does not fit.
func (l *lineWrapper) zeroWidthSpace(indentLevel int) {
	if l.column == 0 {
		return
	}
	if l.nextFlush != flushNone {
		l.flush(l.nextFlush)
	}
	l.nextFlush = flushEmpty
	l.indentLevel = indentLevel
}

func (l *lineWrapper) close() {
	if l.nextFlush != flushNone {
		l.flush(l.nextFlush)
	}
}

func (l *lineWrapper) flush(kind flushType) {
	switch kind {
	case flushWrap:
		l.out.write("\n")
		for i := 0; i < l.indentLevel; i++ {
			l.out.write(l.indent)
		}
		l.column = l.indentLevel*utf8.RuneCountInString(l.indent) + utf8.RuneCountInString(l.buffer.String())
	case flushSpace:
		l.out.write(" ")
	}
	l.out.write(l.buffer.String())
	l.buffer.Reset()
	l.indentLevel = -1
	l.nextFlush = flushNone
}
