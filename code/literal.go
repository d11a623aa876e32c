package code

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// IsKeyword reports whether s is a reserved word or literal.
func IsKeyword(s string) bool {
	return keywords[s]
}

// IsIdentifier reports whether s is a legal Java identifier that is not a keyword.
func IsIdentifier(s string) bool {
	if s == "" || keywords[s] {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
			continue
		}
		if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$' ||
		unicode.In(r, unicode.Sc, unicode.Pc, unicode.Nl)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd)
}

// MemberName returns the leading identifier of text, e.g. "valueOf" for "valueOf(x)".
func MemberName(text string) string {
	for i, r := range text {
		if i == 0 && !isIdentifierStart(r) {
			return ""
		}
		if !isIdentifierPart(r) {
			return text[:i]
		}
	}
	return text
}

// StartsWithIdentifier reports whether text begins with an identifier start character.
func StartsWithIdentifier(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	return size > 0 && isIdentifierStart(r)
}

// CharLiteral returns the body of a character literal for r, without quotes.
func CharLiteral(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '"':
		return `"`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	}
	if unicode.IsControl(r) {
		return fmt.Sprintf(`\u%04x`, r)
	}
	return string(r)
}

// StringLiteral returns value as a double-quoted Java string literal. Embedded newlines split
// the literal into concatenated lines indented twice by indent.
func StringLiteral(value, indent string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	for i, r := range value {
		switch r {
		case '\'':
			sb.WriteByte('\'')
			continue
		case '"':
			sb.WriteString(`\"`)
			continue
		}
		sb.WriteString(CharLiteral(r))
		if r == '\n' && i+1 < len(value) {
			sb.WriteString("\"\n")
			sb.WriteString(indent)
			sb.WriteString(indent)
			sb.WriteString("+ \"")
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
