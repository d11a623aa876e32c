package descriptor

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/types"
	"strings"
	"unicode"
)

// typeParser parses type references such as "java.util.Map<K, ? extends java.lang.Number>[]".
type typeParser struct {
	text      string
	tokens    []string
	pos       int
	variables map[string]bool
}

// ParseType parses a type reference; names listed in variables denote type variables.
func ParseType(text string, variables ...string) (types.TypeName, error) {
	scope := map[string]bool{}
	for _, name := range variables {
		scope[name] = true
	}
	return parseType(text, scope)
}

func parseType(text string, variables map[string]bool) (types.TypeName, error) {
	p := &typeParser{text: text, tokens: tokenize(text), variables: variables}
	if len(p.tokens) == 0 {
		return nil, errors.New("empty type reference")
	}
	ret, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, errors.Newf("invalid type reference %q: unexpected %q", text, p.tokens[p.pos])
	}
	return ret, nil
}

func tokenize(text string) []string {
	var ret []string
	start := -1
	for i, r := range text {
		switch {
		case r == '.' || r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r):
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			ret = append(ret, text[start:i])
			start = -1
		}
		if !unicode.IsSpace(r) {
			ret = append(ret, string(r))
		}
	}
	if start != -1 {
		ret = append(ret, text[start:])
	}
	return ret
}

func (p *typeParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *typeParser) next() string {
	ret := p.peek()
	p.pos++
	return ret
}

func (p *typeParser) expect(token string) error {
	if actual := p.next(); actual != token {
		return errors.Newf("invalid type reference %q: expected %q but had %q", p.text, token, actual)
	}
	return nil
}

func (p *typeParser) parse() (types.TypeName, error) {
	if p.peek() == "?" {
		p.next()
		switch p.peek() {
		case "extends", "super":
			keyword := p.next()
			bound, err := p.parse()
			if err != nil {
				return nil, err
			}
			if keyword == "super" {
				return types.SupertypeOf(bound), nil
			}
			return types.SubtypeOf(bound), nil
		}
		return types.Wildcard(), nil
	}
	ret, err := p.parseName()
	if err != nil {
		return nil, err
	}
	for p.peek() == "[" {
		p.next()
		if err = p.expect("]"); err != nil {
			return nil, err
		}
		ret = types.ArrayOf(ret)
	}
	return ret, nil
}

func (p *typeParser) parseName() (types.TypeName, error) {
	name := p.next()
	if name == "" || strings.ContainsAny(name[:1], "<>,[]?") {
		return nil, errors.Newf("invalid type reference %q: expected a name but had %q", p.text, name)
	}
	if primitive, ok := types.LookupPrimitive(name); ok {
		return primitive, nil
	}
	if p.variables[name] {
		return types.VariableOf(name), nil
	}
	raw, err := types.BestGuess(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type reference %q", p.text)
	}
	if p.peek() != "<" {
		return raw, nil
	}
	p.next()
	var args []types.TypeName
	for {
		arg, err := p.parse()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek() != "," {
			break
		}
		p.next()
	}
	if err = p.expect(">"); err != nil {
		return nil, err
	}
	return types.ParameterizedOf(raw, args...), nil
}
