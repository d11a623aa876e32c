package java

import (
	"fmt"
	sitter "github.com/smacker/go-tree-sitter"
	"strings"
)

// Problem is a syntax problem found by the parser
type Problem struct {
	Line    int    // 1-based line
	Column  int    // 1-based column
	Missing bool   // true when the parser inserted a missing token, false for unparsable text
	Text    string // offending text or the expected token
}

func (p Problem) String() string {
	if p.Missing {
		return fmt.Sprintf("%d:%d: missing %s", p.Line, p.Column, p.Text)
	}
	return fmt.Sprintf("%d:%d: unexpected %q", p.Line, p.Column, p.Text)
}

// SyntaxError reports source that does not parse as Java
type SyntaxError struct {
	Problems []Problem
}

func (e *SyntaxError) Error() string {
	messages := make([]string, 0, len(e.Problems))
	for _, problem := range e.Problems {
		messages = append(messages, problem.String())
	}
	return "invalid java source: " + strings.Join(messages, "; ")
}

// syntaxProblems walks the tree collecting ERROR and MISSING nodes
func syntaxProblems(root *sitter.Node, src []byte) error {
	if !root.HasError() {
		return nil
	}
	var problems []Problem
	var visit func(node *sitter.Node)
	visit = func(node *sitter.Node) {
		point := node.StartPoint()
		switch {
		case node.IsMissing():
			problems = append(problems, Problem{Line: int(point.Row) + 1, Column: int(point.Column) + 1, Missing: true, Text: node.Type()})
			return
		case node.Type() == "ERROR":
			problems = append(problems, Problem{Line: int(point.Row) + 1, Column: int(point.Column) + 1, Text: node.Content(src)})
			return
		}
		if !node.HasError() {
			return
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			visit(node.Child(i))
		}
	}
	visit(root)
	if len(problems) == 0 {
		problems = append(problems, Problem{Line: 1, Column: 1, Text: "source"})
	}
	return &SyntaxError{Problems: problems}
}
