package java

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/javagen/inspector/graph"
)

// parsePackageDeclaration extracts the package name
func parsePackageDeclaration(node *sitter.Node, source []byte) string {
	nameNode := node.NamedChild(0)
	if nameNode == nil {
		return ""
	}
	return nameNode.Content(source)
}

// parseImportDeclaration extracts an import, noting static and wildcard forms
func parseImportDeclaration(node *sitter.Node, source []byte) graph.Import {
	ret := graph.Import{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "static":
			ret.Static = true
		case "asterisk":
			ret.Wildcard = true
		case "identifier", "scoped_identifier":
			ret.Path = child.Content(source)
		}
	}
	return ret
}

var typeKinds = map[string]string{
	"class_declaration":           "class",
	"interface_declaration":       "interface",
	"enum_declaration":            "enum",
	"annotation_type_declaration": "annotation",
}

// parseTypeDeclaration extracts a type declaration and its members, nil for other nodes
func parseTypeDeclaration(node *sitter.Node, source []byte) *graph.Type {
	kind, ok := typeKinds[node.Type()]
	if !ok {
		return nil
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	typ := &graph.Type{
		Name:     nameNode.Content(source),
		Kind:     kind,
		Location: location(node),
	}
	typ.Modifiers, typ.Annotations = parseModifiers(node, source)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "superclass":
			typ.Extends = append(typ.Extends, typeNames(child, source)...)
		case "extends_interfaces":
			typ.Extends = append(typ.Extends, typeNames(child, source)...)
		case "super_interfaces":
			typ.Implements = append(typ.Implements, typeNames(child, source)...)
		}
	}

	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		parseBody(typ, bodyNode, source)
	}
	return typ
}

func parseBody(typ *graph.Type, bodyNode *sitter.Node, source []byte) {
	for i := 0; i < int(bodyNode.NamedChildCount()); i++ {
		child := bodyNode.NamedChild(i)
		switch child.Type() {
		case "enum_constant":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				typ.Constants = append(typ.Constants, nameNode.Content(source))
			}
		case "enum_body_declarations":
			parseBody(typ, child, source)
		case "field_declaration", "constant_declaration":
			typ.Fields = append(typ.Fields, parseFieldDeclaration(child, source)...)
		case "method_declaration", "annotation_type_element_declaration":
			typ.Methods = append(typ.Methods, parseMethodDeclaration(child, source))
		case "constructor_declaration":
			method := parseMethodDeclaration(child, source)
			method.Constructor = true
			typ.Methods = append(typ.Methods, method)
		default:
			if nested := parseTypeDeclaration(child, source); nested != nil {
				typ.Types = append(typ.Types, nested)
			}
		}
	}
}

// parseFieldDeclaration returns one field per declarator
func parseFieldDeclaration(node *sitter.Node, source []byte) []*graph.Field {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	modifiers, _ := parseModifiers(node, source)
	var ret []*graph.Field
	for i := 0; i < int(node.NamedChildCount()); i++ {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		ret = append(ret, &graph.Field{
			Name:      nameNode.Content(source),
			Type:      typeNode.Content(source),
			Modifiers: modifiers,
			Location:  location(node),
		})
	}
	return ret
}

// parseMethodDeclaration extracts a method, constructor or annotation element
func parseMethodDeclaration(node *sitter.Node, source []byte) *graph.Function {
	method := &graph.Function{Location: location(node)}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		method.Name = nameNode.Content(source)
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		method.Result = typeNode.Content(source)
	}
	method.Modifiers, _ = parseModifiers(node, source)

	if parametersNode := node.ChildByFieldName("parameters"); parametersNode != nil {
		for i := 0; i < int(parametersNode.NamedChildCount()); i++ {
			if parameter := parseParameter(parametersNode.NamedChild(i), source); parameter != nil {
				method.Parameters = append(method.Parameters, parameter)
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "throws" {
			method.Throws = typeNames(child, source)
		}
	}
	return method
}

func parseParameter(node *sitter.Node, source []byte) *graph.Parameter {
	switch node.Type() {
	case "formal_parameter":
		typeNode := node.ChildByFieldName("type")
		nameNode := node.ChildByFieldName("name")
		if typeNode == nil || nameNode == nil {
			return nil
		}
		return &graph.Parameter{Name: nameNode.Content(source), Type: typeNode.Content(source)}
	case "spread_parameter":
		ret := &graph.Parameter{Variadic: true}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			switch child.Type() {
			case "modifiers":
			case "variable_declarator":
				if nameNode := child.ChildByFieldName("name"); nameNode != nil {
					ret.Name = nameNode.Content(source)
				}
			default:
				if ret.Type == "" {
					ret.Type = child.Content(source)
				}
			}
		}
		return ret
	}
	return nil
}

// parseModifiers returns the keyword modifiers and the annotations of a declaration
func parseModifiers(node *sitter.Node, source []byte) (modifiers []string, annotations []string) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		modifiersNode := node.NamedChild(i)
		if modifiersNode.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(modifiersNode.ChildCount()); j++ {
			child := modifiersNode.Child(j)
			switch child.Type() {
			case "marker_annotation", "annotation":
				annotations = append(annotations, child.Content(source))
			default:
				if !child.IsNamed() {
					modifiers = append(modifiers, child.Content(source))
				}
			}
		}
	}
	return modifiers, annotations
}

// typeNames returns the types listed under a superclass, interfaces or throws clause
func typeNames(node *sitter.Node, source []byte) []string {
	var ret []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "type_list" {
			ret = append(ret, typeNames(child, source)...)
			continue
		}
		ret = append(ret, child.Content(source))
	}
	return ret
}

func location(node *sitter.Node) *graph.Location {
	return &graph.Location{
		Start: int(node.StartByte()),
		End:   int(node.EndByte()),
		Line:  int(node.StartPoint().Row) + 1,
	}
}
