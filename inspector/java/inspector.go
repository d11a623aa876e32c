package java

import (
	"context"
	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/afs"
	"github.com/viant/javagen/inspector/graph"
)

// Inspector parses Java source with tree-sitter to check it is well formed and to summarize
// its package, imports and type declarations
type Inspector struct{}

// NewInspector creates a new Java Inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

func (i *Inspector) parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse source")
	}
	return tree, nil
}

// Validate returns a *SyntaxError listing the ERROR and MISSING nodes of src, nil when src
// parses cleanly
func (i *Inspector) Validate(src []byte) error {
	tree, err := i.parse(context.Background(), src)
	if err != nil {
		return err
	}
	return syntaxProblems(tree.RootNode(), src)
}

// InspectSource parses Java source code and summarizes it. Sources with syntax errors are
// rejected with a *SyntaxError.
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(context.Background(), src, "source.java")
}

// InspectURL downloads and inspects the Java source at URL
func (i *Inspector) InspectURL(ctx context.Context, fs afs.Service, URL string) (*graph.File, error) {
	src, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", URL)
	}
	return i.inspect(ctx, src, URL)
}

func (i *Inspector) inspect(ctx context.Context, src []byte, location string) (*graph.File, error) {
	tree, err := i.parse(ctx, src)
	if err != nil {
		return nil, err
	}
	rootNode := tree.RootNode()
	if err = syntaxProblems(rootNode, src); err != nil {
		return nil, errors.Wrapf(err, "%s", location)
	}
	aFile := processJavaFile(rootNode, src, location)
	if aFile.Hash, err = graph.Hash(src); err != nil {
		return nil, err
	}
	aFile.IndexTypes()
	return aFile, nil
}

// processJavaFile extracts the package, imports and types of a compilation unit
func processJavaFile(rootNode *sitter.Node, src []byte, location string) *graph.File {
	aFile := &graph.File{Path: location}
	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		childNode := rootNode.NamedChild(j)
		switch childNode.Type() {
		case "package_declaration":
			aFile.Package = parsePackageDeclaration(childNode, src)
		case "import_declaration":
			aFile.Imports = append(aFile.Imports, parseImportDeclaration(childNode, src))
		default:
			if typ := parseTypeDeclaration(childNode, src); typ != nil {
				aFile.Types = append(aFile.Types, typ)
			}
		}
	}
	return aFile
}
