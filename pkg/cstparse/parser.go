// Package cstparse builds a types.CstNode tree from source text using
// tree-sitter grammars. It generalizes the node classification this
// project's ancestor used for flat top-level entity extraction into a full
// recursive descent over the parse tree.
package cstparse

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/odvcencio/mergecraft/pkg/types"
)

// ParseError reports why source could not be turned into a CstNode tree.
type ParseError struct {
	Language types.Language
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cstparse: %s: %s", e.Language, e.Reason)
}

// LanguageError is returned when the requested language has no registered
// grammar.
type LanguageError struct {
	Language types.Language
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("cstparse: unsupported language %s", e.Language)
}

func grammarFor(lang types.Language) *sitter.Language {
	switch lang {
	case types.LangGo:
		return golang.GetLanguage()
	case types.LangPython:
		return python.GetLanguage()
	case types.LangJavaScript:
		return javascript.GetLanguage()
	case types.LangTypeScript:
		return typescript.GetLanguage()
	case types.LangJava:
		return java.GetLanguage()
	case types.LangC:
		return c.GetLanguage()
	case types.LangCpp:
		return cpp.GetLanguage()
	case types.LangRust:
		return rust.GetLanguage()
	default:
		return nil
	}
}

// unorderedKinds lists tree-sitter node type names whose children are
// semantically a set or multiset rather than a sequence: reordering them
// does not change program meaning, so the matcher and amalgamator treat
// them with union/multiset semantics instead of positional alignment.
var unorderedKinds = map[string]bool{
	"import_declaration":  true,
	"import_spec_list":    true,
	"import_list":         true,
	"import_statement":    true,
	"imports":             true,
	"use_declaration":     true,
	"use_declaration_list": true,
	"use_list":            true,
	"class_body":          true,
	"enum_body":           true,
	"interface_body":      true,
	"declaration_list":    true,
	"field_declaration_list": true,
}

// listKindNames, together with the kind substrings checked in looksLikeList,
// classify a node as a List (variable-arity) rather than Constructed
// (fixed-arity) container.
var listKindNames = map[string]bool{
	"program":           true,
	"source_file":       true,
	"module":            true,
	"translation_unit":  true,
}

func looksLikeList(kind string, childCount int) bool {
	if listKindNames[kind] {
		return true
	}
	if unorderedKinds[kind] {
		return true
	}
	for _, part := range []string{"list", "block", "body", "statements", "arguments", "parameters"} {
		if strings.Contains(kind, part) {
			return true
		}
	}
	return childCount > 3
}

// Parse parses source as lang and returns the root CstNode. gen assigns
// node ids; callers that want reproducible ids across calls should pass a
// freshly reset or newly constructed generator.
func Parse(source []byte, lang types.Language, gen *types.IDGen) (*types.CstNode, error) {
	grammar := grammarFor(lang)
	if grammar == nil {
		return nil, &LanguageError{Language: lang}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, &ParseError{Language: lang, Reason: err.Error()}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &ParseError{Language: lang, Reason: "empty parse tree"}
	}
	if root.HasError() {
		return nil, &ParseError{Language: lang, Reason: "syntax error in source"}
	}

	return buildNode(root, source, gen), nil
}

func buildNode(n *sitter.Node, source []byte, gen *types.IDGen) *types.CstNode {
	childCount := int(n.ChildCount())

	if childCount == 0 {
		return types.NewLeaf(gen.Next(), n.Type(), n.Content(source))
	}

	children := make([]*types.CstNode, 0, childCount)
	for i := 0; i < childCount; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		children = append(children, buildNode(child, source, gen))
	}

	kind := n.Type()
	if looksLikeList(kind, childCount) {
		ordering := types.Ordered
		if unorderedKinds[kind] {
			ordering = types.Unordered
		}
		return types.NewList(gen.Next(), kind, ordering, children)
	}
	return types.NewConstructed(gen.Next(), kind, children)
}
