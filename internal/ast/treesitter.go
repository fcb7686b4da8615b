package ast

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// assignRule describes one assignment-like node shape in a grammar.
type assignRule struct {
	nodeType   string
	nameField  string
	valueField string
	// pairLists pairs the named children of both fields by index, for
	// languages with multi-assignment expression lists.
	pairLists bool
}

// tsGrammar adapts a tree-sitter language to the Grammar interface.
type tsGrammar struct {
	name        string
	lang        *sitter.Language
	rules       []assignRule
	stringTypes map[string]bool
}

func (g *tsGrammar) Language() string { return g.name }

func (g *tsGrammar) Extract(content []byte, triggers []string) ([]Candidate, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(g.lang)
	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var out []Candidate
	stack := []*sitter.Node{tree.RootNode()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < int(n.NamedChildCount()); i++ {
			stack = append(stack, n.NamedChild(i))
		}
		for _, rule := range g.rules {
			if n.Type() != rule.nodeType {
				continue
			}
			nameNode := n.ChildByFieldName(rule.nameField)
			valueNode := n.ChildByFieldName(rule.valueField)
			if nameNode == nil || valueNode == nil {
				continue
			}
			if rule.pairLists {
				out = g.appendPaired(out, content, nameNode, valueNode, triggers)
			} else {
				out = g.appendCandidate(out, content, nameNode, valueNode, triggers)
			}
		}
	}
	return out, nil
}

func (g *tsGrammar) appendPaired(out []Candidate, content []byte, names, values *sitter.Node, triggers []string) []Candidate {
	n := int(names.NamedChildCount())
	if v := int(values.NamedChildCount()); v < n {
		n = v
	}
	if n == 0 {
		// single name/value without surrounding lists
		return g.appendCandidate(out, content, names, values, triggers)
	}
	for i := 0; i < n; i++ {
		out = g.appendCandidate(out, content, names.NamedChild(i), values.NamedChild(i), triggers)
	}
	return out
}

func (g *tsGrammar) appendCandidate(out []Candidate, content []byte, nameNode, valueNode *sitter.Node, triggers []string) []Candidate {
	if !g.stringTypes[valueNode.Type()] {
		return out
	}
	name := nameNode.Content(content)
	if !MatchesTrigger(name, triggers) {
		return out
	}
	raw := valueNode.Content(content)
	inner, lead := stripQuotes(raw)
	if !usableSecret(inner) {
		return out
	}
	start := int(valueNode.StartByte()) + lead
	return append(out, Candidate{
		PatternID:   PatternIDFor(g.name),
		Language:    g.name,
		Variable:    name,
		Secret:      inner,
		SecretStart: start,
		SecretEnd:   start + len(inner),
	})
}

// stripQuotes removes surrounding quote characters and any short literal
// prefix (Python r"", f"", b""). Returns the inner text and the number of
// leading bytes removed.
func stripQuotes(s string) (string, int) {
	lead := 0
	for lead < len(s) && lead < 2 && isQuotePrefix(s[lead]) {
		lead++
	}
	if lead >= len(s) {
		return "", 0
	}
	q := s[lead]
	if q != '"' && q != '\'' && q != '`' {
		return s, 0
	}
	body := s[lead+1:]
	if len(body) > 0 && body[len(body)-1] == q {
		body = body[:len(body)-1]
	}
	return body, lead + 1
}

func isQuotePrefix(b byte) bool {
	switch b | 0x20 {
	case 'r', 'f', 'b', 'u':
		return true
	}
	return false
}

func init() {
	cLikeStrings := map[string]bool{"string": true}

	Register(&tsGrammar{
		name:        "python",
		lang:        python.GetLanguage(),
		rules:       []assignRule{{nodeType: "assignment", nameField: "left", valueField: "right"}},
		stringTypes: cLikeStrings,
	})
	jsRules := []assignRule{
		{nodeType: "variable_declarator", nameField: "name", valueField: "value"},
		{nodeType: "assignment_expression", nameField: "left", valueField: "right"},
		{nodeType: "pair", nameField: "key", valueField: "value"},
	}
	Register(&tsGrammar{
		name:        "javascript",
		lang:        javascript.GetLanguage(),
		rules:       jsRules,
		stringTypes: cLikeStrings,
	})
	Register(&tsGrammar{
		name:        "typescript",
		lang:        typescript.GetLanguage(),
		rules:       jsRules,
		stringTypes: cLikeStrings,
	})
	goStrings := map[string]bool{"interpreted_string_literal": true, "raw_string_literal": true}
	Register(&tsGrammar{
		name: "go",
		lang: golang.GetLanguage(),
		rules: []assignRule{
			{nodeType: "short_var_declaration", nameField: "left", valueField: "right", pairLists: true},
			{nodeType: "assignment_statement", nameField: "left", valueField: "right", pairLists: true},
			{nodeType: "var_spec", nameField: "name", valueField: "value", pairLists: true},
			{nodeType: "const_spec", nameField: "name", valueField: "value", pairLists: true},
		},
		stringTypes: goStrings,
	})
	Register(&tsGrammar{
		name:        "ruby",
		lang:        ruby.GetLanguage(),
		rules:       []assignRule{{nodeType: "assignment", nameField: "left", valueField: "right"}},
		stringTypes: cLikeStrings,
	})
	Register(&tsGrammar{
		name:        "java",
		lang:        java.GetLanguage(),
		rules:       []assignRule{{nodeType: "variable_declarator", nameField: "name", valueField: "value"}},
		stringTypes: map[string]bool{"string_literal": true},
	})
	Register(&tsGrammar{
		name:        "rust",
		lang:        rust.GetLanguage(),
		rules:       []assignRule{{nodeType: "let_declaration", nameField: "pattern", valueField: "value"}},
		stringTypes: map[string]bool{"string_literal": true, "raw_string_literal": true},
	})
}
