// Package gql holds GraphQL query documents and the rewrites applied to them
// for servers that predate some schema fields.
package gql

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// Document is a GraphQL document with a single named operation.
type Document struct {
	Name   string
	Source string
}

func (d *Document) String() string { return d.Name }

// Parse parses source and returns it as a Document named after its first
// operation.
func Parse(source string) (*Document, error) {
	qd, err := parser.ParseQuery(&ast.Source{Input: source})
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if len(qd.Operations) == 0 {
		return nil, fmt.Errorf("parse document: no operation defined")
	}
	return &Document{Name: qd.Operations[0].Name, Source: source}, nil
}

// MustParse is like Parse but panics on error. It is meant for package-level
// document variables.
func MustParse(source string) *Document {
	d, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return d
}

var compatCache, _ = lru.New[string, *Document](256)

// Compat returns doc with the fields named in omit removed and the fields
// named in rename renamed. Renamed fields keep their original response key
// through an alias, so the result still decodes into the same types.
func Compat(doc *Document, omit []string, rename map[string]string) (*Document, error) {
	if len(omit) == 0 && len(rename) == 0 {
		return doc, nil
	}
	key := cacheKey(doc, omit, rename)
	if cached, ok := compatCache.Get(key); ok {
		return cached, nil
	}

	qd, err := parser.ParseQuery(&ast.Source{Name: doc.Name, Input: doc.Source})
	if err != nil {
		return nil, fmt.Errorf("compat %s: %w", doc.Name, err)
	}
	omitted := make(map[string]bool, len(omit))
	for _, f := range omit {
		omitted[f] = true
	}
	for _, op := range qd.Operations {
		op.SelectionSet = rewriteSelections(op.SelectionSet, omitted, rename)
	}
	for _, frag := range qd.Fragments {
		frag.SelectionSet = rewriteSelections(frag.SelectionSet, omitted, rename)
	}
	qd.Fragments = usedFragments(qd)

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(qd)
	out := &Document{Name: doc.Name, Source: buf.String()}
	compatCache.Add(key, out)
	return out, nil
}

func rewriteSelections(set ast.SelectionSet, omit map[string]bool, rename map[string]string) ast.SelectionSet {
	out := make(ast.SelectionSet, 0, len(set))
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			if omit[s.Name] {
				continue
			}
			if to, ok := rename[s.Name]; ok {
				if s.Alias == "" {
					s.Alias = s.Name
				}
				s.Name = to
			}
			s.SelectionSet = rewriteSelections(s.SelectionSet, omit, rename)
		case *ast.InlineFragment:
			s.SelectionSet = rewriteSelections(s.SelectionSet, omit, rename)
		}
		out = append(out, sel)
	}
	return out
}

// usedFragments drops fragment definitions no operation reaches any more.
func usedFragments(qd *ast.QueryDocument) ast.FragmentDefinitionList {
	byName := make(map[string]*ast.FragmentDefinition, len(qd.Fragments))
	for _, frag := range qd.Fragments {
		byName[frag.Name] = frag
	}
	seen := make(map[string]bool)
	var visit func(set ast.SelectionSet)
	visit = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch s := sel.(type) {
			case *ast.Field:
				visit(s.SelectionSet)
			case *ast.InlineFragment:
				visit(s.SelectionSet)
			case *ast.FragmentSpread:
				if seen[s.Name] {
					continue
				}
				seen[s.Name] = true
				if frag, ok := byName[s.Name]; ok {
					visit(frag.SelectionSet)
				}
			}
		}
	}
	for _, op := range qd.Operations {
		visit(op.SelectionSet)
	}

	out := make(ast.FragmentDefinitionList, 0, len(qd.Fragments))
	for _, frag := range qd.Fragments {
		if seen[frag.Name] {
			out = append(out, frag)
		}
	}
	return out
}

func cacheKey(doc *Document, omit []string, rename map[string]string) string {
	o := slices.Clone(omit)
	slices.Sort(o)
	r := make([]string, 0, len(rename))
	for from, to := range rename {
		r = append(r, from+"="+to)
	}
	slices.Sort(r)
	return strings.Join([]string{doc.Source, strings.Join(o, ","), strings.Join(r, ",")}, "\x00")
}
