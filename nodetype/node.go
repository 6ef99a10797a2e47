// Package nodetype scans NodeType definition files for fields carrying the
// translation magic value and turns each such field into a translation id.
//
// A NodeType file is a YAML mapping keyed by fully qualified node type names:
//
//	'Vendor.Site:Content.Headline':
//	  ui:
//	    label: i18n
//	  properties:
//	    title:
//	      ui:
//	        label: i18n
//
// yields the document name parts ["Content", "Headline"] and the ids
// "ui.label" and "properties.title".
package nodetype

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Document tree
// ---------------------------------------------------------------------------

// Kind identifies the shape of a Node.
type Kind int

const (
	// ScalarNode is a leaf value.
	ScalarNode Kind = iota
	// SequenceNode is an ordered list of nodes.
	SequenceNode
	// MappingNode is an ordered list of key/value pairs.
	MappingNode
)

// Node is a parsed document tree. Exactly one of the payload fields is
// meaningful, selected by Kind.
type Node struct {
	Kind Kind

	// Value and Tag are set for ScalarNode. Tag is the resolved YAML tag
	// (e.g. "!!str", "!!int", "!!bool", "!!null").
	Value string
	Tag   string

	// Items is set for SequenceNode.
	Items []*Node

	// Pairs is set for MappingNode, in document order.
	Pairs []Pair
}

// Pair is one mapping entry.
type Pair struct {
	Key   string
	Value *Node
}

// IsString reports whether n is a string scalar.
func (n *Node) IsString() bool {
	return n != nil && n.Kind == ScalarNode && (n.Tag == "" || n.Tag == "!!str")
}

// Str builds a string scalar.
func Str(v string) *Node {
	return &Node{Kind: ScalarNode, Value: v, Tag: "!!str"}
}

// Seq builds a sequence.
func Seq(items ...*Node) *Node {
	return &Node{Kind: SequenceNode, Items: items}
}

// Map builds a mapping from pairs.
func Map(pairs ...Pair) *Node {
	return &Node{Kind: MappingNode, Pairs: pairs}
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// Parser turns raw file content into a document tree. A nil tree with a
// nil error means the content holds no usable document.
type Parser interface {
	Parse(data []byte) (*Node, error)
}

// YAMLParser parses YAML with gopkg.in/yaml.v3.
type YAMLParser struct{}

// Parse implements Parser. Only the first document of a multi-document
// stream is used; empty and null documents yield nil.
func (YAMLParser) Parse(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := convert(doc.Content[0], 0)
	if root == nil || (root.Kind == ScalarNode && root.Tag == "!!null") {
		return nil, nil
	}
	return root, nil
}

// maxAliasDepth bounds alias resolution so self-referencing anchors
// cannot recurse forever.
const maxAliasDepth = 64

// convert maps a yaml.Node onto the Node model, resolving aliases and
// '<<' merge keys.
func convert(n *yaml.Node, depth int) *Node {
	if n == nil || depth > maxAliasDepth {
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return convert(n.Content[0], depth)

	case yaml.AliasNode:
		return convert(n.Alias, depth+1)

	case yaml.ScalarNode:
		return &Node{Kind: ScalarNode, Value: n.Value, Tag: n.ShortTag()}

	case yaml.SequenceNode:
		out := &Node{Kind: SequenceNode}
		for _, item := range n.Content {
			if c := convert(item, depth); c != nil {
				out.Items = append(out.Items, c)
			}
		}
		return out

	case yaml.MappingNode:
		out := &Node{Kind: MappingNode}
		var merged []Pair
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]

			if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
				merged = append(merged, mergePairs(valNode, depth)...)
				continue
			}

			val := convert(valNode, depth)
			if val == nil {
				continue
			}
			out.Pairs = append(out.Pairs, Pair{Key: keyNode.Value, Value: val})
		}
		// Explicit keys win over merged ones.
		for _, p := range merged {
			if out.lookup(p.Key) == nil {
				out.Pairs = append(out.Pairs, p)
			}
		}
		return out
	}
	return nil
}

// mergePairs returns the pairs contributed by a '<<' value, which is a
// mapping (usually an alias) or a sequence of mappings.
func mergePairs(n *yaml.Node, depth int) []Pair {
	v := convert(n, depth)
	if v == nil {
		return nil
	}
	switch v.Kind {
	case MappingNode:
		return v.Pairs
	case SequenceNode:
		var pairs []Pair
		for _, item := range v.Items {
			if item.Kind == MappingNode {
				pairs = append(pairs, item.Pairs...)
			}
		}
		return pairs
	}
	return nil
}

// lookup returns the value stored under key in a mapping node.
func (n *Node) lookup(key string) *Node {
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}
