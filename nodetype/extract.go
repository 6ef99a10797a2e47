package nodetype

import (
	"strconv"
	"strings"
)

// ignoreKeyDepth is the number of leading key levels dropped from every id.
// The first level of a NodeType file is the node type name itself.
const ignoreKeyDepth = 1

// ExtractIDs returns the dotted key paths of all string scalars in tree
// that equal magic, in document order. The top-level key is not part of
// the path. Ids are returned raw, before Normalize.
func ExtractIDs(tree *Node, magic string) []string {
	var ids []string
	extractIDs(tree, "", ignoreKeyDepth, magic, &ids)
	return ids
}

// extractIDs walks node. Once a key path exists and ignoreDepth is still
// positive, the path collected so far is discarded and ignoreDepth drops
// by one, which strips that many leading key levels.
func extractIDs(node *Node, keyPath string, ignoreDepth int, magic string, ids *[]string) {
	if node == nil {
		return
	}

	if keyPath != "" && ignoreDepth > 0 {
		keyPath = ""
		ignoreDepth--
	}

	switch node.Kind {
	case ScalarNode:
		if node.IsString() && node.Value == magic && keyPath != "" {
			*ids = append(*ids, keyPath)
		}
	case MappingNode:
		for _, p := range node.Pairs {
			extractIDs(p.Value, joinKey(keyPath, p.Key), ignoreDepth, magic, ids)
		}
	case SequenceNode:
		for i, item := range node.Items {
			extractIDs(item, joinKey(keyPath, strconv.Itoa(i)), ignoreDepth, magic, ids)
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// NameParts derives the output name parts of a document from its first
// top-level key, e.g. "Vendor.Site:Content.Headline" -> [Content Headline].
// The part after the first ':' is used, or the whole key when there is no
// prefix. ok is false when tree is not a mapping or the name is empty.
func NameParts(tree *Node) (parts []string, ok bool) {
	if tree == nil || tree.Kind != MappingNode || len(tree.Pairs) == 0 {
		return nil, false
	}
	return splitName(tree.Pairs[0].Key)
}

// splitName splits a fully qualified node type name into path parts.
func splitName(name string) ([]string, bool) {
	name = strings.TrimSpace(name)
	if _, after, found := strings.Cut(name, ":"); found {
		name = after
	}

	var parts []string
	for _, p := range strings.Split(name, ".") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts, len(parts) > 0
}
