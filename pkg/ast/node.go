// Package ast defines the positioned syntax tree for the stepmark dialect.
// It provides:
// - Position/Location: exact byte, line, and column spans
// - Node: a tagged tree element, either a container or a leaf
// - Walk and find helpers for read-only traversal
package ast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level stepmark elements.
const (
	// Block-level nodes.
	NodeDocument NodeKind = iota
	NodeAlgorithm
	NodeOrderedList
	NodeUnorderedList
	NodeListItem
	NodeFragment

	// Inline-level nodes.
	NodeEmphasis      // *text*
	NodeStrong        // _text_
	NodeCodeSpan      // `text`
	NodeStrikethrough // ~text~
	NodeVariable      // |name|

	// Leaf nodes carrying raw or decoded content.
	NodeText
	NodeBreak // single linebreak inside a paragraph
	NodeTag
	NodeComment
	NodeOpaqueTag
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "document"
	case NodeAlgorithm:
		return "algorithm"
	case NodeOrderedList:
		return "ordered-list"
	case NodeUnorderedList:
		return "unordered-list"
	case NodeListItem:
		return "list-item"
	case NodeFragment:
		return "fragment"
	case NodeEmphasis:
		return "emphasis"
	case NodeStrong:
		return "strong"
	case NodeCodeSpan:
		return "code-span"
	case NodeStrikethrough:
		return "strikethrough"
	case NodeVariable:
		return "variable"
	case NodeText:
		return "text"
	case NodeBreak:
		return "break"
	case NodeTag:
		return "tag"
	case NodeComment:
		return "comment"
	case NodeOpaqueTag:
		return "opaque-tag"
	default:
		return "unknown"
	}
}

// Node represents a single node in the stepmark AST.
// The tree is pure: children are exclusively owned by their parent and no
// node holds a back-reference. A node's Loc fully contains the Locs of all
// its children; sibling Locs are ordered and non-overlapping.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Loc is the source span from the first consumed token's start to the
	// last consumed token's end.
	Loc Location

	// Children holds child nodes in source order. Only container kinds
	// have children.
	Children []*Node

	// Text holds the content for leaf kinds: decoded text for NodeText,
	// the raw source slice for NodeTag, NodeComment, and NodeOpaqueTag,
	// and the consumed newlines for NodeBreak.
	Text string

	// ID is the attached [id="..."] attribute value for NodeListItem.
	// Empty when the item has no id.
	ID string
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeAlgorithm, NodeOrderedList, NodeUnorderedList,
		NodeListItem, NodeFragment:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeEmphasis, NodeStrong, NodeCodeSpan, NodeStrikethrough, NodeVariable,
		NodeText, NodeBreak, NodeTag, NodeComment, NodeOpaqueTag:
		return true
	default:
		return false
	}
}

// IsLeaf returns true if this node carries raw content instead of children.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case NodeText, NodeBreak, NodeTag, NodeComment, NodeOpaqueTag:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// FirstChild returns the first child, or nil if the node has none.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the last child, or nil if the node has none.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// NewNode creates a new node of the specified kind.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AppendChild appends a child node and extends the parent's span to cover
// it. A parent whose start was never assigned adopts the first child's
// start; an assigned start is always a valid position and is kept even at
// offset zero.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	if len(parent.Children) == 0 && !parent.Loc.Start.IsValid() {
		parent.Loc.Start = child.Loc.Start
	}
	parent.Children = append(parent.Children, child)
	if child.Loc.End.Offset > parent.Loc.End.Offset {
		parent.Loc.End = child.Loc.End
	}
}
