package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/vdf-format/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	line := int(params.Position.Line)
	col := byteCol(doc.content, line, params.Position.Character)
	node := findEntryAt(doc, line, col)
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(node),
		},
	}, nil
}

// findEntryAt returns the entry whose key starts last at or before col on
// line.
func findEntryAt(doc *document, line, col int) *ir.Node {
	var (
		best    *ir.Node
		bestCol = -1
	)
	doc.node.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if isPost || node.Parent == nil {
			return true, nil
		}
		pos := doc.positions[node]
		if pos == nil {
			return true, nil
		}
		l, c := pos.LineCol()
		if l == line && c <= col && c > bestCol {
			best, bestCol = node, c
		}
		return true, nil
	})
	return best
}

func hoverText(node *ir.Node) string {
	parts := []string{
		fmt.Sprintf("**Path:** `%s`", node.Path()),
	}
	switch node.Type {
	case ir.LeafType:
		val := node.String
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, "**Type:** leaf", fmt.Sprintf("**Value:** `%s`", val))
	case ir.NodeType:
		parts = append(parts, "**Type:** block", fmt.Sprintf("**Value:** block with %d entries", node.Len()))
	}
	return strings.Join(parts, "\n\n")
}
