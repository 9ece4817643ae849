package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/vdf-format/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

// formatEdits returns a single edit replacing the whole of doc with its
// canonical rendering, or none when doc does not parse or is canonical.
func formatEdits(doc *document) []protocol.TextEdit {
	if doc.node == nil {
		return nil
	}
	var buf bytes.Buffer
	nl := encode.TrailingNewline(strings.HasSuffix(doc.content, "\n"))
	if err := encode.Encode(doc.node, &buf, nl); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	last := strings.Count(doc.content, "\n")
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(last),
					Character: uint32(utf16Len(lineAt(doc.content, last))),
				},
			},
			NewText: formatted,
		},
	}
}
