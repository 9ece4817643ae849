package main

import (
	"context"
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/signadot/vdf-format/token"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.client == nil {
		return
	}
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diagnose(doc),
	})
	if err != nil {
		s.log.Warn("publish diagnostics", zap.String("uri", string(doc.uri)), zap.Error(err))
	}
}

func diagnose(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "vdf",
	}
	var pe *token.ParseError
	if errors.As(doc.err, &pe) {
		d.Message = pe.Err.Error()
		line, col := pe.Pos.LineCol()
		start := lspPosition(doc.content, line, col)
		end := start
		end.Character++
		d.Range = protocol.Range{Start: start, End: end}
	}
	return append(diagnostics, d)
}

// lspPosition converts a line and byte column to an LSP position, whose
// character offset counts UTF-16 code units.
func lspPosition(content string, line, col int) protocol.Position {
	ln := lineAt(content, line)
	col = min(col, len(ln))
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(ln[:col])),
	}
}

// byteCol converts an LSP character offset on line to a byte column.
func byteCol(content string, line int, char uint32) int {
	ln := lineAt(content, line)
	n := uint32(0)
	for i, r := range ln {
		if n >= char {
			return i
		}
		n += uint32(utf16.RuneLen(r))
	}
	return len(ln)
}

func lineAt(content string, line int) string {
	for range line {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			return ""
		}
		content = content[i+1:]
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
