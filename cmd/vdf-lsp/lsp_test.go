package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const sample = "\"Example\"\n{\n\t\"thing\"\t\"hello\"\n\t\"n\"\t\"69\"\n}\n"

func TestDiagnose(t *testing.T) {
	ok := newDocument("file:///ok.vdf", sample, 1)
	if d := diagnose(ok); len(d) != 0 {
		t.Errorf("expected no diagnostics, got %v", d)
	}
	bad := newDocument("file:///bad.vdf", "\"a\"\n{\n\t\"b\"\n}", 1)
	d := diagnose(bad)
	if len(d) != 1 {
		t.Fatalf("expected one diagnostic, got %v", d)
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 3, Character: 0},
		End:   protocol.Position{Line: 3, Character: 1},
	}
	if diff := cmp.Diff(want, d[0].Range); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLSPPosition(t *testing.T) {
	content := "\"é😀\" \"x\"\n\"b\""
	// byte column 7 is the closing quote of the key
	got := lspPosition(content, 0, 7)
	if got.Character != 4 {
		t.Errorf("got %d want 4", got.Character)
	}
	if c := byteCol(content, 0, 4); c != 7 {
		t.Errorf("got %d want 7", c)
	}
	if c := byteCol(content, 1, 10); c != 3 {
		t.Errorf("got %d want 3", c)
	}
}

func TestHover(t *testing.T) {
	doc := newDocument("file:///ok.vdf", sample, 1)
	tests := []struct {
		line, col int
		want      string
	}{
		{line: 2, col: 10, want: "**Path:** `$.Example.thing`\n\n**Type:** leaf\n\n**Value:** `hello`"},
		{line: 0, col: 0, want: "**Path:** `$.Example`\n\n**Type:** block\n\n**Value:** block with 2 entries"},
		{line: 1, col: 0},
	}
	for _, tt := range tests {
		node := findEntryAt(doc, tt.line, tt.col)
		got := ""
		if node != nil {
			got = hoverText(node)
		}
		if got != tt.want {
			t.Errorf("%d:%d got %q want %q", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestFormatEdits(t *testing.T) {
	doc := newDocument("file:///x.vdf", "\"a\" { \"b\" \"c\" }\n", 1)
	edits := formatEdits(doc)
	if len(edits) != 1 {
		t.Fatalf("expected one edit, got %v", edits)
	}
	if got, want := edits[0].NewText, "\"a\"\n{\n\t\"b\"\t\"c\"\n}\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := edits[0].Range.End; got.Line != 1 || got.Character != 0 {
		t.Errorf("bad end %v", got)
	}
	canon := newDocument("file:///y.vdf", sample, 1)
	if edits := formatEdits(canon); edits == nil || len(edits) != 0 {
		t.Errorf("expected empty edits, got %v", edits)
	}
	broken := newDocument("file:///z.vdf", "\"a\" {", 1)
	if edits := formatEdits(broken); edits != nil {
		t.Errorf("expected nil, got %v", edits)
	}
}

func TestSemanticTokens(t *testing.T) {
	toks := semanticTokens(sample)
	want := []semToken{
		{line: 0, char: 0, length: 9, typ: semProperty},
		{line: 1, char: 0, length: 1, typ: semOperator},
		{line: 2, char: 1, length: 7, typ: semProperty},
		{line: 2, char: 9, length: 7, typ: semString},
		{line: 3, char: 1, length: 3, typ: semProperty},
		{line: 3, char: 5, length: 4, typ: semNumber},
		{line: 4, char: 0, length: 1, typ: semOperator},
	}
	if diff := cmp.Diff(want, toks, cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	data := encodeSemanticTokens(toks[2:4], 0, 10)
	if diff := cmp.Diff([]uint32{2, 1, 7, semProperty, 0, 0, 8, 7, semString, 0}, data); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestServerDocuments(t *testing.T) {
	s := newServer(zap.NewNop())
	ctx := context.Background()
	uri := protocol.DocumentURI("file:///doc.vdf")
	err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sample, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: strings.Replace(sample, "hello", "bye", 1)},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	h, err := s.Hover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 2, Character: 10},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil || !strings.Contains(h.Contents.Value, "`bye`") {
		t.Errorf("unexpected hover %v", h)
	}
	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get(uri) != nil {
		t.Error("document not removed")
	}
}
