package main

import (
	"context"
	"sync"

	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/parse"
	"github.com/signadot/vdf-format/token"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

// document is immutable once stored; edits replace it.
type document struct {
	uri       protocol.DocumentURI
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func newDocument(uri protocol.DocumentURI, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.Parse([]byte(content), parse.MultiRoot(), parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) get(uri protocol.DocumentURI) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) remove(uri protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) update(ctx context.Context, uri protocol.DocumentURI, content string, version int32) {
	doc := newDocument(uri, content, version)
	s.docs.put(doc)
	if doc.err != nil {
		s.log.Debug("parse failed", zap.String("uri", string(uri)), zap.Error(doc.err))
	}
	s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	s.update(ctx, td.URI, td.Text, td.Version)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.update(ctx, params.TextDocument.URI, content, params.TextDocument.Version)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	if s.client != nil {
		return s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
