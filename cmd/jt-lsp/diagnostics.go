package main

import (
	"context"
	"errors"
	"sync"

	"github.com/jsontree/go-jsontree/debug"
	"github.com/jsontree/go-jsontree/ir"
	"github.com/jsontree/go-jsontree/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32

	// root is the zero Handle when the last parse failed; parseErr
	// then carries the failure.
	root     ir.Handle
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	root, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		root:     root,
		parseErr: err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("publishing %d diagnostics for %s\n", len(diagnostics), uri)
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.parseErr == nil {
		return diagnostics
	}

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.parseErr.Error(),
		Source:   "jt",
	}

	// parse errors carry zero-based line and column, which is what
	// LSP positions use
	var serr *parse.SyntaxError
	if errors.As(doc.parseErr, &serr) {
		diagnostic.Message = serr.Msg
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(serr.Line),
				Character: uint32(serr.Col),
			},
			End: protocol.Position{
				Line:      uint32(serr.Line),
				Character: uint32(serr.Col + 1),
			},
		}
	}

	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// sync is negotiated incremental, so every change carries a range;
	// a range at the very end of the document is an append
	content := doc.content
	for _, change := range params.ContentChanges {
		start := lineColToOffset(content, int(change.Range.Start.Line), int(change.Range.Start.Character))
		end := lineColToOffset(content, int(change.Range.End.Line), int(change.Range.End.Character))
		if start > end {
			continue
		}
		content = content[:start] + change.Text + content[end:]
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset maps a zero-based line and rune column to the byte
// offset it starts at. Positions past the end of content map to
// len(content).
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
