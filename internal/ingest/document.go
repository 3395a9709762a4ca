package ingest

import "context"

// Table is a loosely structured grid of cell strings. Cells the source
// could not resolve are normalized to "" at the ingestion boundary.
type Table [][]string

// Document is the read-only view of one source document the extraction
// engine consumes: the full text with page boundaries joined by newlines,
// and every table found across all pages.
type Document struct {
	Text   string
	Tables []Table
}

// Ingestor turns a document file into a Document.
type Ingestor interface {
	Ingest(ctx context.Context, path string) (*Document, error)
}
