package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/opencollegedata/cds-extract/internal/common"
)

// PDFIngestor reads native-text PDFs. Pages that fail text extraction are
// skipped rather than failing the document; a document whose every page
// fails still yields an empty Document, and the engine degrades to zero
// defaults from there.
type PDFIngestor struct {
	logger *slog.Logger
}

func NewPDFIngestor(logger *slog.Logger) *PDFIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFIngestor{logger: logger}
}

// Ingest loads all text and per-page row tables from the PDF at path.
func (i *PDFIngestor) Ingest(ctx context.Context, path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, common.NewAppError("PDF_OPEN", fmt.Sprintf("failed to open %s", path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			i.logger.Warn("ingest.pdf.close", "path", path, "err", cerr)
		}
	}()

	doc := &Document{}
	var pages []string
	for pageNo := 1; pageNo <= r.NumPage(); pageNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(pageNo)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			i.logger.Warn("ingest.pdf.page_text", "path", path, "page", pageNo, "err", err)
		} else if text != "" {
			pages = append(pages, Normalize(text))
		}

		table, err := pageTable(page)
		if err != nil {
			i.logger.Warn("ingest.pdf.page_rows", "path", path, "page", pageNo, "err", err)
			continue
		}
		if len(table) > 0 {
			doc.Tables = append(doc.Tables, table)
		}
	}

	doc.Text = strings.Join(pages, "\n")
	i.logger.Debug("ingest.pdf.ok",
		"path", path, "pages", r.NumPage(),
		"text_bytes", len(doc.Text), "tables", len(doc.Tables),
	)
	return doc, nil
}

// pageTable synthesizes one table per page from the page's text rows.
// Each horizontal fragment becomes a cell; this is loosely structured on
// purpose, the scanner only needs keyword presence and numeric tokens.
func pageTable(page pdf.Page) (Table, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}
	var table Table
	for _, row := range rows {
		var cells []string
		for _, text := range row.Content {
			cells = append(cells, Normalize(text.S))
		}
		if len(cells) > 0 {
			table = append(table, cells)
		}
	}
	return table, nil
}
