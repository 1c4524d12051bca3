// Package extract downloads uploaded documents and returns their plain-text
// content. PDF, DOCX and plain text are supported; anything else is rejected.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
)

var (
	// ErrDownload reports that the remote fetch did not return success.
	ErrDownload = errors.New("failed to download file")
	// ErrUnsupportedFormat reports a document that is neither PDF, DOCX nor plain text.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

type Extractor struct {
	client *resty.Client
}

func New() *Extractor {
	return &Extractor{
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// FromURL fetches the document at fileURL and returns its text content.
// Format is decided by Content-Type first, then by the URL extension.
func (e *Extractor) FromURL(ctx context.Context, fileURL string) (string, error) {
	resp, err := e.client.R().SetContext(ctx).Get(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrDownload, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	switch {
	case strings.Contains(contentType, "pdf") || hasExt(fileURL, ".pdf"):
		return FromPDF(resp.Body())
	case strings.Contains(contentType, "word") || hasExt(fileURL, ".docx"):
		return FromDOCX(resp.Body())
	case strings.Contains(contentType, "text/plain") || hasExt(fileURL, ".txt"):
		return string(resp.Body()), nil
	default:
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, contentType)
	}
}

// FromPDF concatenates the text layer of every page in page order.
func FromPDF(data []byte) (string, error) {
	reader, err := pdfmodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("failed to get page %d: %w", i, err)
		}
		ex, err := extractor.New(page)
		if err != nil {
			return "", fmt.Errorf("failed to create extractor for page %d: %w", i, err)
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		if i > 1 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}

func hasExt(fileURL, ext string) bool {
	u, err := url.Parse(fileURL)
	if err != nil {
		return strings.HasSuffix(strings.ToLower(fileURL), ext)
	}
	return strings.EqualFold(path.Ext(u.Path), ext)
}
