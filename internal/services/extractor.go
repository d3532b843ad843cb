package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-analyzer/pkg/errors"
)

type ExtractorService interface {
	ExtractFromFile(filePath string) (string, error)
	ExtractFromURL(ctx context.Context, docURL string) (string, error)
}

type extractorService struct {
	httpClient *http.Client
}

func NewExtractorService(fetchTimeout time.Duration) ExtractorService {
	return &extractorService{
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

// ExtractFromFile converts a document on disk to plain text based on
// its extension. Anything that goes wrong surfaces as a single
// extraction error with the underlying cause; there are no partial
// results.
func (e *extractorService) ExtractFromFile(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return e.extractPDF(filePath)
	case ".docx", ".doc":
		return e.extractDOCX(filePath)
	default:
		return "", errors.Extraction(fmt.Sprintf("Unsupported file format: %s", filepath.Ext(filePath)), nil)
	}
}

// extractPDF concatenates the text of every page in document order.
// Adjacent page texts may run together: no separator is inserted
// between pages, which is a known fidelity loss.
func (e *extractorService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", errors.Extraction("Error extracting PDF", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

// extractDOCX reads the document container and walks its body XML.
// Paragraph text comes first, then every table's cell text; see
// extractDocumentXML for the ordering contract.
func (e *extractorService) extractDOCX(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", errors.Extraction("Error extracting DOCX", err)
	}
	defer doc.Close()

	text, err := extractDocumentXML(doc.Editable().GetContent())
	if err != nil {
		return "", errors.Extraction("Error extracting DOCX", err)
	}
	return text, nil
}

// ExtractFromURL fetches a remote document and converts it to plain
// text. Google Docs share links resolve to their PDF export; URLs that
// end in a supported document extension are downloaded as-is. Anything
// else is rejected. Spooled files are removed on every exit path.
func (e *extractorService) ExtractFromURL(ctx context.Context, docURL string) (string, error) {
	if strings.Contains(docURL, "docs.google.com") {
		return e.extractGoogleDoc(ctx, docURL)
	}
	if ext := documentExtension(docURL); ext != "" {
		return e.extractFileURL(ctx, docURL, ext)
	}
	return "", errors.Extraction("Unsupported URL format", nil)
}

// documentExtension returns the extension a URL ends with when it is
// one the extractor can handle, or "" otherwise.
func documentExtension(docURL string) string {
	lower := strings.ToLower(docURL)
	for _, ext := range []string{".pdf", ".docx", ".doc"} {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

// extractGoogleDoc resolves a share link to its PDF export, fetches it
// with a bounded timeout and delegates to the PDF path.
func (e *extractorService) extractGoogleDoc(ctx context.Context, docURL string) (string, error) {
	if !strings.Contains(docURL, "docs.google.com/document") {
		return "", errors.Extraction("Invalid Google Docs URL", nil)
	}

	parts := strings.SplitN(docURL, "/d/", 2)
	if len(parts) < 2 {
		return "", errors.Extraction("Invalid Google Docs URL", nil)
	}
	docID := strings.SplitN(parts[1], "/", 2)[0]
	if docID == "" {
		return "", errors.Extraction("Invalid Google Docs URL", nil)
	}

	exportURL := fmt.Sprintf("https://docs.google.com/document/d/%s/export?format=pdf", docID)

	tmpPath, err := e.downloadToTemp(ctx, exportURL, "resume-*.pdf")
	if err != nil {
		return "", errors.Extraction("Error extracting from Google Docs", err)
	}
	defer os.Remove(tmpPath)

	return e.extractPDF(tmpPath)
}

// extractFileURL downloads a direct document link, spools it with the
// matching extension and delegates to the file path.
func (e *extractorService) extractFileURL(ctx context.Context, docURL, ext string) (string, error) {
	tmpPath, err := e.downloadToTemp(ctx, docURL, "resume-*"+ext)
	if err != nil {
		return "", errors.Extraction("Error downloading file from URL", err)
	}
	defer os.Remove(tmpPath)

	return e.ExtractFromFile(tmpPath)
}

// downloadToTemp fetches a URL into a fresh temp file and returns its
// path. The caller owns removal; on error nothing is left behind.
func (e *extractorService) downloadToTemp(ctx context.Context, fetchURL, namePattern string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", namePattern)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}
