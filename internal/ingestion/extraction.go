package ingestion

import (
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted for résumé uploads.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypeText = "text/plain"
)

// ExtractText decodes the résumé document at path according to its MIME
// type and returns the plain text content.
func ExtractText(path string, mimeType string) (string, error) {
	switch mimeType {
	case MIMETypePDF:
		return extractPDF(path)
	case MIMETypeDOCX:
		return extractDOCX(path)
	case MIMETypeText:
		return extractPlain(path)
	default:
		return "", &ExtractionError{Path: path, Message: "unsupported file type: " + mimeType}
	}
}

// DetectType infers a résumé MIME type from a file extension. Used by the
// CLI, where no upload header is available.
func DetectType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return MIMETypePDF
	case ".docx":
		return MIMETypeDOCX
	case ".txt":
		return MIMETypeText
	default:
		return ""
	}
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages with broken font maps are skipped rather than failing
		// the whole document.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = reader.Close() }()

	return docxContentToText(reader.Editable().GetContent()), nil
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read text file", Cause: err}
	}
	return string(data), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// docxContentToText converts the document.xml markup returned by the docx
// library into plain text: paragraph ends become newlines, remaining tags
// are dropped, entities are unescaped.
func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
