package document

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	TypePlain = "text/plain"
	TypePDF   = "application/pdf"
	TypeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedType = errors.New("unsupported document type")

// DetectType resolves the declared content type, falling back to the file
// extension when the upload is generic.
func DetectType(filename, contentType string) string {
	ct := strings.TrimSpace(contentType)
	if ct != "" {
		if parsed, _, err := mime.ParseMediaType(ct); err == nil {
			ct = parsed
		}
	}
	switch ct {
	case TypePlain, TypePDF, TypeDOCX:
		return ct
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text", ".md":
		return TypePlain
	case ".pdf":
		return TypePDF
	case ".docx":
		return TypeDOCX
	}
	return ct
}

func ExtractText(contentType string, data []byte) (string, error) {
	switch contentType {
	case TypePlain:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("plain text is not valid utf-8")
		}
		return string(data), nil

	case TypePDF:
		return extractPDFText(data)

	case TypeDOCX:
		return extractDocxText(data)

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripXMLTags(doc.Editable().GetContent()), nil
}

// stripXMLTags turns the raw document.xml body into plain text, breaking lines
// at paragraph ends.
func stripXMLTags(s string) string {
	s = strings.ReplaceAll(s, "</w:p>", "\n")

	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return html.UnescapeString(sb.String())
}
