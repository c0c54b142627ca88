package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// allowedExtensions lists the CV document formats the inspector accepts.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// ErrUnsupportedFormat indicates a CV file with an extension outside the
// allowed set.
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format %q: only pdf, docx and txt are allowed", e.Ext)
}

// AllowedFile reports whether filename carries a supported CV extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// DocumentText extracts plain text from a CV document given its filename and
// raw bytes. A corrupt or unreadable document degrades to an empty string
// with the error reported; scoring on empty text is a defined, low-scoring
// outcome rather than a failure.
func DocumentText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return CleanText(string(data)), nil
	default:
		return "", &ErrUnsupportedFormat{Ext: filepath.Ext(filename)}
	}
}

// DocumentTextFromFile reads path and extracts its plain text.
func DocumentTextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read CV file: %w", err)
	}
	return DocumentText(path, data)
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return CleanText(buf.String()), nil
}

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// docxText pulls text out of the main document part of a DOCX archive.
// Paragraph closes become newlines before all remaining tags are stripped;
// crude, but enough for keyword matching.
func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var docXML []byte
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document.xml: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("no document.xml found in DOCX")
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTags.ReplaceAllString(text, " ")
	return CleanText(text), nil
}
