package parser

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	log "github.com/sirupsen/logrus"
	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/skills"
)

// DocumentExtractor parses resumes in-process, handling pdf, docx and
// plain text files. Skills are derived from the extracted text with the
// keyword matcher.
type DocumentExtractor struct {
	vocabulary *skills.Vocabulary
}

func NewDocumentExtractor(vocabulary *skills.Vocabulary) *DocumentExtractor {
	return &DocumentExtractor{vocabulary: vocabulary}
}

func (e *DocumentExtractor) Parse(ctx context.Context, path string) (*Parsed, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.ParsingFailedf("failed to read file: %v", err)
	}

	var text string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		text = string(data)
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		return nil, apperrors.ParsingFailedf("unsupported file type: %v", filepath.Ext(path))
	}

	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ParsingFailedf("document contains no extractable text")
	}

	return &Parsed{
		Text:   text,
		Skills: e.vocabulary.Match(text),
	}, nil
}

func extractPDFText(data []byte) (string, error) {

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.ParsingFailedf("failed to read pdf: %v", err)
	}

	var builder strings.Builder
	var pageErr error
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pageErr = err
			log.Warnf("failed to extract pdf page %d: %v", i, err)
			continue
		}
		builder.WriteString(text)
	}

	if builder.Len() == 0 && pageErr != nil {
		return "", apperrors.ParsingFailedf("failed to extract any pdf page: %v", pageErr)
	}
	return builder.String(), nil
}

func extractDocxText(data []byte) (string, error) {

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.ParsingFailedf("failed to parse docx: %v", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
