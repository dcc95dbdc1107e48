package parser

import "context"

// Parsed is the structured output of resume extraction.
type Parsed struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}

// Extractor turns an uploaded resume file into structured data. Callers
// own the file and must remove it regardless of the outcome.
type Extractor interface {
	Parse(ctx context.Context, path string) (*Parsed, error)
}
