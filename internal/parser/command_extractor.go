package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
)

// CommandExtractor delegates extraction to an external program invoked
// with the file path as its single argument. The program must print a
// JSON object {"text": ..., "skills": [...]} to stdout. Non-zero exit,
// stderr diagnostics and malformed output all map to ErrParsingFailed.
type CommandExtractor struct {
	command string
	timeout time.Duration
}

func NewCommandExtractor(command string, timeout time.Duration) *CommandExtractor {
	return &CommandExtractor{command: command, timeout: timeout}
}

func (e *CommandExtractor) Parse(ctx context.Context, path string) (*Parsed, error) {

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.command, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.ParsingFailedf("extractor timed out after %v", e.timeout)
		}
		return nil, apperrors.ParsingFailedf("extractor failed: %v, stderr: %v",
			err, strings.TrimSpace(stderr.String()))
	}

	if diagnostics := strings.TrimSpace(stderr.String()); diagnostics != "" {
		return nil, apperrors.ParsingFailedf("extractor reported: %v", diagnostics)
	}

	var parsed Parsed
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		return nil, apperrors.ParsingFailedf("extractor produced malformed output: %v", err)
	}

	return &parsed, nil
}
