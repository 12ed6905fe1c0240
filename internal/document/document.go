// Package document loads input files and prepares them for the extraction
// engine: images become base64 payloads, HTML and PDF become plain text.
package document

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Kind identifies the payload shape handed to the extraction engine.
type Kind string

const (
	KindImage Kind = "image"
	KindHTML  Kind = "html-text"
	KindPDF   Kind = "pdf-text"
)

// IsText reports whether the payload carries decoded plain text.
func (k Kind) IsText() bool {
	return k == KindHTML || k == KindPDF
}

// Payload is the prepared content of one document. Text is set for text
// kinds; ImageB64 and ImageSubtype for image kind.
type Payload struct {
	Kind         Kind
	Text         string
	ImageB64     string
	ImageSubtype string // media subtype for the data URI, e.g. "png", "jpeg"
}

// Loader turns document files into extraction payloads. PDFs go through the
// pdftotext CLI tool.
type Loader struct {
	pdfToTextPath string
}

// NewLoader creates a Loader. pdfToTextPath overrides the pdftotext binary
// location; empty means resolve "pdftotext" from PATH.
func NewLoader(pdfToTextPath string) *Loader {
	if pdfToTextPath == "" {
		pdfToTextPath = "pdftotext"
	}
	return &Loader{pdfToTextPath: pdfToTextPath}
}

// Load reads the file at path and prepares its payload based on the file
// extension. Supported: .jpg, .jpeg, .png, .html, .pdf.
func (l *Loader) Load(ctx context.Context, path string) (*Payload, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "jpg", "jpeg", "png":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "document: read image %s", path)
		}
		return &Payload{
			Kind:         KindImage,
			ImageB64:     base64.StdEncoding.EncodeToString(raw),
			ImageSubtype: ext,
		}, nil

	case "html":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "document: read html %s", path)
		}
		return &Payload{
			Kind: KindHTML,
			Text: StripHTML(string(raw)),
		}, nil

	case "pdf":
		text, err := l.pdfText(ctx, path)
		if err != nil {
			return nil, err
		}
		return &Payload{
			Kind: KindPDF,
			Text: text,
		}, nil

	default:
		return nil, eris.Errorf("document: unsupported file type %q for %s", ext, path)
	}
}

// pdfText runs pdftotext -layout on the given PDF and returns stdout.
func (l *Loader) pdfText(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, l.pdfToTextPath, "-layout", path, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", eris.Wrapf(err, "document: pdftotext failed for %s: %s", path, stderr.String())
	}

	return stdout.String(), nil
}
