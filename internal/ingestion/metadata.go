package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Input formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Metadata describes one ingested input file
type Metadata struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Hash   string `json:"hash"`
	Chars  int    `json:"chars"`
}

// ReadFile reads a resume or job file and returns its cleaned text.
// .html and .htm files are converted with HTMLToText.
func ReadFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := FormatText
	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		format = FormatHTML
		if text, err = HTMLToText(string(content)); err != nil {
			return "", nil, fmt.Errorf("failed to convert %s: %w", path, err)
		}
	default:
		text = CleanText(string(content))
	}

	return text, &Metadata{
		Path:   path,
		Format: format,
		Hash:   computeHash(text),
		Chars:  utf8.RuneCountInString(text),
	}, nil
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
