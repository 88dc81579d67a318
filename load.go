package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// loadDocuments parses every listed path, converting and laying out
// each tree up front so nothing recomputes during interaction. Failures
// are logged per file and collected; processing always continues to
// the next path so one run reports every bad input.
func loadDocuments(paths []string, logger *log.Logger) ([]Document, []error) {
	var docs []Document
	var errs []error
	for _, path := range paths {
		doc, err := loadDocument(path)
		if err != nil {
			logger.Error("skipping input", "path", path, "err", err)
			errs = append(errs, err)
			continue
		}
		logger.Debug("loaded document", "file", doc.Filename, "nodes", doc.NodeCount)
		docs = append(docs, doc)
	}
	return docs, errs
}

// loadDocument reads, parses, and lays out one markup file.
func loadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("file not found: %s", path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	root, err := parseTree(data)
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", path, err)
	}

	placed := layoutTree(root)
	return Document{
		Filename:  displayName(path),
		Root:      placed,
		NodeCount: countPlaced(placed),
	}, nil
}

// displayName turns a generated dump name like "Main_18293.xml" into
// the source name "Main.jack". Names without an underscore pass
// through unchanged.
func displayName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '_'); i >= 0 {
		return base[:i] + ".jack"
	}
	return base
}
