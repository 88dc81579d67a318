package main

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange rejects a selection outside the loaded set.
	ErrIndexOutOfRange = errors.New("document index out of range")

	// ErrNoDocuments means zero inputs survived loading.
	ErrNoDocuments = errors.New("no valid documents loaded")
)

// Document is one loaded input file with its positioned tree. It is
// created at load time and never mutated afterwards.
type Document struct {
	Filename  string
	Root      *PlacedNode
	NodeCount int
}

// DocumentSet holds every loaded document in input order and tracks
// which one is active.
type DocumentSet struct {
	docs   []Document
	active int
}

func NewDocumentSet(docs []Document) *DocumentSet {
	return &DocumentSet{docs: docs}
}

func (s *DocumentSet) Len() int { return len(s.docs) }

// Active returns the active document, or nil when the set is empty.
func (s *DocumentSet) Active() *Document {
	if len(s.docs) == 0 {
		return nil
	}
	return &s.docs[s.active]
}

func (s *DocumentSet) ActiveIndex() int { return s.active }

// At returns document i, or nil when i is out of range.
func (s *DocumentSet) At(i int) *Document {
	if i < 0 || i >= len(s.docs) {
		return nil
	}
	return &s.docs[i]
}

// SetActive selects document i. An out-of-range index is rejected and
// leaves the current selection untouched; the caller is responsible
// for resetting the camera after a successful switch.
func (s *DocumentSet) SetActive(i int) error {
	if i < 0 || i >= len(s.docs) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.docs))
	}
	s.active = i
	return nil
}

// Names returns the display names of all documents in input order.
func (s *DocumentSet) Names() []string {
	names := make([]string, len(s.docs))
	for i, d := range s.docs {
		names[i] = d.Filename
	}
	return names
}
