package main

import (
	"errors"
	"testing"
)

func testDocumentSet(t *testing.T, names ...string) *DocumentSet {
	t.Helper()
	docs := make([]Document, len(names))
	for i, name := range names {
		root, err := parseTree([]byte(`<class><keyword>class</keyword></class>`))
		if err != nil {
			t.Fatalf("parseTree: %v", err)
		}
		placed := layoutTree(root)
		docs[i] = Document{Filename: name, Root: placed, NodeCount: countPlaced(placed)}
	}
	return NewDocumentSet(docs)
}

func testConfig() *Config {
	return &Config{
		ZoomMin:     defaultZoomMin,
		ZoomMax:     defaultZoomMax,
		WheelFactor: defaultWheelFactor,
	}
}

func TestDocumentSetActive(t *testing.T) {
	s := testDocumentSet(t, "Main.jack", "Square.jack", "Ball.jack")

	if s.ActiveIndex() != 0 {
		t.Errorf("initial active = %d, want 0", s.ActiveIndex())
	}
	if err := s.SetActive(2); err != nil {
		t.Fatalf("SetActive(2): %v", err)
	}
	if got := s.Active().Filename; got != "Ball.jack" {
		t.Errorf("active = %q, want Ball.jack", got)
	}
}

func TestDocumentSetOutOfRange(t *testing.T) {
	s := testDocumentSet(t, "Main.jack", "Square.jack")
	s.SetActive(1)

	for _, i := range []int{-1, 2, 99} {
		err := s.SetActive(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetActive(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
		if s.ActiveIndex() != 1 {
			t.Errorf("SetActive(%d) moved active to %d", i, s.ActiveIndex())
		}
	}
}

func TestDocumentSetEmpty(t *testing.T) {
	s := NewDocumentSet(nil)
	if s.Active() != nil {
		t.Error("Active() on empty set should be nil")
	}
	if s.At(0) != nil {
		t.Error("At(0) on empty set should be nil")
	}
}

func TestDocumentSetNames(t *testing.T) {
	s := testDocumentSet(t, "Main.jack", "Square.jack")
	names := s.Names()
	if len(names) != 2 || names[0] != "Main.jack" || names[1] != "Square.jack" {
		t.Errorf("Names() = %v", names)
	}
}

func TestSwitchResetsCamera(t *testing.T) {
	m := newViewerModel(testConfig(), testDocumentSet(t, "Main.jack", "Square.jack"))

	m.camera.PanX = 999
	m.camera.Scale = 3

	m.setActiveDocument(1)

	if m.camera.PanX != initialPanX || m.camera.Scale != initialScale {
		t.Errorf("camera not reset after switch: %+v", m.camera)
	}
	if m.selected != m.docs.Active().Root {
		t.Error("selection should move to the new document's root")
	}
}

func TestFailedSwitchLeavesCamera(t *testing.T) {
	m := newViewerModel(testConfig(), testDocumentSet(t, "Main.jack"))

	m.camera.PanX = 999
	m.camera.Scale = 3

	m.setActiveDocument(5)

	if m.camera.PanX != 999 || m.camera.Scale != 3 {
		t.Errorf("failed switch changed camera: %+v", m.camera)
	}
	if m.docs.ActiveIndex() != 0 {
		t.Errorf("failed switch changed active to %d", m.docs.ActiveIndex())
	}
	if m.errorMessage == "" {
		t.Error("failed switch should set an error message")
	}
}
