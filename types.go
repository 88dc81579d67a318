package main

// Mode is the viewer's top-level input mode.
type Mode int

const (
	ModeView   Mode = iota // pan/zoom/navigate the active tree
	ModeSelect             // document selector list
)

// model is the single-threaded session state: every pointer, scroll,
// and selection event mutates it synchronously and bubbletea redraws
// on the next frame. The positioned trees inside docs are immutable;
// only the camera and selection change during interaction.
type model struct {
	width  int
	height int

	mode Mode
	help bool

	config *Config
	docs   *DocumentSet
	camera Camera
	canvas *Canvas

	// selected is the keyboard-navigation cursor within the active
	// tree; nil when the set is empty.
	selected *PlacedNode

	// selectIndex is the cursor in ModeSelect.
	selectIndex int

	statusMessage string
	errorMessage  string
}

func newViewerModel(config *Config, docs *DocumentSet) model {
	m := model{
		width:  80,
		height: 24,
		config: config,
		docs:   docs,
		canvas: NewCanvas(),
	}
	m.resetCamera()
	if doc := docs.Active(); doc != nil {
		m.selected = doc.Root
	}
	return m
}
