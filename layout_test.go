package main

import (
	"fmt"
	"testing"
)

func sampleTree(t *testing.T) *Node {
	t.Helper()
	root, err := parseTree([]byte(`<class>
  <keyword>class</keyword>
  <subroutineDec>
    <keyword>function</keyword>
    <returnStatement>
      <keyword>return</keyword>
      <symbol>;</symbol>
    </returnStatement>
  </subroutineDec>
  <symbol>}</symbol>
</class>`))
	if err != nil {
		t.Fatalf("parseTree: %v", err)
	}
	return root
}

func TestLayoutLeafSlots(t *testing.T) {
	placed := layoutTree(sampleTree(t))

	var leafOrders []float64
	walkPlaced(placed, func(n *PlacedNode) {
		if len(n.Children) == 0 {
			leafOrders = append(leafOrders, n.Order)
		}
	})

	// Leaves take consecutive slots in document order.
	for i, o := range leafOrders {
		if o != float64(i) {
			t.Errorf("leaf %d order = %v, want %d", i, o, i)
		}
	}
}

func TestLayoutCoordinates(t *testing.T) {
	placed := layoutTree(sampleTree(t))

	walkPlaced(placed, func(n *PlacedNode) {
		if wantX := float64(n.Depth) * levelSpacing; n.X != wantX {
			t.Errorf("%s: X = %v, want %v", n.Label, n.X, wantX)
		}
		if wantY := n.Order * siblingSpacing; n.Y != wantY {
			t.Errorf("%s: Y = %v, want %v", n.Label, n.Y, wantY)
		}
	})
}

func TestLayoutParentCentersOverChildren(t *testing.T) {
	placed := layoutTree(sampleTree(t))

	walkPlaced(placed, func(n *PlacedNode) {
		if len(n.Children) == 0 {
			return
		}
		sum := 0.0
		for _, c := range n.Children {
			sum += c.Order
		}
		if want := sum / float64(len(n.Children)); n.Order != want {
			t.Errorf("%s: order = %v, want mean of children %v", n.Label, n.Order, want)
		}
	})
}

func TestLayoutDeterministic(t *testing.T) {
	a := layoutTree(sampleTree(t))
	b := layoutTree(sampleTree(t))

	var coordsA, coordsB []string
	walkPlaced(a, func(n *PlacedNode) {
		coordsA = append(coordsA, fmt.Sprintf("%s %v %v", n.Label, n.X, n.Y))
	})
	walkPlaced(b, func(n *PlacedNode) {
		coordsB = append(coordsB, fmt.Sprintf("%s %v %v", n.Label, n.X, n.Y))
	})

	if len(coordsA) != len(coordsB) {
		t.Fatalf("node counts differ: %d vs %d", len(coordsA), len(coordsB))
	}
	for i := range coordsA {
		if coordsA[i] != coordsB[i] {
			t.Errorf("node %d: %q vs %q", i, coordsA[i], coordsB[i])
		}
	}
}

func TestLayoutNil(t *testing.T) {
	if layoutTree(nil) != nil {
		t.Error("layoutTree(nil) should be nil")
	}
	if got := countPlaced(nil); got != 0 {
		t.Errorf("countPlaced(nil) = %d, want 0", got)
	}
}

func TestBoxWidth(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"x", minNodeWidth},
		{"keyword: return", minNodeWidth},
		{"identifier: somethingRatherLongIndeed", 37*glyphWidth + labelPadding},
	}
	for _, tt := range tests {
		if got := boxWidth(tt.label); got != tt.want {
			t.Errorf("boxWidth(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
