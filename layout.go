package main

// PlacedNode is a Node with its layout position. Trees of PlacedNodes
// are built once per document at load time and never mutated, so the
// renderer may read them freely while the camera changes.
type PlacedNode struct {
	Label    string
	Category string
	Fill     string
	Stroke   string

	Depth int     // distance from the root; root is 0
	Order float64 // vertical slot; strictly increasing across siblings

	X float64 // Depth * levelSpacing
	Y float64 // Order * siblingSpacing

	Parent   *PlacedNode
	Children []*PlacedNode
}

// layoutTree computes a tidy layout for the tree rooted at root. A
// post-order walk gives each leaf the next slot of a running counter,
// in document order; each internal node sits at the mean of its
// children's slots, centering parents over their subtrees. The result
// is deterministic: the same input tree always yields the same
// coordinates.
func layoutTree(root *Node) *PlacedNode {
	if root == nil {
		return nil
	}
	counter := 0.0
	return placeNode(root, nil, 0, &counter)
}

func placeNode(n *Node, parent *PlacedNode, depth int, counter *float64) *PlacedNode {
	p := &PlacedNode{
		Label:    n.Label,
		Category: n.Category,
		Fill:     n.Fill,
		Stroke:   n.Stroke,
		Depth:    depth,
		Parent:   parent,
	}

	if len(n.Children) == 0 {
		p.Order = *counter
		*counter += 1
	} else {
		sum := 0.0
		for _, child := range n.Children {
			pc := placeNode(child, p, depth+1, counter)
			p.Children = append(p.Children, pc)
			sum += pc.Order
		}
		p.Order = sum / float64(len(p.Children))
	}

	p.X = float64(depth) * levelSpacing
	p.Y = p.Order * siblingSpacing
	return p
}

// walkPlaced visits n and every descendant in depth-first document
// order.
func walkPlaced(n *PlacedNode, fn func(*PlacedNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		walkPlaced(child, fn)
	}
}

// countPlaced returns the number of nodes in the placed tree.
func countPlaced(n *PlacedNode) int {
	total := 0
	walkPlaced(n, func(*PlacedNode) { total++ })
	return total
}

// boxWidth returns the world-pixel width of a node's box: at least
// minNodeWidth, otherwise the label length plus padding.
func boxWidth(label string) float64 {
	w := float64(len([]rune(label)))*glyphWidth + labelPadding
	if w < minNodeWidth {
		return minNodeWidth
	}
	return w
}
