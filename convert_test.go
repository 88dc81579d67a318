package main

import (
	"strings"
	"testing"
)

func TestParseTreeScenario(t *testing.T) {
	data := []byte(`<class>
  <subroutineDec>
    <returnStatement>
      <keyword> return </keyword>
    </returnStatement>
  </subroutineDec>
</class>`)

	root, err := parseTree(data)
	if err != nil {
		t.Fatalf("parseTree: %v", err)
	}
	if got := countNodes(root); got != 4 {
		t.Fatalf("countNodes = %d, want 4", got)
	}

	if root.Label != "class" || root.Category != "class" {
		t.Errorf("root = %q/%q, want class/class", root.Label, root.Category)
	}
	sub := root.Children[0]
	if sub.Label != "subroutineDec" || sub.Category != "subroutinedec" {
		t.Errorf("child = %q/%q, want subroutineDec/subroutinedec", sub.Label, sub.Category)
	}
	ret := sub.Children[0]
	if ret.Category != "returnstatement" {
		t.Errorf("grandchild category = %q, want returnstatement", ret.Category)
	}
	kw := ret.Children[0]
	if kw.Label != "keyword: return" {
		t.Errorf("leaf label = %q, want %q", kw.Label, "keyword: return")
	}
	if kw.Fill != "#da3633" || kw.Stroke != "#f85149" {
		t.Errorf("keyword style = %s/%s, want #da3633/#f85149", kw.Fill, kw.Stroke)
	}
}

func TestParseTreeChildOrder(t *testing.T) {
	data := []byte(`<expression><term>a</term><symbol>+</symbol><term>b</term></expression>`)
	root, err := parseTree(data)
	if err != nil {
		t.Fatalf("parseTree: %v", err)
	}

	want := []string{"term: a", "symbol: +", "term: b"}
	if len(root.Children) != len(want) {
		t.Fatalf("len(children) = %d, want %d", len(root.Children), len(want))
	}
	for i, w := range want {
		if root.Children[i].Label != w {
			t.Errorf("child %d label = %q, want %q", i, root.Children[i].Label, w)
		}
	}
}

func TestParseTreeUnknownTag(t *testing.T) {
	root, err := parseTree([]byte(`<mysteryThing>x</mysteryThing>`))
	if err != nil {
		t.Fatalf("parseTree: %v", err)
	}
	if root.Category != "mysterything" {
		t.Errorf("category = %q, want mysterything", root.Category)
	}
	if root.Fill != defaultStyle.fill || root.Stroke != defaultStyle.stroke {
		t.Errorf("unknown tag style = %s/%s, want default %s/%s",
			root.Fill, root.Stroke, defaultStyle.fill, defaultStyle.stroke)
	}
}

func TestParseTreeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty document", "", "no root element"},
		{"whitespace only", "   \n\t  ", "no root element"},
		{"mismatched tags", "<class><keyword>x</class>", "malformed document"},
		{"truncated", "<class><keyword>", "malformed document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTree([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestCountNodesNil(t *testing.T) {
	if got := countNodes(nil); got != 0 {
		t.Errorf("countNodes(nil) = %d, want 0", got)
	}
}
