package main

// stylePair is a fill/stroke color pair in hex notation.
type stylePair struct {
	fill   string
	stroke string
}

// Known grammar-node categories. Lookups go through these constants so
// a typo fails to compile instead of silently styling nodes with the
// default pair.
const (
	catClass           = "class"
	catSubroutineDec   = "subroutinedec"
	catDoStatement     = "dostatement"
	catLetStatement    = "letstatement"
	catIfStatement     = "ifstatement"
	catWhileStatement  = "whilestatement"
	catReturnStatement = "returnstatement"
	catIdentifier      = "identifier"
	catSymbol          = "symbol"
	catIntegerConstant = "integerconstant"
	catStringConstant  = "stringconstant"
	catKeyword         = "keyword"
)

// defaultStyle is the pair for any category not in the table.
var defaultStyle = stylePair{fill: "#30363d", stroke: "#6e7681"}

// styleTable maps a normalized category to its color pair. Declarations
// get blues and greens, statements purples and ambers, control flow and
// keywords red, terminals grays.
var styleTable = map[string]stylePair{
	catClass:           {fill: "#1f6feb", stroke: "#388bfd"},
	catSubroutineDec:   {fill: "#238636", stroke: "#2ea043"},
	catDoStatement:     {fill: "#8957e5", stroke: "#a371f7"},
	catLetStatement:    {fill: "#8957e5", stroke: "#a371f7"},
	catIfStatement:     {fill: "#d29922", stroke: "#e3b341"},
	catWhileStatement:  {fill: "#d29922", stroke: "#e3b341"},
	catReturnStatement: {fill: "#da3633", stroke: "#f85149"},
	catIdentifier:      {fill: "#30363d", stroke: "#6e7681"},
	catSymbol:          {fill: "#30363d", stroke: "#8b949e"},
	catIntegerConstant: {fill: "#1f6feb", stroke: "#58a6ff"},
	catStringConstant:  {fill: "#1f6feb", stroke: "#58a6ff"},
	catKeyword:         {fill: "#da3633", stroke: "#f85149"},
}

// resolveStyle returns the fill/stroke pair for a category. Unknown
// categories always get the default pair, never an error.
func resolveStyle(category string) (fill, stroke string) {
	if s, ok := styleTable[category]; ok {
		return s.fill, s.stroke
	}
	return defaultStyle.fill, defaultStyle.stroke
}
