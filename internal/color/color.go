package color

// Color represents an ANSI Color code.
type Color string

const (
	Reset  Color = "\033[0m"
	Red    Color = "\033[31m"
	Yellow Color = "\033[33m"
)

// Colors used when rendering errors.
type Colors struct {
	Error Color
	Mark  Color
	Reset Color
}

var NoColors = Colors{}

var Default = Colors{
	Error: Red,
	Mark:  Yellow,
	Reset: Reset,
}
