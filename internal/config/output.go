package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text, JSON or SVG output.
	Format OutputFormat

	// MaxLineLength wraps text move lists.
	MaxLineLength uint

	// Diagram appends a Unicode board of the final position to text output.
	Diagram bool

	// Flip draws diagrams from Black's side.
	Flip bool

	// Coordinates labels ranks and files in diagrams.
	Coordinates bool

	// JSONLines writes one JSON object per record instead of one array.
	JSONLines bool

	// SVGDir is the directory SVG diagrams are written to.
	SVGDir string

	// SquareSize is the SVG square edge.
	SquareSize int

	// AddFENComments writes the FEN after each move as a {comment}.
	AddFENComments bool

	// AddHashComments writes the Zobrist key after each move as a {comment}.
	AddHashComments bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        FormatText,
		MaxLineLength: 80,
		SVGDir:        ".",
		SquareSize:    45,
	}
}
