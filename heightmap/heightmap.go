package heightmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/grid"
)

// ErrSyntax indicates input that does not tokenise as a heightmap.
var ErrSyntax = errors.New("heightmap: syntax error")

var heightmapLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Blank", Pattern: `[ \t]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Row", Pattern: `[^\r\n]+`},
})

type document struct {
	Rows []*row `parser:"EOL* ( @@ EOL* )*"`
}

type row struct {
	Pos   lexer.Position
	Cells string `parser:"@Row"`
}

var parser = participle.MustBuild[document](
	participle.Lexer(heightmapLexer),
	participle.Elide("Blank"),
)

// Parse reads a heightmap from r. name is used in error positions.
func Parse(name string, r io.Reader, alpha elevation.Alphabet) (*grid.Grid[elevation.Elevation], error) {
	if err := alpha.Validate(); err != nil {
		return nil, err
	}
	doc, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return build(name, doc, alpha)
}

// ParseString is Parse over an in-memory document.
func ParseString(name, src string, alpha elevation.Alphabet) (*grid.Grid[elevation.Elevation], error) {
	return Parse(name, strings.NewReader(src), alpha)
}

// Load parses the heightmap file at path.
func Load(path string, alpha elevation.Alphabet) (*grid.Grid[elevation.Elevation], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(path, f, alpha)
}

func build(name string, doc *document, alpha elevation.Alphabet) (*grid.Grid[elevation.Elevation], error) {
	cells := make([][]elevation.Elevation, 0, len(doc.Rows))
	for _, rw := range doc.Rows {
		line := strings.TrimRight(rw.Cells, " \t")
		heights := make([]elevation.Elevation, 0, len(line))
		col := rw.Pos.Column
		for _, r := range line {
			e, err := alpha.Elevation(r)
			if err != nil {
				return nil, fmt.Errorf("%s:%d:%d: %w", name, rw.Pos.Line, col, err)
			}
			heights = append(heights, e)
			col++
		}
		cells = append(cells, heights)
	}

	g, err := grid.FromRows(cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// Format renders g as text, one newline-terminated line per row.
func Format(g *grid.Grid[elevation.Elevation], alpha elevation.Alphabet) (string, error) {
	var b strings.Builder
	b.Grow(g.Len() + g.Rows())
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			r, err := alpha.Symbol(g.At(grid.Coordinate{X: x, Y: y}))
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
