package level

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile-pusher/internal/core"
)

// Warning is a problem the parser recovered from.
type Warning struct {
	Row    int
	Col    int
	Layer  int // -1 when the warning is not about one sub-token
	Token  string
	Reason string
}

func (w Warning) String() string {
	if w.Layer < 0 {
		return fmt.Sprintf("row %d col %d: %s", w.Row, w.Col, w.Reason)
	}
	return fmt.Sprintf("row %d col %d layer %d: %s (%q)", w.Row, w.Col, w.Layer, w.Reason, w.Token)
}

// Load reads and parses the level file at path.
// The returned error is always a *LoadError.
func Load(path string, sheet core.Sheet, opts Options) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	lvl, err := Parse(data, sheet, opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	lvl.path = path
	opts.logger().Info("level loaded", "path", path,
		"columns", lvl.columns, "rows", lvl.rows, "warnings", len(lvl.warnings))
	return lvl, nil
}

// Parse builds a level from the text format held in data.
// Malformed cells become empty and are reported through Warnings.
func Parse(data []byte, sheet core.Sheet, opts Options) (*Level, error) {
	logger := opts.logger()
	var warnings []Warning
	warn := func(w Warning) {
		warnings = append(warnings, w)
		logger.Warn("level: "+w.Reason, "row", w.Row, "col", w.Col, "layer", w.Layer, "token", w.Token)
	}

	// First pass: split rows and measure the widest one.
	rows := splitRows(data)
	columns := 0
	for _, r := range rows {
		columns = max(columns, len(r))
	}

	if opts.FixedRows > 0 {
		if len(rows) > opts.FixedRows {
			warn(Warning{Row: opts.FixedRows, Layer: -1, Reason: fmt.Sprintf("%d rows truncated", len(rows)-opts.FixedRows)})
			rows = rows[:opts.FixedRows]
		}
	} else if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		warn(Warning{Row: opts.MaxRows, Layer: -1, Reason: fmt.Sprintf("%d rows over limit truncated", len(rows)-opts.MaxRows)})
		rows = rows[:opts.MaxRows]
	}
	if opts.FixedColumns > 0 {
		columns = opts.FixedColumns
	} else if opts.MaxColumns > 0 && columns > opts.MaxColumns {
		columns = opts.MaxColumns
	}

	height := len(rows)
	if opts.FixedRows > 0 {
		height = opts.FixedRows
	}
	if height == 0 || columns == 0 {
		return nil, ErrEmpty
	}

	// Second pass: populate cells.
	lvl := New(columns, height, sheet, opts)
	for y, tokens := range rows {
		if len(tokens) > columns {
			warn(Warning{Row: y, Col: columns, Layer: -1, Reason: fmt.Sprintf("%d cells truncated", len(tokens)-columns)})
			tokens = tokens[:columns]
		}
		for x, tok := range tokens {
			lvl.parseCell(x, y, tok, warn)
		}
	}
	lvl.warnings = warnings
	return lvl, nil
}

func (l *Level) parseCell(x, y int, token string, warn func(Warning)) {
	index := l.Index(x, y)
	parts := strings.Split(token, ":")
	if len(parts) > l.Layers() {
		warn(Warning{Row: y, Col: x, Layer: -1, Token: token, Reason: "extra layers ignored"})
		parts = parts[:l.Layers()]
	}
	for layer, sub := range parts {
		if sub == "" {
			continue
		}
		id, err := strconv.Atoi(sub)
		if err != nil {
			warn(Warning{Row: y, Col: x, Layer: layer, Token: sub, Reason: "malformed tile id"})
			continue
		}
		if id == InvalidID {
			continue
		}
		if !l.sheet.Valid(id) {
			warn(Warning{Row: y, Col: x, Layer: layer, Token: sub, Reason: "tile id out of range"})
			continue
		}
		l.mem.layers[layer][index] = l.populate(layer, index, id)
	}
}

// splitRows returns the whitespace-separated tokens of every line.
// Trailing blank lines do not count as rows.
func splitRows(data []byte) [][]string {
	lines := bytes.Split(data, []byte("\n"))
	for len(lines) > 0 && len(bytes.TrimSpace(lines[len(lines)-1])) == 0 {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Fields(string(line))
	}
	return rows
}
