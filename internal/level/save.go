package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteTo writes the level in the text format: one line per row, cells
// separated by a space, each cell the colon-joined ids of every layer.
func (l *Level) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(s string) error {
		m, err := bw.WriteString(s)
		n += int64(m)
		return err
	}

	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.columns; x++ {
			if x > 0 {
				if err := write(" "); err != nil {
					return n, err
				}
			}
			index := l.Index(x, y)
			for layer := 0; layer < l.Layers(); layer++ {
				if layer > 0 {
					if err := write(":"); err != nil {
						return n, err
					}
				}
				if err := write(strconv.Itoa(l.mem.layers[layer][index].ID)); err != nil {
					return n, err
				}
			}
		}
		if err := write("\n"); err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Save writes the level to path. The file is replaced atomically: content
// goes to a temporary file in the same directory which is renamed on success.
func (l *Level) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("level: save %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := l.WriteTo(tmp); err != nil {
		cleanup()
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	l.path = path
	return nil
}
