package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads map rows from r, one row per line, and builds a GridMap.
// Trailing carriage returns are dropped so CRLF files parse like LF files.
func Load(r io.Reader) (*GridMap, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// ReadRows splits r into lines without their line terminators.
// Terrain label files share the map file layout and are read the same way.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: read rows: %w", err)
	}
	return rows, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*GridMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
