// Package alias maps learned MAC addresses to operator-supplied host names.
package alias

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Table maps a MAC address string to its friendly name.
type Table map[string]string

// FormatError reports a malformed alias file line. A partial alias table
// could mislead an operator, so loading stops at the first bad line.
type FormatError struct {
	Path string
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("alias: %s:%d: want \"MAC NAME\", got %q", e.Path, e.Line, e.Text)
}

// Load reads whitespace-separated MAC/NAME pairs, one per line. A missing
// file is not an error and yields an empty table. Later duplicate MACs
// overwrite earlier ones.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, nil
		}
		return nil, err
	}
	defer f.Close()

	table := Table{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return nil, &FormatError{Path: path, Line: line, Text: scanner.Text()}
		}
		table[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("alias: reading %s: %w", path, err)
	}
	return table, nil
}

// Resolve returns the alias for mac, or mac unchanged when absent.
func (t Table) Resolve(mac string) string {
	if name, ok := t[mac]; ok {
		return name
	}
	return mac
}
