// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

const (
	dataSuffix  = "_otf"
	lenSuffix   = "_len"
	guardSuffix = "_INCLUDED"
)

// ErrEmptySymbol is returned when a symbol base contains nothing
// that survives sanitization.
var ErrEmptySymbol = errors.New("symbol base is empty after sanitizing")

// Symbols are the identifiers used in a generated header.
type Symbols struct {
	Data  string // name of the byte array
	Len   string // name of the size constant
	Guard string // include guard token
}

// NewSymbols works out the identifiers for a header. If base is
// empty, the name of the input file without its extension is used.
func NewSymbols(inputPath, outputPath, base string) (Symbols, error) {
	if base == "" {
		base = stripExt(baseName(inputPath))
	}
	s := Sanitize(base)
	if s == "" {
		return Symbols{}, fmt.Errorf("Error deriving symbol from %q: %w", base, ErrEmptySymbol)
	}

	return Symbols{
		Data:  s + dataSuffix,
		Len:   s + dataSuffix + lenSuffix,
		Guard: strings.ToUpper(Sanitize(baseName(outputPath))) + guardSuffix,
	}, nil
}

// baseName returns the last element of a local or remote path
func baseName(p string) string {
	if _, key, ok := ParseRemote(p); ok {
		return path.Base(key)
	}
	return filepath.Base(p)
}

// stripExt removes the final extension from a file name. Leading
// dots are not treated as an extension, so ".otf" stays as it is.
func stripExt(name string) string {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	return strings.TrimSuffix(name, ext)
}
