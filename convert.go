// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"fmt"
	"os"
	"path/filepath"
)

// Converter turns font files into headers. The zero value handles
// local paths; Store must be set to use s3:// paths.
type Converter struct {
	Store Storer
}

// Convert reads inputPath and writes a header embedding it to
// outputPath, creating any missing parent directories. If base is
// empty the symbol names are derived from the input file name.
//
// The input is read in full before anything is written, and the
// header is written to a temporary file which is then renamed into
// place, so a failure never leaves a partial file at outputPath.
func (c *Converter) Convert(inputPath, outputPath, base string) error {
	sym, err := NewSymbols(inputPath, outputPath, base)
	if err != nil {
		return err
	}

	data, err := c.read(inputPath)
	if err != nil {
		return err
	}

	if IsRemote(outputPath) {
		return c.upload(outputPath, sym, data)
	}
	return writeFile(outputPath, sym, data)
}

// Convert is a shortcut for converting with a local-only Converter
func Convert(inputPath, outputPath, base string) error {
	var c Converter
	return c.Convert(inputPath, outputPath, base)
}

// remote parses a remote path, checking that it can be used
func (c *Converter) remote(p string) (string, string, error) {
	bucket, key, ok := ParseRemote(p)
	if !ok {
		return "", "", fmt.Errorf("Error parsing %s: %w", p, ErrBadRemote)
	}
	if c.Store == nil {
		return "", "", fmt.Errorf("Error accessing %s: %w", p, ErrNoStore)
	}
	return bucket, key, nil
}

func (c *Converter) read(p string) ([]byte, error) {
	if !IsRemote(p) {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("Error reading %s: %w", p, err)
		}
		return b, nil
	}

	bucket, key, err := c.remote(p)
	if err != nil {
		return nil, err
	}

	tmp, err := tempName("")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	err = c.Store.Download(bucket, key, tmp)
	if err != nil {
		return nil, fmt.Errorf("Error downloading %s: %w", p, err)
	}
	b, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("Error reading downloaded %s: %w", p, err)
	}
	return b, nil
}

func (c *Converter) upload(p string, sym Symbols, data []byte) error {
	bucket, key, err := c.remote(p)
	if err != nil {
		return err
	}

	tmp, err := tempName("")
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	err = writeTo(tmp, sym, data)
	if err != nil {
		return err
	}

	err = c.Store.Upload(bucket, key, tmp)
	if err != nil {
		return fmt.Errorf("Error uploading %s: %w", p, err)
	}
	return nil
}

// writeFile writes the header next to outputPath and renames it
// into place once it is complete
func writeFile(outputPath string, sym Symbols, data []byte) error {
	dir := filepath.Dir(outputPath)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("Error creating directory %s: %w", dir, err)
	}

	tmp, err := tempName(dir)
	if err != nil {
		return err
	}

	err = writeTo(tmp, sym, data)
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}

	err = os.Rename(tmp, outputPath)
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("Error writing %s: %w", outputPath, err)
	}
	return nil
}

// writeTo writes the header to the (existing) file at path
func writeTo(path string, sym Symbols, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Error opening %s: %w", path, err)
	}

	err = WriteHeader(f, sym, data)
	if err != nil {
		f.Close()
		return fmt.Errorf("Error writing %s: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("Error closing %s: %w", path, err)
	}
	return nil
}

// tempName creates an empty temporary file in dir, readable like a
// normally created header, and returns its name
func tempName(dir string) (string, error) {
	f, err := os.CreateTemp(dir, ".fontheader-*")
	if err != nil {
		return "", fmt.Errorf("Error creating temporary file: %w", err)
	}
	name := f.Name()
	f.Close()

	err = os.Chmod(name, 0644)
	if err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("Error setting permissions on %s: %w", name, err)
	}
	return name, nil
}
