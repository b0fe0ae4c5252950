// Copyright 2020 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LocalConn is a Storer that keeps each bucket as a directory under
// Root, rather than using any "cloud" service. This is particularly
// useful for testing.
type LocalConn struct {
	// these should be set before running Init(), or left to defaults
	Root   string
	Logger *log.Logger
}

// Init creates the root directory if needed
func (a *LocalConn) Init() error {
	if a.Root == "" {
		a.Root = filepath.Join(os.TempDir(), "fontheader")
	}
	err := os.MkdirAll(a.Root, 0700)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %w", err)
	}

	if a.Logger == nil {
		a.Logger = log.New(os.Stderr, "", 0)
	}

	return nil
}

func (a *LocalConn) Download(bucket string, key string, path string) error {
	fin, err := os.Open(filepath.Join(a.Root, bucket, filepath.FromSlash(key)))
	if err != nil {
		return err
	}
	defer fin.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	a.Logger.Printf("Copying %s/%s to %s\n", bucket, key, path)
	_, err = io.Copy(f, fin)
	return err
}

func (a *LocalConn) Upload(bucket string, key string, path string) error {
	dest := filepath.Join(a.Root, bucket, filepath.FromSlash(key))
	err := os.MkdirAll(filepath.Dir(dest), 0700)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %w", err)
	}

	fin, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fin.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	a.Logger.Printf("Copying %s to %s/%s\n", path, bucket, key)
	_, err = io.Copy(f, fin)
	return err
}

// DeleteObjects removes objects from a bucket
func (a *LocalConn) DeleteObjects(bucket string, keys []string) error {
	for _, v := range keys {
		err := os.Remove(filepath.Join(a.Root, bucket, filepath.FromSlash(v)))
		if err != nil {
			return err
		}
	}
	return nil
}
