// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"errors"
	"strings"
)

const remotePrefix = "s3://"

// ErrNoStore is returned when a remote path is given to a Converter
// which has no Storer set.
var ErrNoStore = errors.New("no storage backend configured for remote path")

// ErrBadRemote is returned for a path that starts like a remote path
// but doesn't name both a bucket and a key.
var ErrBadRemote = errors.New("remote path must be of the form s3://bucket/key")

// Storer is something that can fetch and store objects, such as
// AwsConn or LocalConn.
type Storer interface {
	Init() error
	Download(bucket string, key string, path string) error
	Upload(bucket string, key string, path string) error
}

// IsRemote reports whether a path refers to object storage rather
// than the local filesystem.
func IsRemote(p string) bool {
	return strings.HasPrefix(p, remotePrefix)
}

// ParseRemote splits a path of the form s3://bucket/key into its
// bucket and key. ok is false if p is not a valid remote path.
func ParseRemote(p string) (bucket string, key string, ok bool) {
	if !IsRemote(p) {
		return "", "", false
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(p, remotePrefix), "/")
	if !found || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", false
	}
	return bucket, key, true
}
