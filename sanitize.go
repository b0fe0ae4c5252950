// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"strings"
)

// Sanitize turns a name into a fragment usable in a C identifier.
// The name is lowercased, anything other than an ASCII letter or
// digit becomes an underscore, runs of underscores are collapsed
// into one, and leading and trailing underscores are removed.
func Sanitize(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
