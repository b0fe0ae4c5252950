// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"bufio"
	"fmt"
	"io"
)

// BytesPerLine is the number of array elements on each line of a
// generated header.
const BytesPerLine = 12

const hexDigits = "0123456789ABCDEF"

// WriteHeader writes data out as a C/C++ header declaring a static
// byte array and its size, using the identifiers in sym. Lines are
// always terminated with a bare '\n'.
func WriteHeader(w io.Writer, sym Symbols, data []byte) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", sym.Guard, sym.Guard)
	bw.WriteString("#include <cstddef>\n#include <cstdint>\n\n")
	fmt.Fprintf(bw, "static const unsigned char %s[] = {\n", sym.Data)

	for i := 0; i < len(data); i += BytesPerLine {
		end := i + BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		bw.WriteString("    ")
		for j, b := range data[i:end] {
			if j > 0 {
				bw.WriteString(", ")
			}
			bw.Write([]byte{'0', 'x', hexDigits[b>>4], hexDigits[b&0x0f]})
		}
		if end < len(data) {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("};\n")
	fmt.Fprintf(bw, "static const size_t %s = sizeof(%s);\n\n", sym.Len, sym.Data)
	fmt.Fprintf(bw, "#endif // %s\n", sym.Guard)

	return bw.Flush()
}
