// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package fontheader

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var byteLiteral = regexp.MustCompile(`^0x[0-9A-F]{2}$`)

// decodeHeader pulls the array elements back out of a generated
// header, checking the formatting of each array line as it goes
func decodeHeader(t *testing.T, header string, sym Symbols) []byte {
	t.Helper()
	open := fmt.Sprintf("static const unsigned char %s[] = {\n", sym.Data)
	start := strings.Index(header, open)
	if start < 0 {
		t.Fatalf("Array declaration not found in header:\n%s", header)
	}
	body := header[start+len(open):]
	end := strings.Index(body, "};\n")
	if end < 0 {
		t.Fatalf("Array end not found in header:\n%s", header)
	}
	body = body[:end]

	var out []byte
	if body == "" {
		return out
	}
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("Line %d not indented by four spaces: %q", i, line)
		}
		line = strings.TrimPrefix(line, "    ")
		last := i == len(lines)-1
		if last == strings.HasSuffix(line, ",") {
			t.Fatalf("Line %d has wrong trailing comma (last line: %v): %q", i, last, line)
		}
		vals := strings.Split(strings.TrimSuffix(line, ","), ", ")
		if len(vals) > BytesPerLine {
			t.Fatalf("Line %d has %d entries, more than %d", i, len(vals), BytesPerLine)
		}
		if !last && len(vals) != BytesPerLine {
			t.Fatalf("Line %d has %d entries, expected %d", i, len(vals), BytesPerLine)
		}
		for _, v := range vals {
			if !byteLiteral.MatchString(v) {
				t.Fatalf("Line %d has badly formatted element %q", i, v)
			}
			n, err := strconv.ParseUint(v, 0, 8)
			if err != nil {
				t.Fatalf("Could not parse element %q: %v", v, err)
			}
			out = append(out, byte(n))
		}
	}
	return out
}

func Test_WriteHeaderExact(t *testing.T) {
	sym := Symbols{Data: "my_font_otf_otf", Len: "my_font_otf_otf_len", Guard: "MY_FONT_H_INCLUDED"}
	expected := `#ifndef MY_FONT_H_INCLUDED
#define MY_FONT_H_INCLUDED

#include <cstddef>
#include <cstdint>

static const unsigned char my_font_otf_otf[] = {
    0x00, 0x01, 0xFF
};
static const size_t my_font_otf_otf_len = sizeof(my_font_otf_otf);

#endif // MY_FONT_H_INCLUDED
`

	var buf bytes.Buffer
	err := WriteHeader(&buf, sym, []byte{0x00, 0x01, 0xFF})
	if err != nil {
		t.Fatalf("Error writing header: %v", err)
	}
	if buf.String() != expected {
		t.Fatalf("Header differs from expected, expected:\n%s\ngot:\n%s", expected, buf.String())
	}
	if strings.Contains(buf.String(), "\r") {
		t.Fatalf("Header contains a carriage return")
	}
}

func Test_WriteHeaderEmpty(t *testing.T) {
	sym := Symbols{Data: "e_otf", Len: "e_otf_len", Guard: "E_H_INCLUDED"}
	var buf bytes.Buffer
	err := WriteHeader(&buf, sym, []byte{})
	if err != nil {
		t.Fatalf("Error writing header: %v", err)
	}
	if !strings.Contains(buf.String(), "e_otf[] = {\n};\n") {
		t.Fatalf("Expected an empty array, got:\n%s", buf.String())
	}
}

// Test_WriteHeaderRoundTrip checks that the bytes come back out as
// they went in, for sizes around the line length
func Test_WriteHeaderRoundTrip(t *testing.T) {
	sym := Symbols{Data: "rt_otf", Len: "rt_otf_len", Guard: "RT_H_INCLUDED"}
	for _, n := range []int{1, 2, 11, 12, 13, 23, 24, 25, 256, 1000} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i * 7)
			}

			var buf bytes.Buffer
			err := WriteHeader(&buf, sym, data)
			if err != nil {
				t.Fatalf("Error writing header: %v", err)
			}
			header := buf.String()

			got := decodeHeader(t, header, sym)
			if !bytes.Equal(got, data) {
				t.Fatalf("Decoded bytes differ from input, expected %v, got %v", data, got)
			}

			lenLine := "static const size_t rt_otf_len = sizeof(rt_otf);\n"
			if !strings.Contains(header, lenLine) {
				t.Fatalf("Length constant not computed with sizeof:\n%s", header)
			}
			if !strings.HasSuffix(header, "#endif // RT_H_INCLUDED\n") {
				t.Fatalf("Header doesn't end with the guard close:\n%s", header)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("disk full")
}

func Test_WriteHeaderError(t *testing.T) {
	err := WriteHeader(failWriter{}, Symbols{"a_otf", "a_otf_len", "A_INCLUDED"}, []byte{1, 2, 3})
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("Expected the writer's error, got %v", err)
	}
}
