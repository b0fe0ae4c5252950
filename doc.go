// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The fontheader package converts a font file (OpenType or TrueType)
into a C/C++ header which holds the raw bytes of the font as a static
array, so that a program can have the font compiled in rather than
loading it from disk at runtime. No parsing or validation of the font
is done; any file can be converted.

The otftoheader command is the usual way to use it, typically from a
Makefile or a go:generate line:
  otftoheader fonts/DejaVuSans.ttf include/fonts/dejavu.h

which produces a header like this:
  #ifndef DEJAVU_H_INCLUDED
  #define DEJAVU_H_INCLUDED

  #include <cstddef>
  #include <cstdint>

  static const unsigned char dejavusans_otf[] = {
      0x00, 0x01, 0x00, 0x00, 0x00, 0x13, 0x01, 0x00, 0x00, 0x04, 0x00, 0x30,
      ...
  };
  static const size_t dejavusans_otf_len = sizeof(dejavusans_otf);

  #endif // DEJAVU_H_INCLUDED

An optional third argument sets the symbol base in place of the input
file name. Symbol names are lowercased, with anything that isn't an
ASCII letter or digit replaced by a single underscore.

Either path may instead be of the form s3://bucket/key, in which case
the font is downloaded from, or the header uploaded to, Amazon S3. For
this to work ~/.aws/credentials (or the usual AWS environment
variables) need to be set up appropriately.
*/
package fontheader
