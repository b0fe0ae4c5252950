// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// otftoheader converts a font file into a C/C++ header which embeds
// the font's bytes as a static array.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"rescribe.xyz/fontheader"
)

const usage = `Usage: otftoheader input.otf output.h [symbol_base]

Converts a font file into a C/C++ header containing its bytes as a
static array, named after symbol_base or the input file name.

Either path may be given as s3://bucket/key to read from or write
to Amazon S3.
`

// run does the work of main, returning the exit code
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("otftoheader", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}
	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	if flags.NArg() < 2 || flags.NArg() > 3 {
		flags.Usage()
		return 1
	}

	in, out, base := flags.Arg(0), flags.Arg(1), flags.Arg(2)
	logger := log.New(stderr, "", 0)

	var conv fontheader.Converter
	if fontheader.IsRemote(in) || fontheader.IsRemote(out) {
		conn := &fontheader.AwsConn{Logger: logger}
		err = conn.Init()
		if err != nil {
			logger.Println(err)
			return 1
		}
		conv.Store = conn
	}

	err = conv.Convert(in, out, base)
	if err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
