// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2020
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

// Command rswvctl is the thin CLI entry point called out as an
// external collaborator in spec.md §1: its only in-scope requirement
// is "emit a version string and exit".
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// version is stamped by the release process (-ldflags
// "-X main.version=..."); it defaults to "devel" for a plain build.
var version = "devel"

func main() {
	showVersion := pflag.BoolP("version", "V", false, "print the version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("rswvctl %s\n", version)
		return
	}

	fmt.Fprintln(os.Stderr, "rswvctl: no subcommands are implemented; pass -V/--version")
	os.Exit(1)
}

// vim: foldmethod=marker
