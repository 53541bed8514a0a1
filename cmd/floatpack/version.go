package main

import (
	"fmt"
	"io"
)

// set via -ldflags at release build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func printVersion(w io.Writer) {
	tmpl := `floatpack version %s
  commit: %s
  date: %s
  built by: %s
`
	fmt.Fprintf(w, tmpl, version, commit, date, builtBy)
}
