package cmd

import (
	"fmt"
	"io"
)

// Output helpers shared by the commands.
//
//   ✓  success
//   ✗  error
//   ⚠  warning
//   ~  neutral info

func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

func printErr(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✗  %s\n", msg)
}

func printWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ⚠  %s\n", msg)
}

func printInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ~  %s\n", msg)
}
