package cmd

import (
	"fmt"
	"io"
	"os"
)

type Writer struct {
	Out io.Writer
	Err io.Writer
}

func Execute(w *Writer) {
	c := NewCmdRoot(w.Out)

	if err := c.Execute(); err != nil {
		_, _ = fmt.Fprintln(w.Err, "Error:", err)
		os.Exit(1)
	}
}
