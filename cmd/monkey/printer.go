package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
)

type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(colored bool) stdPrinter {
	c := color.New()
	if !colored {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, s.color.Red(strings.TrimSuffix(fmt.Sprintln(a...), "\n")))
}

func (s stdPrinter) banner(msg string) {
	fmt.Println(s.color.Cyan(msg))
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
