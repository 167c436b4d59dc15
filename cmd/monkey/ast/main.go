package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"monkey/internal"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: ast /path/to/source.mk")
		return
	}

	b, err := os.ReadFile(argsWithoutProg[0])
	if err != nil {
		log.Fatal(err)
	}

	if !internal.NewInterpreter(stdPrinter{}, nil).PrintTree(string(b)) {
		os.Exit(1)
	}
}
