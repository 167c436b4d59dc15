package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"monkey/internal"
)

var source string = `
let fib = fn(n) {
    if (n < 2) { return n; }
    fib(n - 1) + fib(n - 2)
};
fib(25)
`

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
	logger, err := internal.NewLogger(os.Getenv("MONKEY_LOG_LEVEL"), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	start := time.Now()
	internal.NewInterpreter(stdPrinter{}, logger).Run(source)
	fmt.Println("Time elapsed is:", time.Since(start))
}
