package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"monkey/internal"
)

const (
	promptCont = "... "
	banner     = "monkey REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."
)

func repl(cfg config, run func(string) bool, p stdPrinter, logger *logrus.Logger) int {
	p.banner(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.HistoryFile)
			if err != nil {
				logger.WithError(err).Warn("could not save history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		source, ok := readInput(ln, cfg.Prompt)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		if strings.TrimSpace(source) == ":quit" {
			return 0
		}

		ln.AppendHistory(source)
		run(source)
	}
}

// readInput reads lines until every open brace and paren is closed.
// It returns false once the input is exhausted.
func readInput(ln *liner.State, prompt string) (string, bool) {
	var lines []string
	for {
		p := prompt
		if len(lines) > 0 {
			p = promptCont
		}

		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			lines = nil
			continue
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, err)
			}
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), true
			}
			return "", false
		}

		lines = append(lines, line)
		source := strings.Join(lines, "\n")
		if !unbalanced(source) {
			return source, true
		}
	}
}

func unbalanced(source string) bool {
	depth := 0
	for _, tk := range internal.Tokenize(source) {
		switch tk.Kind {
		case "{", "(":
			depth++
		case "}", ")":
			depth--
		}
	}
	return depth > 0
}
