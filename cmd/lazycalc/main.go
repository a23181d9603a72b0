// Command lazycalc is the lazy postfix calculator CLI.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"nickandperla.net/lazycalc/internal/history"
	"nickandperla.net/lazycalc/pkg/lazycalc"
)

func main() {
	var (
		evalStr = flag.String("e", "", "Evaluate a postfix expression")
		file    = flag.String("f", "", "Evaluate a file, one expression per line")
		dbPath  = flag.String("db", "lazycalc.db", "REPL history database path (empty for in-memory)")
		noExt   = flag.Bool("no-ext", false, "Skip the extension operators , ? $ !")
		quiet   = flag.Bool("quiet", false, "Suppress the REPL banner")
		histN   = flag.Int("history", 0, "Print the N most recent history entries and exit")
	)

	flag.Parse()

	// Build options
	opts := []lazycalc.Option{}
	if !*noExt {
		opts = append(opts, lazycalc.WithExtensions())
	}

	calc := lazycalc.New(opts...)

	switch {
	case *histN > 0:
		store := openHistory(*dbPath)
		defer store.Close()
		entries, err := store.Recent(*histN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, e := range entries {
			when := time.Unix(e.When, 0).Format(time.DateTime)
			fmt.Printf("%s  %s = %s\n", when, e.Input, e.Result)
		}

	case *evalStr != "":
		result, err := calc.Calculate(*evalStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result)

	case *file != "":
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		err = evalLines(calc, f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case !isTerminal(os.Stdin):
		// Piped input
		if err := evalLines(calc, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		store := openHistory(*dbPath)
		defer store.Close()
		runREPL(calc, store, *quiet)
	}
}

// evalLines evaluates one expression per line, printing each result.
// Empty lines are skipped; any other whitespace is a token.
func evalLines(calc *lazycalc.Calculator, r io.Reader) error {
	scan := bufio.NewScanner(r)
	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := scan.Text()
		if line == "" {
			continue
		}
		result, err := calc.Calculate(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		fmt.Println(result)
	}
	return scan.Err()
}

func openHistory(path string) history.Store {
	if path == "" {
		return history.NewMemory()
	}
	s, err := history.NewSQLite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		return history.NewMemory()
	}
	return s
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
