package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/lazycalc/internal/history"
	"nickandperla.net/lazycalc/pkg/lazycalc"
)

// How much stored history the line editor preloads.
const historyPreload = 100

func printBanner(calc *lazycalc.Calculator) {
	fmt.Println("lazycalc REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Printf("Literals:  %s\n", spaced([]rune(lazycalc.Literals())))
	fmt.Printf("Operators: %s\n", spaced(calc.Symbols()))
	fmt.Println()
	fmt.Println("Postfix only; every rune is a token. End a line with \\ to continue it.")
	fmt.Println()
}

func spaced(runes []rune) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func runREPL(calc *lazycalc.Calculator, store history.Store, quiet bool) {
	if !quiet {
		printBanner(calc)
	}

	// Check if stdin is a terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		runBasicREPL(calc, store)
		return
	}

	runRawREPL(calc, store)
}

// continuation accumulates backslash-continued lines into one
// expression. Lines are joined without a separator; a newline is not a
// calculator token.
type continuation struct {
	buf    strings.Builder
	active bool
}

// feed consumes one physical line. When done is true, input holds a
// complete expression.
func (c *continuation) feed(line string) (input string, done bool) {
	if strings.HasSuffix(line, "\\") {
		c.buf.WriteString(strings.TrimSuffix(line, "\\"))
		c.active = true
		return "", false
	}
	if c.active {
		c.buf.WriteString(line)
		input = c.buf.String()
		c.buf.Reset()
		c.active = false
		return input, true
	}
	return line, true
}

// runBasicREPL handles non-TTY input (piped input)
func runBasicREPL(calc *lazycalc.Calculator, store history.Store) {
	reader := bufio.NewReader(os.Stdin)
	var cont continuation

	for {
		if cont.active {
			fmt.Print("... ")
		} else {
			fmt.Print(">>> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		line = strings.TrimRight(line, "\r\n")

		input, done := cont.feed(line)
		if !done || input == "" {
			continue
		}

		result, err := calc.Calculate(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			store.Append(history.Entry{Input: input, Result: "error: " + err.Error()})
			continue
		}

		fmt.Println(result)
		store.Append(history.Entry{Input: input, Result: strconv.Itoa(result)})
	}
}

// runRawREPL handles TTY input with line editing and history recall
func runRawREPL(calc *lazycalc.Calculator, store history.Store) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runBasicREPL(calc, store)
		return
	}
	defer term.Restore(fd, oldState)

	hist := loadHistory(store)
	var cont continuation

	for {
		prompt := ">>> "
		if cont.active {
			prompt = "... "
		}
		fmt.Print(prompt)

		line, eof := readLineRaw(fd, prompt, hist)
		if eof {
			fmt.Print("\r\n")
			return
		}

		input, done := cont.feed(line)
		if !done || input == "" {
			continue
		}

		hist.push(input)

		result, err := calc.Calculate(input)
		if err != nil {
			fmt.Printf("Error: %v\r\n", err)
			store.Append(history.Entry{Input: input, Result: "error: " + err.Error()})
			continue
		}

		fmt.Printf("%d\r\n", result)
		store.Append(history.Entry{Input: input, Result: strconv.Itoa(result)})
	}
}

// histNav walks prior inputs during raw-mode line editing.
type histNav struct {
	lines []string // oldest first
	pos   int      // len(lines) means the live line
	saved string   // live line stashed while browsing
}

func loadHistory(store history.Store) *histNav {
	h := &histNav{}
	entries, err := store.Recent(historyPreload)
	if err != nil {
		return h
	}
	// Recent is newest first; the editor wants oldest first.
	for i := len(entries) - 1; i >= 0; i-- {
		h.lines = append(h.lines, entries[i].Input)
	}
	h.pos = len(h.lines)
	return h
}

func (h *histNav) push(input string) {
	h.lines = append(h.lines, input)
	h.pos = len(h.lines)
	h.saved = ""
}

// up returns the next older input; ok is false at the oldest.
func (h *histNav) up(live string) (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	if h.pos == len(h.lines) {
		h.saved = live
	}
	h.pos--
	return h.lines[h.pos], true
}

// down returns the next newer input, ending at the stashed live line.
func (h *histNav) down() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return h.saved, true
	}
	return h.lines[h.pos], true
}

// reset returns the walk position to the live line.
func (h *histNav) reset() {
	h.pos = len(h.lines)
	h.saved = ""
}

// readLineRaw reads a line in raw mode with editing and history recall.
// Returns the line and whether EOF was encountered.
func readLineRaw(fd int, prompt string, hist *histNav) (string, bool) {
	var line []rune
	cursor := 0 // Position in line (for arrow key navigation)
	buf := make([]byte, 1)

	hist.reset()

	// Helper to redraw line from cursor position
	redrawFromCursor := func() {
		// Clear from cursor to end of line
		fmt.Print("\x1b[K")
		// Print remaining characters
		for i := cursor; i < len(line); i++ {
			fmt.Print(string(line[i]))
		}
		// Move cursor back to position
		if cursor < len(line) {
			fmt.Printf("\x1b[%dD", len(line)-cursor)
		}
	}

	// Helper to repaint prompt and whole line (history recall)
	redrawLine := func() {
		fmt.Print("\r\x1b[K")
		fmt.Print(prompt)
		fmt.Print(string(line))
	}

	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return string(line), true
		}

		b := buf[0]

		switch b {
		case 0x04: // Ctrl+D
			if len(line) == 0 {
				return "", true
			}
			// Delete character at cursor (like Delete key)
			if cursor < len(line) {
				line = append(line[:cursor], line[cursor+1:]...)
				redrawFromCursor()
			}

		case 0x03: // Ctrl+C
			fmt.Print("^C\r\n")
			return "", false

		case 0x0d, 0x0a: // Enter (CR or LF)
			fmt.Print("\r\n")
			return string(line), false

		case 0x7f, 0x08: // Backspace (DEL or BS)
			if cursor > 0 {
				cursor--
				line = append(line[:cursor], line[cursor+1:]...)
				fmt.Print("\b") // Move cursor back
				redrawFromCursor()
			}

		case 0x1b: // ESC - arrow key sequence
			nextBuf := make([]byte, 1)
			n, err := os.Stdin.Read(nextBuf)
			if err != nil || n == 0 {
				continue
			}
			if nextBuf[0] != '[' {
				continue
			}

			// Arrow key sequence: ESC [ A/B/C/D
			arrowBuf := make([]byte, 1)
			n, err = os.Stdin.Read(arrowBuf)
			if err != nil || n == 0 {
				continue
			}

			switch arrowBuf[0] {
			case 'A': // Up arrow - recall older input
				if prev, ok := hist.up(string(line)); ok {
					line = []rune(prev)
					cursor = len(line)
					redrawLine()
				}
			case 'B': // Down arrow - recall newer input
				if next, ok := hist.down(); ok {
					line = []rune(next)
					cursor = len(line)
					redrawLine()
				}
			case 'C': // Right arrow
				if cursor < len(line) {
					cursor++
					fmt.Print("\x1b[C")
				}
			case 'D': // Left arrow
				if cursor > 0 {
					cursor--
					fmt.Print("\x1b[D")
				}
			case '3': // Delete key: ESC [ 3 ~
				delBuf := make([]byte, 1)
				os.Stdin.Read(delBuf)
				if delBuf[0] == '~' && cursor < len(line) {
					line = append(line[:cursor], line[cursor+1:]...)
					redrawFromCursor()
				}
			}

		case 0x01: // Ctrl+A - beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				cursor = 0
			}

		case 0x05: // Ctrl+E - end of line
			if cursor < len(line) {
				fmt.Printf("\x1b[%dC", len(line)-cursor)
				cursor = len(line)
			}

		case 0x0b: // Ctrl+K - kill to end of line
			if cursor < len(line) {
				line = line[:cursor]
				fmt.Print("\x1b[K")
			}

		case 0x15: // Ctrl+U - kill to beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				line = line[cursor:]
				cursor = 0
				redrawFromCursor()
			}

		default:
			if b >= 0x20 && b < 0x7f {
				// Printable ASCII character
				r := rune(b)
				newLine := make([]rune, 0, len(line)+1)
				newLine = append(newLine, line[:cursor]...)
				newLine = append(newLine, r)
				newLine = append(newLine, line[cursor:]...)
				line = newLine
				cursor++
				fmt.Print(string(r))
				if cursor < len(line) {
					redrawFromCursor()
				}
			} else if b >= 0x80 {
				// UTF-8 multi-byte sequence - read remaining bytes
				var utfBuf []byte
				utfBuf = append(utfBuf, b)

				// Determine how many more bytes to read
				numBytes := 0
				if b&0xE0 == 0xC0 {
					numBytes = 1
				} else if b&0xF0 == 0xE0 {
					numBytes = 2
				} else if b&0xF8 == 0xF0 {
					numBytes = 3
				}

				for i := 0; i < numBytes; i++ {
					n, err := os.Stdin.Read(buf)
					if err != nil || n == 0 {
						break
					}
					utfBuf = append(utfBuf, buf[0])
				}

				r := []rune(string(utfBuf))[0]
				newLine := make([]rune, 0, len(line)+1)
				newLine = append(newLine, line[:cursor]...)
				newLine = append(newLine, r)
				newLine = append(newLine, line[cursor:]...)
				line = newLine
				cursor++
				fmt.Print(string(r))
				if cursor < len(line) {
					redrawFromCursor()
				}
			}
		}
	}
}
