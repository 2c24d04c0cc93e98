package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Handler runs one command line and reports whether the loop must stop.
type Handler interface {
	Handle(line string) (string, bool)
}

// Options controls the interactive decoration.
type Options struct {
	// Prompt prints a banner and a "tabledb> " prompt. Results are written
	// unstyled either way so scripted callers can parse them.
	Prompt bool
}

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#02BA84"))
)

const banner = "TableDB - type STOP to save and exit, PURGE_AND_STOP to wipe and exit"

// Run reads commands line by line from in and writes one result per command
// to out. It returns when a command is terminal or in is exhausted.
func Run(in io.Reader, out io.Writer, h Handler, opts Options) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if opts.Prompt {
		fmt.Fprintln(out, bannerStyle.Render(banner))
	}

	for {
		if opts.Prompt {
			fmt.Fprint(out, promptStyle.Render("tabledb> "))
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, stop := h.Handle(line)
		fmt.Fprintln(out, result)
		if stop {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	slog.Info("input closed without STOP")
	return nil
}
