// Package cli is the morsel driver: it runs source files, or a REPL when
// stdin is a terminal. Each top-level form is evaluated independently; an
// error aborts that form only and the driver moves on.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/morsel-lang/morsel/internal/config"
	"github.com/morsel-lang/morsel/internal/evaluator"
	"github.com/morsel-lang/morsel/internal/lexer"
	"github.com/morsel-lang/morsel/internal/parser"
	"github.com/morsel-lang/morsel/internal/token"
)

type session struct {
	ev  *evaluator.Evaluator
	env *evaluator.Environment
	out io.Writer
	err io.Writer
}

// Run executes the command line and returns the process exit code.
func Run(args []string) int {
	var files []string
	trace := false
	for _, arg := range args {
		switch arg {
		case "--trace":
			trace = true
		case "--help", "-h":
			printUsage(os.Stdout)
			return 0
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
				printUsage(os.Stderr)
				return 2
			}
			files = append(files, arg)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, err := config.LoadDir(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	s := &session{
		ev:  evaluator.New(),
		env: evaluator.NewGlobalEnvironment(),
		out: os.Stdout,
		err: os.Stderr,
	}
	if trace || cfg.Trace {
		s.ev.Trace = os.Stdout
	}

	for _, p := range cfg.Prelude {
		if !s.runFile(p, false) {
			return 1
		}
	}

	if len(files) > 0 {
		for _, p := range files {
			if !s.runPath(p) {
				return 1
			}
		}
		return 0
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		s.repl(cfg.Prompt)
		return 0
	}

	// piped input: evaluate everything, echoing one result per form
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(s.err, "read stdin: %v\n", err)
		return 1
	}
	if !s.runSource(string(source), true) {
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: morsel [--trace] [file|dir ...]")
	fmt.Fprintln(w, "a directory argument runs every source file in it")
	fmt.Fprintln(w, "with no files, reads stdin (interactive REPL on a terminal)")
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// runPath runs a single file, or every source file in a directory in name
// order.
func (s *session) runPath(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(s.err, "%v\n", err)
		return false
	}
	if !info.IsDir() {
		return s.runFile(path, false)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		fmt.Fprintf(s.err, "%v\n", err)
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() || !isSourceFile(entry.Name()) {
			continue
		}
		if !s.runFile(filepath.Join(path, entry.Name()), false) {
			return false
		}
	}
	return true
}

func (s *session) runFile(path string, echo bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.err, "%v\n", err)
		return false
	}
	return s.runSource(string(data), echo)
}

// runSource evaluates every top-level form in order. Returns false if any
// form failed.
func (s *session) runSource(source string, echo bool) bool {
	program, err := parser.Parse(source)
	if err != nil {
		fmt.Fprintf(s.err, "%v\n", err)
		return false
	}
	ok := true
	for _, form := range program {
		result, err := s.ev.Eval(form, s.env)
		if err != nil {
			fmt.Fprintf(s.err, "error: %v\n", err)
			ok = false
			continue
		}
		if echo {
			fmt.Fprintf(s.out, "=> %s\n", result.Inspect())
		}
	}
	return ok
}

func (s *session) repl(prompt string) {
	scanner := bufio.NewScanner(os.Stdin)
	var buf strings.Builder

	fmt.Fprint(s.out, prompt)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteString("\n")

		// keep reading lines until the parens balance out
		if parenBalance(buf.String()) > 0 {
			fmt.Fprint(s.out, strings.Repeat(" ", len(prompt)))
			continue
		}

		input := buf.String()
		buf.Reset()
		if strings.TrimSpace(input) != "" {
			s.runSource(input, true)
		}
		fmt.Fprint(s.out, prompt)
	}
	fmt.Fprintln(s.out)
}

// parenBalance counts unmatched open parens, ignoring strings and comments.
func parenBalance(source string) int {
	l := lexer.New(source)
	depth := 0
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.EOF:
			return depth
		}
	}
}
