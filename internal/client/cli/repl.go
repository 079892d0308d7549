package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the shell needs. App satisfies it; tests
// provide a stub.
type execIface interface {
	Execute(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and hands them to a.Execute. Errors
// are printed and the loop continues. It returns on EOF, "exit" or "quit",
// or when ctx is done. Commands that prompt read from the same reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "runaudit%s> ", prefixSpace(statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if err != nil && len(parts) == 0 {
			fmt.Fprintln(out)
			return
		}
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		if err := a.Execute(ctx, parts); err != nil {
			reportError(out, err)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
