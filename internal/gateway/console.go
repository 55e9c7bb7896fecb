package gateway

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rohan/vaani/internal/workflow"
)

// Console is a line-based conversation surface for keyboard use. It is the
// default mode and what development happens against.
type Console struct {
	Registry *workflow.Registry
	In       io.Reader
	Out      io.Writer
}

func NewConsole(registry *workflow.Registry) *Console {
	return &Console{
		Registry: registry,
		In:       os.Stdin,
		Out:      os.Stdout,
	}
}

func (c *Console) Start(ctx context.Context) error {
	fmt.Fprintln(c.Out, "Type a request and press Enter. Say 'help' to hear what I can do.")

	scanner := bufio.NewScanner(c.In)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(c.Out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		_, response := c.Registry.Dispatch(ctx, text)
		fmt.Fprintln(c.Out, response)
	}
}

func (c *Console) Stop() error {
	return nil
}
