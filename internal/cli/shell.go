// Package cli is the interactive terminal front end. It reads one command per
// line, runs it against the session controller and prints the rendered view
// after every applied action. Rejected actions print nothing.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/processor"
	"github.com/simonkvalheim/bankify/internal/view"
)

const helpText = `Commands:
  login <user> <pin>       log in
  transfer <user> <amount> send money to another account
  loan <amount>            request a loan
  sort                     toggle sorting by amount
  close <user> <pin>       close the current account
  logout                   end the session
  help                     show this help
  quit                     exit`

// Shell runs terminal commands against a controller
type Shell struct {
	ctrl   *processor.Controller
	out    io.Writer
	styles view.Styles
}

// NewShell creates a shell writing to out
func NewShell(ctrl *processor.Controller, out io.Writer) *Shell {
	return &Shell{
		ctrl:   ctrl,
		out:    out,
		styles: view.DefaultStyles(),
	}
}

// Run reads commands until quit or end of input
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "Bankify. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := s.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the shell should exit
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var (
		res processor.Result
		err error
	)

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, helpText)
		return false
	case "login":
		res = s.ctrl.Login(ctx, arg(args, 0), arg(args, 1))
	case "logout":
		res = s.ctrl.Logout(ctx)
		if res.Applied {
			fmt.Fprintln(s.out, "Logged out.")
		}
	case "transfer":
		res, err = s.ctrl.Transfer(ctx, arg(args, 0), arg(args, 1))
	case "loan":
		res, err = s.ctrl.RequestLoan(ctx, arg(args, 0))
	case "sort":
		res, err = s.ctrl.ToggleSort(ctx)
	case "close":
		res, err = s.ctrl.CloseAccount(ctx, arg(args, 0), arg(args, 1))
		if err == nil && res.Applied {
			fmt.Fprintln(s.out, "Account closed.")
		}
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
		return false
	}

	if errors.Is(err, model.ErrNotLoggedIn) {
		fmt.Fprintln(s.out, "Log in first.")
		return false
	}

	if res.View != nil {
		fmt.Fprintln(s.out, view.RenderTerminal(*res.View, s.styles))
	}
	return false
}

// arg returns the i-th argument or "" like an empty form field
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
