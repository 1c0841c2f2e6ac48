package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/simonkvalheim/bankify/internal/bootstrap"
	"github.com/simonkvalheim/bankify/internal/processor"
	"github.com/simonkvalheim/bankify/internal/repository"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *repository.AccountStore) {
	t.Helper()
	accounts, err := bootstrap.SeedAccounts()
	if err != nil {
		t.Fatalf("SeedAccounts() error = %v", err)
	}
	store := repository.NewAccountStore(accounts)
	var out bytes.Buffer
	return NewShell(processor.NewController(store), &out), &out, store
}

func TestShell_Execute(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		wantOutput string // substring of the output of the last line
		wantEmpty  bool   // last line prints nothing
	}{
		{name: "login renders", lines: []string{"login js 1111"}, wantOutput: "Welcome back, Jonas"},
		{name: "bad login is silent", lines: []string{"login js 0000"}, wantEmpty: true},
		{name: "action before login", lines: []string{"loan 100"}, wantOutput: "Log in first."},
		{name: "transfer renders", lines: []string{"login js 1111", "transfer jd 100"}, wantOutput: "Current balance"},
		{name: "rejected transfer is silent", lines: []string{"login js 1111", "transfer js 100"}, wantEmpty: true},
		{name: "missing amount is silent", lines: []string{"login js 1111", "loan"}, wantEmpty: true},
		{name: "sort", lines: []string{"login js 1111", "sort"}, wantOutput: "sorted by amount"},
		{name: "close", lines: []string{"login jd 2222", "close jd 2222"}, wantOutput: "Account closed."},
		{name: "logout", lines: []string{"login jd 2222", "logout"}, wantOutput: "Logged out."},
		{name: "help", lines: []string{"help"}, wantOutput: "transfer <user> <amount>"},
		{name: "unknown", lines: []string{"dance"}, wantOutput: "Unknown command"},
		{name: "blank line", lines: []string{"   "}, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out, _ := newTestShell(t)
			ctx := context.Background()

			for i, line := range tt.lines {
				if i == len(tt.lines)-1 {
					out.Reset()
				}
				if sh.Execute(ctx, line) {
					t.Fatalf("Execute(%q) asked to quit", line)
				}
			}

			got := out.String()
			if tt.wantEmpty && got != "" {
				t.Errorf("output = %q, want nothing", got)
			}
			if tt.wantOutput != "" && !strings.Contains(got, tt.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", got, tt.wantOutput)
			}
		})
	}
}

func TestShell_CloseRemovesAccount(t *testing.T) {
	sh, _, store := newTestShell(t)
	ctx := context.Background()

	sh.Execute(ctx, "login js 1111")
	sh.Execute(ctx, "close js 1111")

	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
}

func TestShell_Run(t *testing.T) {
	sh, out, _ := newTestShell(t)

	in := strings.NewReader("login jd 2222\nquit\nlogin js 1111\n")
	if err := sh.Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Welcome back, Jessica") {
		t.Errorf("output missing jd login:\n%s", got)
	}
	if strings.Contains(got, "Welcome back, Jonas") {
		t.Error("commands after quit should not run")
	}
}

func TestShell_RunEndOfInput(t *testing.T) {
	sh, _, _ := newTestShell(t)
	if err := sh.Run(context.Background(), strings.NewReader("help")); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
