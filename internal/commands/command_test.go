package commands

import (
	"errors"
	"testing"
)

func TestParseGoto(t *testing.T) {
	cmd, err := Parse("/goto Calendar")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeGoto || cmd.Goto == nil || cmd.Goto.Module != "calendar" {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	_, err = Parse("goto")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseAddJoinsTitle(t *testing.T) {
	cmd, err := Parse("add Prepare Vektor contract")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Add == nil || cmd.Add.Title != "Prepare Vektor contract" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseFindAndProject(t *testing.T) {
	cmd, err := Parse("find vektor")
	if err != nil {
		t.Fatalf("parse find: %v", err)
	}
	if cmd.Find == nil || cmd.Find.Query != "vektor" {
		t.Fatalf("unexpected find: %+v", cmd)
	}

	cmd, err = Parse("project Internal")
	if err != nil {
		t.Fatalf("parse project: %v", err)
	}
	if cmd.Project == nil || cmd.Project.Name != "Internal" {
		t.Fatalf("unexpected project: %+v", cmd)
	}

	// Bare "project" clears the filter.
	cmd, err = Parse("project")
	if err != nil {
		t.Fatalf("parse bare project: %v", err)
	}
	if cmd.Project == nil || cmd.Project.Name != "" {
		t.Fatalf("expected empty project name, got %+v", cmd)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"   ", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"teleport home", ErrCodeUnknownCommand},
		{"add   ", ErrCodeInvalidArgument},
		{"find", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			t.Fatalf("Parse(%q): expected CommandError, got %v", tc.in, err)
		}
		if cmdErr.Code != tc.code {
			t.Fatalf("Parse(%q): got code %q, want %q", tc.in, cmdErr.Code, tc.code)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("goto deals")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Execute(cmd, Handlers{
		Goto: func(a GotoArgs) (Result, error) {
			return Result{Message: "switched to " + a.Module}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Message != "switched to deals" {
		t.Fatalf("unexpected result message %q", res.Message)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("add Quarterly review")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument error, got %v", err)
	}
}
