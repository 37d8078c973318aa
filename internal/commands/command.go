package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeGoto    Type = "goto"
	TypeAdd     Type = "add"
	TypeFind    Type = "find"
	TypeProject Type = "project"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type GotoArgs struct {
	Module string
}

type AddArgs struct {
	Title string
}

type FindArgs struct {
	Query string
}

type ProjectArgs struct {
	Name string
}

type Command struct {
	Type    Type
	Raw     string
	Goto    *GotoArgs
	Add     *AddArgs
	Find    *FindArgs
	Project *ProjectArgs
}

// Parse turns a palette line into a command. A leading slash is tolerated.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeGoto:
		return parseGoto(input, args)
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFind:
		return parseFind(input, args)
	case TypeProject:
		return parseProject(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a module name"}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Module: strings.ToLower(args[0])}}, nil
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseFind(raw string, args []string) (Command, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "find requires a query"}
	}
	return Command{Type: TypeFind, Raw: raw, Find: &FindArgs{Query: query}}, nil
}

func parseProject(raw string, args []string) (Command, error) {
	// "project" with no argument clears the active project filter.
	name := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeProject, Raw: raw, Project: &ProjectArgs{Name: name}}, nil
}

type Result struct {
	Message string
}

type Handlers struct {
	Goto    func(GotoArgs) (Result, error)
	Add     func(AddArgs) (Result, error)
	Find    func(FindArgs) (Result, error)
	Project func(ProjectArgs) (Result, error)
}

// Execute dispatches a parsed command to its handler. A missing handler is
// reported as an invalid argument rather than a panic.
func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeGoto:
		if handlers.Goto == nil || cmd.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto is not available here"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeAdd:
		if handlers.Add == nil || cmd.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add is not available here"}
		}
		return handlers.Add(*cmd.Add)
	case TypeFind:
		if handlers.Find == nil || cmd.Find == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "find is not available here"}
		}
		return handlers.Find(*cmd.Find)
	case TypeProject:
		if handlers.Project == nil || cmd.Project == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "project is not available here"}
		}
		return handlers.Project(*cmd.Project)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", cmd.Type)}
	}
}
