package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFind   Type = "find"
	TypeSort   Type = "sort"
	TypeVolume Type = "volume"
	TypeDelay  Type = "delay"
	TypeReset  Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name string
}

type FindArgs struct {
	Query string
}

type SortArgs struct {
	Key       string
	Direction string
}

type VolumeArgs struct {
	Value float64
}

type DelayArgs struct {
	Seconds int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Find   *FindArgs
	Sort   *SortArgs
	Volume *VolumeArgs
	Delay  *DelayArgs
}

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
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFind:
		return parseFind(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeVolume:
		return parseVolume(input, args)
	case TypeDelay:
		return parseDelay(input, args)
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name}}, nil
}

func parseFind(raw string, args []string) (Command, error) {
	// An empty query clears the search filter.
	query := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeFind, Raw: raw, Find: &FindArgs{Query: query}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires a key (name|role|hero|created)"}
	}
	key := strings.ToLower(args[0])
	switch key {
	case "name", "role", "hero", "created":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported sort key: %s", key)}
	}
	direction := "asc"
	if len(args) > 1 {
		direction = strings.ToLower(args[1])
		if direction != "asc" && direction != "desc" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported sort direction: %s", direction)}
		}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Key: key, Direction: direction}}, nil
}

func parseVolume(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "volume requires a value between 0 and 1"}
	}
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("volume is not a number: %s", args[0])}
	}
	return Command{Type: TypeVolume, Raw: raw, Volume: &VolumeArgs{Value: value}}, nil
}

func parseDelay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delay requires a number of seconds"}
	}
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("delay is not a number: %s", args[0])}
	}
	return Command{Type: TypeDelay, Raw: raw, Delay: &DelayArgs{Seconds: seconds}}, nil
}
