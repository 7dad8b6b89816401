package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Find   func(FindArgs) (Result, error)
	Sort   func(SortArgs) (Result, error)
	Volume func(VolumeArgs) (Result, error)
	Delay  func(DelayArgs) (Result, error)
	Reset  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeFind:
		if handlers.Find == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "find handler not configured"}
		}
		return handlers.Find(*cmd.Find)
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sort handler not configured"}
		}
		return handlers.Sort(*cmd.Sort)
	case TypeVolume:
		if handlers.Volume == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "volume handler not configured"}
		}
		return handlers.Volume(*cmd.Volume)
	case TypeDelay:
		if handlers.Delay == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delay handler not configured"}
		}
		return handlers.Delay(*cmd.Delay)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
