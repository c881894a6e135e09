package backend

import "fmt"

// Status is a backend result code.
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalidArguments
	StatusNoSuchDevice
	StatusMemoryAllocationFailure
	StatusRuntimeError
	StatusMemoryCopyError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidArguments:
		return "invalid arguments"
	case StatusNoSuchDevice:
		return "no such device"
	case StatusMemoryAllocationFailure:
		return "memory allocation failure"
	case StatusRuntimeError:
		return "runtime error"
	case StatusMemoryCopyError:
		return "memory copy error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// StatusError reports a non-success status from a backend.
type StatusError struct {
	Backend string
	Status  Status
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %s: %v", e.Backend, e.Status, e.Err)
	}
	return fmt.Sprintf("backend %s: %s", e.Backend, e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
