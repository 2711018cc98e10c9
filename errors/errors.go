package errors

import "fmt"

var (
	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrAlreadyQueued = fmt.Errorf("user already in the queue")
	ErrNotQueued     = fmt.Errorf("user not in the queue")
	ErrQueueEmpty    = fmt.Errorf("queue is empty")
	ErrInboundFull   = fmt.Errorf("inbound channel is full")
	ErrClosed        = fmt.Errorf("orchestrator is closed")
	ErrUnknownUser   = fmt.Errorf("unknown user")
	ErrInvalidUser   = fmt.Errorf("invalid user")
)
