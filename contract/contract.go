//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"queue-bot/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// Finisher is notified once the supervisor will never run a worker again.
type Finisher interface {
	Finish()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if wrapper, ok := w.(interface{ Unwrap() Worker }); ok {
		return GetWorkerName(wrapper.Unwrap())
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ReplySink delivers outbound replies (console, transcript, chat API...).
type ReplySink interface {
	Consume(ctx context.Context, out domain.Outbound) error
}

// IDispatcher is the queue state machine as seen by the runtime.
type IDispatcher interface {
	Handle(msg domain.Message) (domain.Reply, bool)
	Len() int
}
