package measure

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateOperation indicates an operation name is already registered.
var ErrDuplicateOperation = errors.New("operation already registered")

// ErrNilOperation indicates a nil function was passed to Register.
var ErrNilOperation = errors.New("operation func must not be nil")

// Operation is a pure binary function over magnitudes that have already
// been brought to a common scale.
type Operation func(a, b float64) float64

// Ops is an append-only registry of named operations. Registration is
// observable: listeners subscribed via OnRegister are notified synchronously
// for every operation registered after they subscribe. All methods are safe
// for concurrent use.
type Ops struct {
	mu        sync.RWMutex
	fns       map[string]Operation
	listeners []func(name string, fn Operation)
}

// NewOps creates an empty operation registry.
func NewOps() *Ops {
	return &Ops{
		fns: make(map[string]Operation),
	}
}

// Register adds a named operation. It returns an error when the name is
// already registered or fn is nil. On success every subscribed listener is
// invoked exactly once with (name, fn), after the operation is stored and
// before Register returns.
func (o *Ops) Register(name string, fn Operation) error {
	if fn == nil {
		return fmt.Errorf("operation %q: %w", name, ErrNilOperation)
	}

	o.mu.Lock()
	if _, exists := o.fns[name]; exists {
		o.mu.Unlock()
		return fmt.Errorf("operation %q: %w", name, ErrDuplicateOperation)
	}
	o.fns[name] = fn
	listeners := make([]func(string, Operation), len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(name, fn)
	}
	return nil
}

// OnRegister subscribes a listener to future registrations. Listeners are
// not invoked retroactively for operations registered before subscription,
// and there is no unsubscribe.
func (o *Ops) OnRegister(listener func(name string, fn Operation)) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.listeners = append(o.listeners, listener)
}

// Lookup returns the operation registered under the given name.
func (o *Ops) Lookup(name string) (Operation, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	fn, ok := o.fns[name]
	return fn, ok
}

// Operations returns a snapshot of the current name to operation mapping.
// Mutating the returned map does not affect the registry.
func (o *Ops) Operations() map[string]Operation {
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := make(map[string]Operation, len(o.fns))
	for name, fn := range o.fns {
		result[name] = fn
	}
	return result
}
