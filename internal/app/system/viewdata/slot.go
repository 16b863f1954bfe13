// internal/app/system/viewdata/slot.go
package viewdata

// LoadState is where one fetched resource on a page stands.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateError   LoadState = "error"
)

// Slot holds one independently fetched resource. A page with several
// resources gives each its own Slot so one failure leaves the others intact.
type Slot[T any] struct {
	State LoadState
	Data  T
	Error string // fixed user-facing text when State is StateError
}

// Loading returns a slot whose fetch has not finished.
func Loading[T any]() Slot[T] { return Slot[T]{State: StateLoading} }

// Loaded returns a slot holding v.
func Loaded[T any](v T) Slot[T] { return Slot[T]{State: StateLoaded, Data: v} }

// Failed returns a slot showing msg in place of the content.
func Failed[T any](msg string) Slot[T] { return Slot[T]{State: StateError, Error: msg} }

func (s Slot[T]) IsLoading() bool { return s.State == StateLoading || s.State == "" }
func (s Slot[T]) IsLoaded() bool  { return s.State == StateLoaded }
func (s Slot[T]) IsError() bool   { return s.State == StateError }
