package sim

// Singleton holds a single process-wide value that is not keyed by entity.
// Use it for shared state such as the current input direction. The
// one-writer-before-systems, one-reader-during-systems discipline is the
// caller's responsibility; there is no locking because ticks are sequential.
type Singleton[T any] struct {
	value T
}

// NewSingleton creates a singleton holding the initial value.
func NewSingleton[T any](initial T) *Singleton[T] {
	return &Singleton[T]{value: initial}
}

// Get returns a pointer to the held value.
func (s *Singleton[T]) Get() *T {
	return &s.value
}

// Set replaces the held value.
func (s *Singleton[T]) Set(value T) {
	s.value = value
}
