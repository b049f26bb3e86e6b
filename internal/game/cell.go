package game

// Input is a raw host value that converts to an optional command.
type Input[C any] interface {
	Command() (C, bool)
}

// CommandCell is a single-slot, last-write-wins mailbox between the host's
// input handling and the driver. It is not synchronised: the host must write
// it from the goroutine that calls Driver.Resume.
type CommandCell[T any] struct {
	v T
}

// Set overwrites the current value.
func (c *CommandCell[T]) Set(v T) { c.v = v }

// Get returns the current value.
func (c *CommandCell[T]) Get() T { return c.v }
