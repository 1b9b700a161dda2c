// Package enums declares enum types for the provider tests.
package enums

// Status of a long running task.
//
// Tasks start initializing and end up busy.
type Status string

const (
	Initializing    Status = "initializing"
	WaitingForInput Status = "waitingForInput"
	Busy            Status = "busy"
)

// Priority orders tasks.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Ratio has no constants.
type Ratio float64

type Switch bool

const (
	SwitchOff Switch = false
	SwitchOn  Switch = true
)

// Huge has a value that does not fit in 64 bits.
type Huge uint64

const (
	HugeMax Huge = 1<<64 - 1
)

type level int

const hidden level = 1

// Untyped constants are not members of any enum.
const Answer = 42
