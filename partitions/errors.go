package partitions

import (
	"fmt"
)

// BackendUnavailableError is returned when the requested partition
// backend is not compiled into this build. No graph construction or
// tag mutation is attempted.
type BackendUnavailableError struct {
	Backend Backend
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("partition backend %q is not available in this build", e.Backend)
}

// BackendFailureError is returned when a backend ran but rejected the
// request or could not produce a valid partition
type BackendFailureError struct {
	Backend Backend
	Err     error
}

func (e *BackendFailureError) Error() string {
	return fmt.Sprintf("partition backend %q failed: %v", e.Backend, e.Err)
}

func (e *BackendFailureError) Unwrap() error {
	return e.Err
}

// IndexConversionError is returned when an adjacency index exceeds
// the integer width of the chosen backend
type IndexConversionError struct {
	Backend Backend
	Value   int
}

func (e *IndexConversionError) Error() string {
	return fmt.Sprintf("adjacency index %d overflows the integer width of backend %q",
		e.Value, e.Backend)
}

// MissingConnectivityError is returned when an operation requires a
// connectivity artifact that has not been computed. This is a
// precondition failure, not a recomputation trigger.
type MissingConnectivityError struct {
	What string
}

func (e *MissingConnectivityError) Error() string {
	return fmt.Sprintf("%s connectivity not computed", e.What)
}

// InvalidPartitionCountError is returned when the requested partition
// count is outside (0, NumElements]
type InvalidPartitionCountError struct {
	NParts      int
	NumElements int
}

func (e *InvalidPartitionCountError) Error() string {
	return fmt.Sprintf("invalid partition count %d for mesh with %d elements",
		e.NParts, e.NumElements)
}
