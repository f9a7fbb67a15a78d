package wireflow

// MisuseError is raised for the fatal misuse cases of this engine: sending
// from inside a callback, sending twice in one transaction to a sink with
// no combining function, binding a loop stream/cell twice or outside the
// transaction that created it, calling a transaction-bound operation with
// no active transaction, and MergeAll with no streams. A loop that is never
// bound is not detected; it simply never fires. It carries a trace id so a recovering
// caller can correlate the panic with the log line trace.go emitted for
// the same event.
type MisuseError struct {
	Message string
	TraceID string
}

func (e *MisuseError) Error() string {
	return e.Message
}

func newMisuseError(message string) *MisuseError {
	err := &MisuseError{Message: message, TraceID: newTraceID()}
	logMisuse(err)
	return err
}
