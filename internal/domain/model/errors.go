package model

import "fmt"

// ConfigurationError is fatal: the run aborts before any allocation and no
// partial output is written.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// NewConfigurationError builds a fatal configuration error.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// DataError marks a non-fatal input problem, such as an empty source or hub
// set. The run short-circuits to an empty corridor output and records the
// diagnostic.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error: %s", e.Reason)
}

// NewDataError builds a non-fatal data diagnostic.
func NewDataError(format string, args ...interface{}) *DataError {
	return &DataError{Reason: fmt.Sprintf(format, args...)}
}

// ComputationError marks a single unreachable (source, hub) pair. It is
// isolated per pair: recorded as infinite cost, counted, and never aborts
// the overall run.
type ComputationError struct {
	SourceLabel string
	HubID       int
	Reason      string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error: %s -> hub %d: %s", e.SourceLabel, e.HubID, e.Reason)
}
