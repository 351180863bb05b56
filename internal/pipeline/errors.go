package pipeline

import "fmt"

// ConfigurationError reports invalid pipeline configuration detected
// before any I/O is attempted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// FetchError reports a failed download of one dataset file from the
// remote origin.
type FetchError struct {
	File string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.File, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StageWriteError reports a failed upload of one fetched dataset file
// into the staging bucket.
type StageWriteError struct {
	File string
	Err  error
}

func (e *StageWriteError) Error() string {
	return fmt.Sprintf("failed to stage %s: %v", e.File, e.Err)
}

func (e *StageWriteError) Unwrap() error { return e.Err }

// LoadError reports a rejected or failed warehouse load job for one
// target table.
type LoadError struct {
	Table string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load table %s: %v", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
