package dataset

import "fmt"

// ErrUnreadableFile indicates a dataset file could not be opened or decoded.
type ErrUnreadableFile struct {
	Path string
	Err  error
}

func (e *ErrUnreadableFile) Error() string {
	return fmt.Sprintf("unreadable dataset %s: %v", e.Path, e.Err)
}

func (e *ErrUnreadableFile) Unwrap() error {
	return e.Err
}

// ErrFetch indicates a remote dataset could not be downloaded.
type ErrFetch struct {
	Name string
	Err  error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("fetch dataset %s: %v", e.Name, e.Err)
}

func (e *ErrFetch) Unwrap() error {
	return e.Err
}

// ErrUnknownDataset indicates a catalog lookup by name failed.
type ErrUnknownDataset struct {
	Name string
}

func (e *ErrUnknownDataset) Error() string {
	return fmt.Sprintf("unknown dataset: %s", e.Name)
}
