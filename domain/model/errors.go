package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrZoneNotFound is returned by ZonePort.Get when no zone matches.
	ErrZoneNotFound = errors.New("zone not found")
	// ErrHostNotFound is returned by HostPort.Get when no host matches.
	ErrHostNotFound = errors.New("host not found")
)

// MissingArgsError reports required input attributes that were not declared.
// The message format is fixed; external harnesses match it literally.
type MissingArgsError struct {
	Args []string
}

func (e *MissingArgsError) Error() string {
	return "missing required arguments: " + strings.Join(e.Args, ",")
}

// FetchError reports a failed read of remote state. It is surfaced to the
// caller unchanged; reads are never retried within a reconcile.
type FetchError struct {
	Kind string
	Name string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ApplyError reports a failed create, update or delete call. The reconcile
// aborts without marking a change; remote state is whatever the API left it.
type ApplyError struct {
	Kind string
	Name string
	Op   string
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to %s %s %s: %v", e.Op, e.Kind, e.Name, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }
