package storage

import (
	"context"
	"errors"
)

type Storer interface {
	SaveRun(ctx context.Context, run *Run) error
}

type Reader interface {
	// LatestRun returns the most recently created run or ErrNoRuns.
	LatestRun(ctx context.Context) (*Run, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	JSON  Type = "json"
)

var Types = []Type{ES, PG, InMem, JSON}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// Readable reports whether a run saved to t can be read back by a later process.
func (t Type) Readable() bool {
	return t == PG
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
	ErrUnsupportedReader StorerError = "storage type %s cannot read runs back"
)

func (e StorerError) Error() string {
	return string(e)
}

var ErrNoRuns = errors.New("no evaluation runs stored")
