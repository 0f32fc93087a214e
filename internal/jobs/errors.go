package jobs

import "errors"

var (
	// ErrTooManyJobs is returned when every slot in the table is occupied.
	ErrTooManyJobs = errors.New("too many jobs")

	// ErrInvalidPid is returned for non-positive process ids.
	ErrInvalidPid = errors.New("invalid process id")

	// ErrNoSuchJob is returned when a bg/fg target resolves to no live job.
	ErrNoSuchJob = errors.New("no such job")
)
