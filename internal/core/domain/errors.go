package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingDependency is recorded when a required resource reference has no table entry.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrInvalidDependency is recorded when a required resource reference exists but is itself invalid.
	ErrInvalidDependency = zerr.New("invalid dependency")

	// ErrMissingFile is recorded when a required file reference does not exist on disk.
	ErrMissingFile = zerr.New("missing file")

	// ErrTaskFailure is recorded when the executor reports that an analysis task failed.
	ErrTaskFailure = zerr.New("task failed")

	// ErrTaskPanicked is returned by executors when a task panics.
	ErrTaskPanicked = zerr.New("task panicked")

	// ErrExecutorClosed is reported for tasks submitted to a closed worker pool.
	ErrExecutorClosed = zerr.New("executor is closed")

	// ErrUnknownResourceType is returned when a manifest names a resource type that does not exist.
	ErrUnknownResourceType = zerr.New("unknown resource type")

	// ErrDuplicateResource is returned when a manifest declares the same resource ID twice.
	ErrDuplicateResource = zerr.New("duplicate resource id")

	// ErrEmptyResourceID is returned when a manifest declares a resource without an ID.
	ErrEmptyResourceID = zerr.New("resource id is empty")

	// ErrManifestNotFound is returned when no rescache.yaml is found walking up from the working directory.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrInvalidResources is returned by the check command when at least one resource is invalid.
	ErrInvalidResources = zerr.New("invalid resources found")
)
