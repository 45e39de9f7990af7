package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// StatusSuccess is the body status reported by successful update operations.
	StatusSuccess = "success"

	// ErrNilDepsLogMsg is used if the app, cfg, store or gate pointer is nil.
	ErrNilDepsLogMsg = "app, cfg, store or gate is nil"
)
