package http

import "errors"

var (
	// ErrEmptyMessage indicates a chat request whose message is blank
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrExportUnavailable indicates calendar export is not configured
	ErrExportUnavailable = errors.New("calendar export is not configured")

	// ErrPlanNotExportable indicates the plan carries no date range
	ErrPlanNotExportable = errors.New("plan has no date range to export")
)
