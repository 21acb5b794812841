package gcalendar

import "context"

// ICalendar is the calendar contract consumed by the delivery layer.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

var _ ICalendar = (*Client)(nil)
