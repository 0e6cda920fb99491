package navigation

import (
	"context"
	"errors"
	"fmt"

	"github.com/datatug/pathview/pkg/files"
)

type Event string

const (
	EventPathEntered Event = "path-entered"
	EventRefresh     Event = "refresh"
	EventActivate    Event = "activate"
	EventBack        Event = "back"
	EventUp          Event = "up"
	EventExit        Event = "exit"
)

var ErrUnknownEvent = errors.New("unknown event")

// Snapshot is what a view needs to redraw after an event.
type Snapshot struct {
	Path string
	// DirName is the base name of the last listed directory.
	DirName string
	Entries []files.DirEntry
	// Content is the text of the last opened file, empty after navigation.
	Content string
	// ContentName is the name of the file Content was read from.
	ContentName string
	Exited      bool
}

type handler func(ctx context.Context, c *Controller, arg string)

var handlers = map[Event]handler{
	EventPathEntered: func(ctx context.Context, c *Controller, arg string) {
		c.SetPath(arg)
		c.Refresh(ctx)
	},
	EventRefresh: func(ctx context.Context, c *Controller, _ string) {
		c.Refresh(ctx)
	},
	EventActivate: func(ctx context.Context, c *Controller, arg string) {
		c.Activate(ctx, arg)
	},
	EventBack: func(ctx context.Context, c *Controller, _ string) {
		c.Back(ctx)
	},
	EventUp: func(ctx context.Context, c *Controller, _ string) {
		c.Up(ctx)
	},
	EventExit: func(_ context.Context, c *Controller, _ string) {
		c.Exit()
	},
}

// DispatchErr runs the handler registered for event.
func (c *Controller) DispatchErr(ctx context.Context, event Event, arg string) (Snapshot, error) {
	h, ok := handlers[event]
	if !ok {
		return c.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	h(ctx, c, arg)
	return c.Snapshot(), nil
}

// Dispatch is DispatchErr that logs and drops unknown events.
func (c *Controller) Dispatch(ctx context.Context, event Event, arg string) Snapshot {
	snapshot, err := c.DispatchErr(ctx, event, arg)
	if err != nil {
		c.log.Warn(err)
	}
	return snapshot
}
