package domain

import (
	"context"
	"image"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTopicStart   EventType = "topic_start"
	EventFrame        EventType = "frame"
	EventTopicDone    EventType = "topic_done"
	EventGuideWritten EventType = "guide_written"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// FrameEvent is emitted after a frame of a topic has been rendered.
// Image must not be retained after the callback returns.
type FrameEvent struct {
	EventBase
	Topic   TopicID       `json:"topic"`
	Index   int           `json:"index"`
	Total   int           `json:"total"`
	Elapsed time.Duration `json:"elapsed"`
	Image   image.Image   `json:"-"`
}

// TopicEvent marks the start or end of a topic's frame loop.
type TopicEvent struct {
	EventBase
	Topic  TopicID `json:"topic"`
	Frames int     `json:"frames"`
}

// GuideEvent is emitted once the guide document is on disk.
type GuideEvent struct {
	EventBase
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

// LifecycleHooks defines callbacks for generation observability.
type LifecycleHooks struct {
	OnTopicStart   func(context.Context, *TopicEvent)
	OnFrame        func(context.Context, *FrameEvent)
	OnTopicDone    func(context.Context, *TopicEvent)
	OnGuideWritten func(context.Context, *GuideEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTopicStart:   chain(h.OnTopicStart, other.OnTopicStart),
		OnFrame:        chain(h.OnFrame, other.OnFrame),
		OnTopicDone:    chain(h.OnTopicDone, other.OnTopicDone),
		OnGuideWritten: chain(h.OnGuideWritten, other.OnGuideWritten),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
