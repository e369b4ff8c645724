// Package lifecycle exposes the notes-home change feed as a lifecycle.Source.
package lifecycle

import (
	"context"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/yoda/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	quiet  time.Duration
	out    chan lifecycle.Event
}

// NewSource wraps the change feed of a notes home. Changes arriving less
// than quiet apart are collapsed into the last one, so an editor saving a
// file in several writes yields a single event. A zero quiet forwards
// every change.
func NewSource(events <-chan core.Event, quiet time.Duration) lifecycle.Source {
	return &noteSource{
		events: events,
		quiet:  quiet,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start runs the forwarder until ctx ends or the feed closes; a change still
// held back when the feed closes is delivered before Events() is closed.
func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.forward)
	return nil
}

func (s *noteSource) forward(ctx context.Context) error {
	defer close(s.out)

	var (
		pending core.Event
		held    bool
		timer   *time.Timer
		settled <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-s.events:
			if !ok {
				if held {
					s.emit(ctx, pending)
				}
				return nil
			}
			if s.quiet <= 0 {
				if !s.emit(ctx, e) {
					return nil
				}
				continue
			}
			pending, held = e, true
			if timer == nil {
				timer = time.NewTimer(s.quiet)
			} else {
				timer.Reset(s.quiet)
			}
			settled = timer.C

		case <-settled:
			settled = nil
			held = false
			if !s.emit(ctx, pending) {
				return nil
			}
		}
	}
}

func (s *noteSource) emit(ctx context.Context, e core.Event) bool {
	select {
	case s.out <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
