package engine

import (
	"context"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// Event is an inbound request from the display or the host.
type Event interface {
	event()
}

// RunValidation requests a new validation run.
type RunValidation struct{}

// SelectionChanged reports that the host selection changed.
type SelectionChanged struct{}

// SelectIcon requests that the icon with ID be selected.
type SelectIcon struct {
	ID string
}

// RemediateLayers requests layer remediation for the listed icons.
type RemediateLayers struct {
	IDs []string
}

func (RunValidation) event()    {}
func (SelectionChanged) event() {}
func (SelectIcon) event()       {}
func (RemediateLayers) event()  {}

// ParseEvent decodes a textual request: "run", "selection", "select <id>"
// or "remediate <id>...".
func ParseEvent(s string) (Event, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("empty event")
	}
	switch fields[0] {
	case "run":
		return RunValidation{}, nil
	case "selection":
		return SelectionChanged{}, nil
	case "select":
		if len(fields) != 2 {
			return nil, errors.New("select takes exactly one icon id")
		}
		return SelectIcon{ID: fields[1]}, nil
	case "remediate":
		if len(fields) < 2 {
			return nil, errors.New("remediate takes at least one icon id")
		}
		return RemediateLayers{IDs: fields[1:]}, nil
	default:
		return nil, errors.Newf("unknown event %q", fields[0])
	}
}

// Handle processes one event to completion.
func (e *Engine) Handle(ctx context.Context, ev Event) error {
	switch ev := ev.(type) {
	case RunValidation:
		_, err := e.Run(ctx)
		return err
	case SelectionChanged:
		e.SelectionChanged(ctx)
		return nil
	case SelectIcon:
		_, err := e.SelectIcon(ctx, ev.ID)
		return err
	case RemediateLayers:
		_, err := e.RemediateLayers(ctx, ev.IDs)
		return err
	default:
		return errors.Newf("unsupported event %T", ev)
	}
}

// Loop handles events one at a time until events is closed or ctx is done.
// Handler errors are logged and do not stop the loop.
func (e *Engine) Loop(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := e.Handle(ctx, ev); err != nil {
				if errors.Is(err, errors.ErrWrongContext) {
					e.logger.WarnContext(ctx, GuidanceMessage, "error", err)
					continue
				}
				e.logger.ErrorContext(ctx, "event failed", "event", eventName(ev), "error", err)
			}
		}
	}
}

func eventName(ev Event) string {
	switch ev.(type) {
	case RunValidation:
		return "run"
	case SelectionChanged:
		return "selection"
	case SelectIcon:
		return "select"
	case RemediateLayers:
		return "remediate"
	default:
		return "unknown"
	}
}
