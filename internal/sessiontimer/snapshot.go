package sessiontimer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoSnapshot is returned by a Storage when nothing is saved under a key.
var ErrNoSnapshot = errors.New("no timer snapshot")

// Snapshot is a point-in-time copy of a timer's state.
type Snapshot struct {
	Mode     Mode          `json:"mode"`
	Initial  time.Duration `json:"initial"`
	Time     time.Duration `json:"time"`
	Running  bool          `json:"running"`
	Complete bool          `json:"complete"`
}

// Display renders the snapshot value as mm:ss.
func (s Snapshot) Display() string {
	return Format(s.Time)
}

// Storage persists snapshots outside the process.
type Storage interface {
	Load(ctx context.Context, key string) (Snapshot, error)
	Save(ctx context.Context, key string, snap Snapshot) error
	Delete(ctx context.Context, key string) error
}

// Restore rebuilds a timer from a snapshot. The result is never running:
// a timer that was running when saved comes back paused at the saved value.
func Restore(snap Snapshot, opts ...Option) *Timer {
	t := New(snap.Mode, snap.Initial, opts...)

	v := snap.Time
	if v < 0 {
		v = 0
	}
	if t.mode == Countdown && v > t.initial {
		v = t.initial
	}
	t.value = v
	if t.mode == Stopwatch {
		t.resume = v
	} else {
		t.complete = snap.Complete
	}
	return t
}

// Format renders d as mm:ss using floor division. Negative values render
// as 00:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
