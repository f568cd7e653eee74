package animation

import (
	"fmt"

	"github.com/go-drift/flipbook/pkg/geometry"
)

// Status is the controller-visible activity state of a Flipbook.
//
//	          Queue / PlayNow
//	Resting ──────────────────► Busy
//	   ▲                          │
//	   │  queue drained / DropAll │
//	   └──────────────────────────┘
type Status int

const (
	// Resting means no task is active and the queue is empty.
	Resting Status = iota
	// Busy means a transition or delay is running.
	Busy
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case Resting:
		return "resting"
	case Busy:
		return "busy"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// message is anything the driver goroutine consumes.
type message interface {
	name() string
}

type queueCmd struct{ builder Builder }

type playNowCmd struct{ builder Builder }

type pauseCmd struct{}

type resumeCmd struct{}

type dropAllCmd struct{}

type setRectCmd struct{ rect geometry.Rect }

type flushCmd struct{ ack chan struct{} }

// taskDone is posted by a task body when it returns.
type taskDone struct {
	gen uint64
	err error
}

func (queueCmd) name() string   { return "queue" }
func (playNowCmd) name() string { return "play now" }
func (pauseCmd) name() string   { return "pause" }
func (resumeCmd) name() string  { return "resume" }
func (dropAllCmd) name() string { return "drop all" }
func (setRectCmd) name() string { return "set rect" }
func (flushCmd) name() string   { return "flush" }
func (taskDone) name() string   { return "task done" }
