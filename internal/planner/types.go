package planner

import (
	"encoding/json"
	"time"

	"gridplan/internal/grid"
)

type StopReason string

const (
	StopDeadline  StopReason = "deadline"
	StopBudget    StopReason = "budget"
	StopExhausted StopReason = "exhausted"
)

// Deadline is the time source the loop polls once per turn.
type Deadline interface {
	Expired() bool
	Elapsed() time.Duration
}

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Result struct {
	Committee       []int            `json:"committee"`
	Moves           []grid.Direction `json:"-"`
	Plan            string           `json:"plan"`
	Stop            StopReason       `json:"stop"`
	Iterations      int              `json:"iterations"`
	Elapsed         time.Duration    `json:"-"`
	ElapsedMs       int64            `json:"elapsed_ms"`
	CommitteeScores []int            `json:"committee_scores"`
	Events          []Event          `json:"events,omitempty"`
	Eval            *Evaluation      `json:"eval,omitempty"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
