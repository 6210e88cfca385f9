// Package game provides the turn controller and the terminal game loop.
package game

import "github.com/samdwyer/tilerogue/internal/combat"

// Phase is where the turn controller stands after the last input.
type Phase int

const (
	// PhaseIdle is the state before any input has been processed.
	PhaseIdle Phase = iota
	// PhaseResolving is held while one input is being resolved.
	PhaseResolving
	// PhaseMoved means the hero stepped into the destination cell.
	PhaseMoved
	// PhaseBlocked means a wall or an enemy kept the hero in place.
	PhaseBlocked
	// PhaseLevelTransition means the hero reached the door and a new level was generated.
	PhaseLevelTransition
	// PhaseDead is terminal: the hero's health dropped to zero or below.
	PhaseDead
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseMoved:
		return "moved"
	case PhaseBlocked:
		return "blocked"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Outcome reports what one processed input did.
type Outcome struct {
	Phase      Phase
	Moved      bool
	Blocked    bool           // a wall or an enemy prevented the move
	ItemPicked string         // name of the consumed item, if any
	LeveledUp  bool           // the door was reached and a new map generated
	Combat     *combat.Result // set when the hero attacked an enemy
	Dead       bool
	Level      int // level number after the input
}
