package workflow

import "smart-planner/internal/model"

// PhaseID names a node in a workflow definition.
type PhaseID string

// Phase is one slot-collection step. A phase with no RequiredSlots is
// always complete; a phase with no NextPhase is terminal.
type Phase struct {
	ID            PhaseID
	RequiredSlots []model.Slot
	OptionalSlots []model.Slot
	NextPhase     PhaseID
}

// IsComplete reports whether every required slot is present.
func (p Phase) IsComplete(entities model.Entities) bool {
	return entities.Has(p.RequiredSlots...)
}

// Definition is the static phase graph for one planning domain.
type Definition struct {
	Domain     model.Domain
	StartPhase PhaseID
	Phases     map[PhaseID]Phase
}

// State tracks one session's progress through a definition.
type State struct {
	Domain          model.Domain `json:"domain"`
	CurrentPhaseID  PhaseID      `json:"currentPhaseId"`
	CompletedPhases []PhaseID    `json:"completedPhases"`
	IsComplete      bool         `json:"isComplete"`
}
