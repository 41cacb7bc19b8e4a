package manager

import "github.com/kasuboski/tvsort/pkg/machine"

// Stage is the last step a placement completed
type Stage string

const (
	StagePlanned  Stage = "planned"
	StagePrepared Stage = "prepared"
	StageMoved    Stage = "moved"
	StageRecorded Stage = "recorded"
	StagePruned   Stage = "pruned"
	StageCleaned  Stage = "cleaned"
)

// newPlacementMachine orders the placement steps. Nothing is pruned before the new file is in place,
// and recording is skipped when there is no store.
func newPlacementMachine() *machine.StateMachine[Stage] {
	return machine.New(StagePlanned,
		machine.From(StagePlanned).To(StagePrepared),
		machine.From(StagePrepared).To(StageMoved),
		machine.From(StageMoved).To(StageRecorded, StagePruned),
		machine.From(StageRecorded).To(StagePruned),
		machine.From(StagePruned).To(StageCleaned),
	)
}
