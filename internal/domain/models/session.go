package models

// DialogStep is the position inside an active dialog.
type DialogStep int

const (
	StepAwaitingInput DialogStep = iota
	StepAwaitingConfirmation
)

// Dialog is the per-chat conversation state. A chat with no active
// dialog has no Dialog at all (nil in the session repository).
type Dialog interface {
	isDialog()
}

type ScheduleDialog struct {
	Step  DialogStep
	Draft *ScheduleRecord
}

type PersonalInfoDialog struct {
	Step  DialogStep
	Draft *PersonalInfoRecord
}

// ConcernDialog has a single step: new text silently replaces the draft.
type ConcernDialog struct {
	Draft *ConcernRecord
}

func (*ScheduleDialog) isDialog()     {}
func (*PersonalInfoDialog) isDialog() {}
func (*ConcernDialog) isDialog()      {}
