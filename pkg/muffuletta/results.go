package muffuletta

// FlowAction represents how the user left a StepFlow widget.
type FlowAction int

const (
	FlowActionNone      FlowAction = iota // Widget exited without a terminal action
	FlowActionCompleted                   // User confirmed the final step (Start button)
	FlowActionTriggered                   // User triggered the action button on the current step
)
