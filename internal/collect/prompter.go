package collect

import "context"

// Choice is the user's answer to a confirmation
type Choice int

const (
	ChoiceYes Choice = iota
	ChoiceNo
	ChoiceAbort
)

// String returns the answer name
func (c Choice) String() string {
	switch c {
	case ChoiceYes:
		return "yes"
	case ChoiceNo:
		return "no"
	case ChoiceAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Prompter asks the user to confirm collection decisions.
type Prompter interface {
	// ConfirmFolder asks whether all files in dir should be included.
	ConfirmFolder(ctx context.Context, dir string) (Choice, error)

	// ConfirmReplace asks whether the listed existing path should be replaced
	// by candidate, which has the same file name. ChoiceAbort may only be
	// offered when canAbort is true.
	ConfirmReplace(ctx context.Context, existing, candidate string, canAbort bool) (Choice, error)
}

// FixedPrompter answers every question with preset choices. It is used for
// non-interactive collection.
type FixedPrompter struct {
	Folder  Choice
	Replace Choice
}

// ConfirmFolder returns the preset folder answer
func (p FixedPrompter) ConfirmFolder(_ context.Context, _ string) (Choice, error) {
	return p.Folder, nil
}

// ConfirmReplace returns the preset replace answer. An abort preset turns
// into ChoiceNo where abort is not offered.
func (p FixedPrompter) ConfirmReplace(_ context.Context, _, _ string, canAbort bool) (Choice, error) {
	if p.Replace == ChoiceAbort && !canAbort {
		return ChoiceNo, nil
	}
	return p.Replace, nil
}
