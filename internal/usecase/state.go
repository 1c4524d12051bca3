package usecase

// screeningState tracks the pipeline position of a single screening request.
// The pipeline moves strictly forward; Shortlisted, RejectedByMatch and
// RejectedFinal are terminal and each maps to exactly one persistence commit.
type screeningState int

const (
	stateStart screeningState = iota
	stateExtracted
	stateSummarized
	stateMatched
	stateFinalCheck
	stateShortlisted
	stateRejectedByMatch
	stateRejectedFinal
)

func (s screeningState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateExtracted:
		return "extracted"
	case stateSummarized:
		return "summarized"
	case stateMatched:
		return "matched"
	case stateFinalCheck:
		return "final_check"
	case stateShortlisted:
		return "shortlisted"
	case stateRejectedByMatch:
		return "rejected_by_match"
	case stateRejectedFinal:
		return "rejected_final"
	default:
		return "unknown"
	}
}

func (s screeningState) terminal() bool {
	switch s {
	case stateShortlisted, stateRejectedByMatch, stateRejectedFinal:
		return true
	}
	return false
}
