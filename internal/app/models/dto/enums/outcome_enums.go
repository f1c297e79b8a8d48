package enums

// OutcomeStatus is the machine-checkable result of an enrollment or session
// operation. The API layer translates these into HTTP statuses; callers
// should never have to parse the human-readable message.
type OutcomeStatus string

const (
	OutcomeRegistered        OutcomeStatus = "REGISTERED"
	OutcomeAlreadyRegistered OutcomeStatus = "ALREADY_REGISTERED"
	OutcomeCourseFull        OutcomeStatus = "COURSE_FULL"
	OutcomeDropped           OutcomeStatus = "DROPPED"
	OutcomeNotRegistered     OutcomeStatus = "NOT_REGISTERED"
	OutcomeNotFound          OutcomeStatus = "NOT_FOUND"
	OutcomeSystemError       OutcomeStatus = "SYSTEM_ERROR"
)

// Success reports whether the outcome represents a completed mutation.
func (s OutcomeStatus) Success() bool {
	return s == OutcomeRegistered || s == OutcomeDropped
}
