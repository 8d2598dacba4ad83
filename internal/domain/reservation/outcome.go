package reservation

// Outcome is the tagged terminal result of a reservation attempt. It is unset
// until the attempt reaches a terminal status, so callers can never read a
// confirmation detail that was never written.
type Outcome interface {
	OutcomeStatus() Status
	Summary() string
}

// Confirmed carries the restaurant's confirmation details.
type Confirmed struct {
	Details string
}

func (o Confirmed) OutcomeStatus() Status { return StatusConfirmed }
func (o Confirmed) Summary() string       { return o.Details }

// Declined carries the restaurant's stated reason for declining.
type Declined struct {
	Reason string
}

func (o Declined) OutcomeStatus() Status { return StatusDeclined }
func (o Declined) Summary() string       { return o.Reason }

// Unreached covers the terminal states where the restaurant conversation never
// produced a decision: busy line, no answer, or an indeterminate transcript.
type Unreached struct {
	Status Status
	Note   string
}

func (o Unreached) OutcomeStatus() Status { return o.Status }
func (o Unreached) Summary() string       { return o.Note }

func outcomeFor(status Status, detail string) Outcome {
	switch status {
	case StatusConfirmed:
		return Confirmed{Details: detail}
	case StatusDeclined:
		return Declined{Reason: detail}
	case StatusRestaurantBusy, StatusNoAnswer, StatusError:
		return Unreached{Status: status, Note: detail}
	default:
		return nil
	}
}
