package reservation

// Status is the single lifecycle enumeration for a reservation attempt.
//
// initiated → calling_restaurant → speaking_with_restaurant →
// checking_availability → {confirmed | declined | restaurant_busy |
// no_answer | error}
type Status string

const (
	StatusInitiated              Status = "initiated"
	StatusCallingRestaurant      Status = "calling_restaurant"
	StatusSpeakingWithRestaurant Status = "speaking_with_restaurant"
	StatusCheckingAvailability   Status = "checking_availability"
	StatusConfirmed              Status = "confirmed"
	StatusDeclined               Status = "declined"
	StatusRestaurantBusy         Status = "restaurant_busy"
	StatusNoAnswer               Status = "no_answer"
	StatusError                  Status = "error"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInitiated, StatusCallingRestaurant, StatusSpeakingWithRestaurant,
		StatusCheckingAvailability, StatusConfirmed, StatusDeclined,
		StatusRestaurantBusy, StatusNoAnswer, StatusError:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s is an end-of-attempt outcome. Terminal statuses
// are never regressed once recorded on a reservation.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusDeclined, StatusRestaurantBusy, StatusNoAnswer, StatusError:
		return true
	default:
		return false
	}
}

// Source identifies which side of the two-call bridge produced a transition.
type Source string

const (
	SourceInbound  Source = "inbound"
	SourceOutbound Source = "outbound"
	SourceSystem   Source = "system"
)

func (s Source) String() string {
	return string(s)
}
