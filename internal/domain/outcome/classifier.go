// Package outcome turns a completed restaurant-call transcript into a
// terminal reservation status.
package outcome

import (
	"fmt"
	"strings"

	"tableline/internal/domain/reservation"
)

// Confirmation phrases are checked before decline phrases; a transcript
// matching both classifies as confirmed.
var confirmLexicon = []string{
	"confirmed",
	"booked",
	"see you",
	"all set",
	"reservation for",
}

var declineLexicon = []string{
	"fully booked",
	"no availability",
	"closed",
	"cannot",
	"can't",
}

// KeywordClassifier is the baseline substring classifier. It sits behind the
// usecase.OutcomeClassifier interface so a scoring or learned model can
// replace it without touching the coordinator.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify is pure and case-insensitive. An indeterminate transcript maps to
// the error status with a human-fallback detail rather than a Go error.
// Decline phrases are masked out before the confirm scan so "fully booked"
// does not read as "booked".
func (c *KeywordClassifier) Classify(transcript, customerName string) (reservation.Status, string) {
	lowered := strings.ToLower(transcript)

	masked := lowered
	for _, phrase := range declineLexicon {
		masked = strings.ReplaceAll(masked, phrase, " ")
	}

	if containsAny(masked, confirmLexicon) {
		name := strings.TrimSpace(customerName)
		if name != "" && strings.Contains(lowered, strings.ToLower(name)) {
			return reservation.StatusConfirmed,
				fmt.Sprintf("The restaurant confirmed the reservation under the name %s.", name)
		}
		return reservation.StatusConfirmed, "The restaurant confirmed the reservation."
	}

	if containsAny(lowered, declineLexicon) {
		return reservation.StatusDeclined,
			"The restaurant was unable to accommodate the reservation."
	}

	return reservation.StatusError,
		"The call ended without a clear answer. Please call the restaurant directly to confirm."
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
