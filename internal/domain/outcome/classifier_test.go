//go:build unit

package outcome_test

import (
	"testing"

	"tableline/internal/domain/outcome"
	"tableline/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := outcome.NewKeywordClassifier()

	cases := []struct {
		name         string
		transcript   string
		customerName string
		wantStatus   reservation.Status
		wantInDetail string
	}{
		{
			name:         "confirmation without customer name",
			transcript:   "The table is confirmed, see you at 7!",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusConfirmed,
			wantInDetail: "confirmed the reservation",
		},
		{
			name:         "confirmation mentioning customer name",
			transcript:   "All set, we have a reservation for Jane Doe at seven.",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusConfirmed,
			wantInDetail: "Jane Doe",
		},
		{
			name:         "name match is case-insensitive",
			transcript:   "Booked under JANE DOE tonight.",
			customerName: "jane doe",
			wantStatus:   reservation.StatusConfirmed,
			wantInDetail: "jane doe",
		},
		{
			name:         "fully booked declines",
			transcript:   "Sorry, we are fully booked tonight.",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusDeclined,
			wantInDetail: "unable to accommodate",
		},
		{
			name:         "closed declines",
			transcript:   "We're closed on Mondays.",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusDeclined,
		},
		{
			name:         "cannot declines",
			transcript:   "We cannot take parties that large.",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusDeclined,
		},
		{
			name:         "indeterminate transcript",
			transcript:   "Hello, thanks for calling.",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusError,
			wantInDetail: "call the restaurant directly",
		},
		{
			name:         "empty transcript",
			transcript:   "",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusError,
		},
		{
			// Both lexicons match; the confirm scan runs first and wins.
			name:         "confirm lexicon takes precedence over decline lexicon",
			transcript:   "We were fully booked but we squeezed you in, you're booked and confirmed!",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusConfirmed,
		},
		{
			name:         "case-insensitive matching",
			transcript:   "YOUR RESERVATION FOR TONIGHT IS CONFIRMED",
			customerName: "Jane Doe",
			wantStatus:   reservation.StatusConfirmed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := classifier.Classify(tc.transcript, tc.customerName)
			assert.Equal(t, tc.wantStatus, status)
			assert.NotEmpty(t, detail)
			if tc.wantInDetail != "" {
				assert.Contains(t, detail, tc.wantInDetail)
			}
		})
	}
}

func TestClassifyNameOnlyMentionedWhenPresent(t *testing.T) {
	classifier := outcome.NewKeywordClassifier()

	_, detail := classifier.Classify("You're all set for tonight.", "Jane Doe")
	assert.NotContains(t, detail, "Jane Doe")
}
