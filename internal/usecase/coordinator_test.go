//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tableline/internal/domain/outcome"
	"tableline/internal/domain/reservation"
	"tableline/internal/infra/mailbox"
	"tableline/internal/infra/memstore"
	"tableline/internal/pkg/clock"
	"tableline/internal/pkg/errs"
	"tableline/internal/usecase"
	"tableline/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	coordinator usecase.Coordinator
	store       *memstore.Store
	mailbox     *mailbox.Mailbox
	clock       *clock.MockClock
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	t.Helper()

	store := memstore.NewStore()
	box := mailbox.NewMailbox()
	mock := clock.NewMockClock(builder.NewReservationBuilder().Now())
	logger := slog.New(slog.DiscardHandler)

	return &coordinatorFixture{
		coordinator: usecase.NewCoordinator(store, box, outcome.NewKeywordClassifier(), mock, logger),
		store:       store,
		mailbox:     box,
		clock:       mock,
	}
}

func (f *coordinatorFixture) createWithSessions(t *testing.T) (uuid.UUID, string, string) {
	t.Helper()

	b := builder.NewReservationBuilder()
	id, err := f.coordinator.CreateReservation(context.Background(), b.Intent(), b.InboundSessionID())
	require.NoError(t, err)

	outboundSession := "call-outbound-1"
	require.NoError(t, f.coordinator.AttachOutboundSession(context.Background(), id, outboundSession))
	return id, b.InboundSessionID(), outboundSession
}

func TestCreateReservationStartsInitiated(t *testing.T) {
	f := newCoordinatorFixture(t)
	b := builder.NewReservationBuilder()

	id, err := f.coordinator.CreateReservation(context.Background(), b.Intent(), b.InboundSessionID())
	require.NoError(t, err)

	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusInitiated, res.Status())
	assert.Equal(t, b.InboundSessionID(), res.InboundSessionID())
	assert.Empty(t, f.mailbox.Drain(b.InboundSessionID()))
}

func TestCreateReservationRejectsInvalidIntent(t *testing.T) {
	f := newCoordinatorFixture(t)
	b := builder.NewReservationBuilder().WithCustomerName("")

	_, err := f.coordinator.CreateReservation(context.Background(), b.Intent(), b.InboundSessionID())
	assert.ErrorIs(t, err, reservation.ErrMissingCustomerName)
}

func TestAdvanceStatusNotifiesCounterpartExactlyOnce(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, inbound, outbound := f.createWithSessions(t)

	err := f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusConfirmed, "Confirmed, table for 2 at 7pm under Jane.", outbound)
	require.NoError(t, err)

	inboundMsgs := f.coordinator.DrainForSession(inbound)
	require.Len(t, inboundMsgs, 1)
	assert.Contains(t, inboundMsgs[0], "Great news!")
	assert.Contains(t, inboundMsgs[0], "Chez Panisse")
	assert.Contains(t, inboundMsgs[0], "Confirmed, table for 2 at 7pm under Jane.")

	// The source session must not receive its own update.
	assert.Empty(t, f.coordinator.DrainForSession(outbound))
	// Drain is consuming.
	assert.Empty(t, f.coordinator.DrainForSession(inbound))
}

func TestAdvanceStatusFromInboundPassesDetailThrough(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, inbound, outbound := f.createWithSessions(t)

	detail := "Customer asked to add a highchair to the booking."
	err := f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusCheckingAvailability, detail, inbound)
	require.NoError(t, err)

	outboundMsgs := f.coordinator.DrainForSession(outbound)
	require.Len(t, outboundMsgs, 1)
	assert.Equal(t, detail, outboundMsgs[0])
	assert.Empty(t, f.coordinator.DrainForSession(inbound))
}

func TestAdvanceStatusBeforeOutboundAttachSkipsNotification(t *testing.T) {
	f := newCoordinatorFixture(t)
	b := builder.NewReservationBuilder()

	id, err := f.coordinator.CreateReservation(context.Background(), b.Intent(), b.InboundSessionID())
	require.NoError(t, err)

	// No outbound session attached yet: the transition lands in history but
	// nobody is notified.
	err = f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusCallingRestaurant, "dialing", b.InboundSessionID())
	require.NoError(t, err)

	assert.Empty(t, f.coordinator.DrainForSession(b.InboundSessionID()))
	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCallingRestaurant, res.Status())
}

func TestAdvanceStatusNarratesProgressForCustomer(t *testing.T) {
	tests := []struct {
		name     string
		status   reservation.Status
		detail   string
		wantPart string
	}{
		{
			name:     "calling restaurant",
			status:   reservation.StatusCallingRestaurant,
			detail:   "outbound call to restaurant started",
			wantPart: "I'm calling Chez Panisse now",
		},
		{
			name:     "speaking with restaurant",
			status:   reservation.StatusSpeakingWithRestaurant,
			detail:   "host answered",
			wantPart: "I'm speaking with the restaurant now.",
		},
		{
			name:     "checking availability",
			status:   reservation.StatusCheckingAvailability,
			detail:   "host checking the book",
			wantPart: "checking availability for your party of 2 on 2026-09-12 at 19:00",
		},
		{
			name:     "declined",
			status:   reservation.StatusDeclined,
			detail:   "Fully booked that evening.",
			wantPart: "Unfortunately Chez Panisse couldn't take the reservation.",
		},
		{
			name:     "line busy",
			status:   reservation.StatusRestaurantBusy,
			detail:   "busy signal",
			wantPart: "The line at Chez Panisse is busy right now.",
		},
		{
			name:     "no answer",
			status:   reservation.StatusNoAnswer,
			detail:   "rang out",
			wantPart: "Chez Panisse didn't answer the phone.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCoordinatorFixture(t)
			id, inbound, outbound := f.createWithSessions(t)

			err := f.coordinator.AdvanceStatus(context.Background(), id, tt.status, tt.detail, outbound)
			require.NoError(t, err)

			msgs := f.coordinator.DrainForSession(inbound)
			require.Len(t, msgs, 1)
			assert.Contains(t, msgs[0], tt.wantPart)
		})
	}
}

func TestAdvanceStatusRejectsUnknownStatus(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, _, outbound := f.createWithSessions(t)

	err := f.coordinator.AdvanceStatus(context.Background(), id, reservation.Status("teleported"), "", outbound)
	assert.ErrorIs(t, err, reservation.ErrUnknownStatus)
}

func TestAdvanceStatusUnknownReservation(t *testing.T) {
	f := newCoordinatorFixture(t)

	err := f.coordinator.AdvanceStatus(context.Background(), uuid.New(),
		reservation.StatusConfirmed, "ok", "call-outbound-1")
	assert.ErrorIs(t, err, errs.ErrReservationNotFound)
}

func TestAdvanceStatusAfterTerminalKeepsFirstOutcome(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, inbound, outbound := f.createWithSessions(t)

	require.NoError(t, f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusConfirmed, "Table for 2 at 7pm.", outbound))
	f.coordinator.DrainForSession(inbound)

	// A late decline still lands in history and still notifies, but the
	// recorded status stays confirmed.
	require.NoError(t, f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusDeclined, "Actually we're full.", outbound))

	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status())
	assert.Len(t, res.History(), 3)
	assert.Len(t, f.coordinator.DrainForSession(inbound), 1)
}

func TestClassifyAndAdvanceConfirmedTranscript(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, inbound, _ := f.createWithSessions(t)

	transcript := "Agent: Can I book a table for Jane Doe?\nHost: Yes, you're all set for 7pm, confirmed."
	require.NoError(t, f.coordinator.ClassifyAndAdvance(context.Background(), id, transcript))

	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status())
	require.Len(t, f.coordinator.DrainForSession(inbound), 1)
}

func TestClassifyAndAdvanceAmbiguousTranscript(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, _, _ := f.createWithSessions(t)

	require.NoError(t, f.coordinator.ClassifyAndAdvance(context.Background(), id,
		"Host: Hello? Hello? Is anyone there?"))

	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusError, res.Status())
}

func TestClassifyAndAdvanceUnknownReservation(t *testing.T) {
	f := newCoordinatorFixture(t)

	err := f.coordinator.ClassifyAndAdvance(context.Background(), uuid.New(), "confirmed")
	assert.ErrorIs(t, err, errs.ErrReservationNotFound)
}

func TestDescribeStatus(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, inbound, outbound := f.createWithSessions(t)

	msg, err := f.coordinator.DescribeStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, msg, "Chez Panisse")
	assert.Contains(t, msg, "party of 2")

	require.NoError(t, f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusConfirmed, "Table for 2 at 7pm under Jane.", outbound))

	msg, err = f.coordinator.DescribeStatusForSession(context.Background(), inbound)
	require.NoError(t, err)
	assert.Contains(t, msg, "is confirmed")
	assert.Contains(t, msg, "Table for 2 at 7pm under Jane.")
}

func TestDescribeStatusForSessionUnknownSession(t *testing.T) {
	f := newCoordinatorFixture(t)

	_, err := f.coordinator.DescribeStatusForSession(context.Background(), "call-nobody")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestConcurrentAdvanceStatusLosesNoUpdates(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, inbound, outbound := f.createWithSessions(t)

	const perSession = 50
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < perSession; i++ {
			_ = f.coordinator.AdvanceStatus(context.Background(), id,
				reservation.StatusCheckingAvailability, fmt.Sprintf("outbound update %d", i), outbound)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < perSession; i++ {
			_ = f.coordinator.AdvanceStatus(context.Background(), id,
				reservation.StatusCheckingAvailability, fmt.Sprintf("inbound update %d", i), inbound)
		}
	}()
	wg.Wait()

	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	// creation entry plus every transition from both sessions.
	assert.Len(t, res.History(), 1+2*perSession)
	assert.Len(t, f.coordinator.DrainForSession(inbound), perSession)
	assert.Len(t, f.coordinator.DrainForSession(outbound), perSession)
}

func TestAdvanceStatusUsesClockTime(t *testing.T) {
	f := newCoordinatorFixture(t)
	id, _, outbound := f.createWithSessions(t)

	later := builder.NewReservationBuilder().Now().Add(3 * time.Minute)
	f.clock.Set(later)

	require.NoError(t, f.coordinator.AdvanceStatus(context.Background(), id,
		reservation.StatusCallingRestaurant, "dialing", outbound))

	res, err := f.coordinator.Reservation(context.Background(), id)
	require.NoError(t, err)
	history := res.History()
	assert.True(t, history[len(history)-1].Timestamp.Equal(later))
	assert.True(t, res.UpdatedAt().Equal(later))
}
