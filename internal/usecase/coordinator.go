package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"tableline/internal/domain/reservation"
	"tableline/internal/pkg/clock"
	"tableline/internal/pkg/errs"

	"github.com/google/uuid"
)

// Coordinator is the orchestration façade over the store, the mailboxes and
// the classifier. It is the only component that mutates either.
type Coordinator interface {
	CreateReservation(ctx context.Context, intent reservation.Intent, inboundSessionID string) (uuid.UUID, error)
	AttachOutboundSession(ctx context.Context, id uuid.UUID, sessionID string) error
	AdvanceStatus(ctx context.Context, id uuid.UUID, status reservation.Status, detail, sourceSessionID string) error
	ClassifyAndAdvance(ctx context.Context, id uuid.UUID, transcript string) error
	DrainForSession(sessionID string) []string
	DescribeStatus(ctx context.Context, id uuid.UUID) (string, error)
	DescribeStatusForSession(ctx context.Context, sessionID string) (string, error)
	Reservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationForSession(ctx context.Context, sessionID string) (*reservation.Reservation, error)
}

type coordinatorImpl struct {
	store      ReservationStore
	mailbox    UpdateMailbox
	classifier OutcomeClassifier
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCoordinator(
	store ReservationStore,
	mailbox UpdateMailbox,
	classifier OutcomeClassifier,
	clock clock.Clock,
	logger *slog.Logger,
) Coordinator {
	return &coordinatorImpl{
		store:      store,
		mailbox:    mailbox,
		classifier: classifier,
		clock:      clock,
		logger:     logger,
	}
}

func (c *coordinatorImpl) CreateReservation(_ context.Context, intent reservation.Intent, inboundSessionID string) (uuid.UUID, error) {
	res, err := reservation.NewReservation(intent, inboundSessionID, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidIntent)
	}
	if err := c.store.Create(res); err != nil {
		return uuid.Nil, err
	}

	c.logger.Info("reservation created",
		"reservation_id", res.ID(),
		"restaurant", intent.RestaurantName,
		"party_size", intent.PartySize,
		"inbound_session", inboundSessionID,
	)
	return res.ID(), nil
}

func (c *coordinatorImpl) AttachOutboundSession(_ context.Context, id uuid.UUID, sessionID string) error {
	return c.store.AttachOutboundSession(id, sessionID)
}

// AdvanceStatus appends the transition, updates the status and notifies the
// counterpart session, all inside the store's per-record critical section.
// The mailbox enqueue is in-memory, so no I/O happens under the lock.
func (c *coordinatorImpl) AdvanceStatus(_ context.Context, id uuid.UUID, status reservation.Status, detail, sourceSessionID string) error {
	now := c.clock.Now()

	return c.store.Update(id, func(res *reservation.Reservation) error {
		src := res.SourceOf(sourceSessionID)
		if err := res.Apply(now, status, detail, src); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatus)
		}

		counterpart := res.CounterpartSession(src)
		if counterpart != "" {
			c.mailbox.Enqueue(counterpart, c.narrate(res, src, status, detail))
		}

		c.logger.Info("reservation status advanced",
			"reservation_id", id,
			"status", status,
			"source", src,
			"notified", counterpart != "",
		)
		return nil
	})
}

func (c *coordinatorImpl) ClassifyAndAdvance(ctx context.Context, id uuid.UUID, transcript string) error {
	res, err := c.store.Find(id)
	if err != nil {
		return err
	}

	status, detail := c.classifier.Classify(transcript, res.Intent().CustomerName)
	return c.AdvanceStatus(ctx, id, status, detail, res.OutboundSessionID())
}

func (c *coordinatorImpl) DrainForSession(sessionID string) []string {
	return c.mailbox.Drain(sessionID)
}

func (c *coordinatorImpl) DescribeStatus(_ context.Context, id uuid.UUID) (string, error) {
	res, err := c.store.Find(id)
	if err != nil {
		return "", err
	}
	return describe(res), nil
}

func (c *coordinatorImpl) DescribeStatusForSession(_ context.Context, sessionID string) (string, error) {
	res, err := c.store.FindBySession(sessionID)
	if err != nil {
		return "", err
	}
	return describe(res), nil
}

func (c *coordinatorImpl) Reservation(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return c.store.Find(id)
}

func (c *coordinatorImpl) ReservationForSession(_ context.Context, sessionID string) (*reservation.Reservation, error) {
	return c.store.FindBySession(sessionID)
}

// narrate formats the counterpart notification. Updates flowing from the
// restaurant call toward the customer are phrased as progress narration;
// updates flowing the other way pass the detail through untouched.
func (c *coordinatorImpl) narrate(res *reservation.Reservation, src reservation.Source, status reservation.Status, detail string) string {
	if src != reservation.SourceOutbound {
		return detail
	}

	intent := res.Intent()
	switch status {
	case reservation.StatusCallingRestaurant:
		return fmt.Sprintf("I'm calling %s now to request your reservation.", intent.RestaurantName)
	case reservation.StatusSpeakingWithRestaurant:
		return "I'm speaking with the restaurant now."
	case reservation.StatusCheckingAvailability:
		return fmt.Sprintf("The restaurant is checking availability for your party of %d on %s at %s.",
			intent.PartySize, intent.Date, intent.Time)
	case reservation.StatusConfirmed:
		return fmt.Sprintf("Great news! Your reservation at %s is confirmed. %s", intent.RestaurantName, detail)
	case reservation.StatusDeclined:
		return fmt.Sprintf("Unfortunately %s couldn't take the reservation. %s", intent.RestaurantName, detail)
	case reservation.StatusRestaurantBusy:
		return fmt.Sprintf("The line at %s is busy right now.", intent.RestaurantName)
	case reservation.StatusNoAnswer:
		return fmt.Sprintf("%s didn't answer the phone.", intent.RestaurantName)
	case reservation.StatusError:
		return fmt.Sprintf("I couldn't determine the outcome of the call to %s. %s", intent.RestaurantName, detail)
	default:
		return detail
	}
}

func describe(res *reservation.Reservation) string {
	intent := res.Intent()
	base := fmt.Sprintf("reservation at %s for a party of %d on %s at %s",
		intent.RestaurantName, intent.PartySize, intent.Date, intent.Time)

	switch res.Status() {
	case reservation.StatusInitiated:
		return fmt.Sprintf("Your %s has been created and I'm getting ready to call the restaurant.", base)
	case reservation.StatusCallingRestaurant:
		return fmt.Sprintf("I'm currently calling %s about your %s.", intent.RestaurantName, base)
	case reservation.StatusSpeakingWithRestaurant:
		return fmt.Sprintf("I'm speaking with %s about your %s.", intent.RestaurantName, base)
	case reservation.StatusCheckingAvailability:
		return fmt.Sprintf("%s is checking availability for your %s.", intent.RestaurantName, base)
	case reservation.StatusConfirmed:
		return fmt.Sprintf("Your %s is confirmed. %s", base, res.ConfirmationDetails())
	case reservation.StatusDeclined:
		return fmt.Sprintf("Your %s was declined. %s", base, res.DeclineReason())
	case reservation.StatusRestaurantBusy:
		return fmt.Sprintf("I couldn't complete your %s because the line was busy.", base)
	case reservation.StatusNoAnswer:
		return fmt.Sprintf("I couldn't complete your %s because the restaurant didn't answer.", base)
	case reservation.StatusError:
		if out := res.Outcome(); out != nil {
			return fmt.Sprintf("Your %s ended without a clear outcome. %s", base, out.Summary())
		}
		return fmt.Sprintf("Your %s ended without a clear outcome.", base)
	default:
		return fmt.Sprintf("Your %s is in status %s.", base, res.Status())
	}
}
