package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"tableline/internal/domain/reservation"
	"tableline/internal/pkg/errs"

	"github.com/google/uuid"
)

// CreateReservationParams is the inbound agent's booking request. Location is
// optional and only narrows the directory lookup.
type CreateReservationParams struct {
	CustomerName     string
	CustomerPhone    string
	RestaurantName   string
	Location         string
	Date             string
	Time             string
	PartySize        int
	SpecialRequests  string
	InboundSessionID string
}

// BookingCommands composes the collaborators around the coordinator:
// directory lookup → outbound dial → record creation. All collaborator I/O
// happens before any record is mutated with the result.
type BookingCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (uuid.UUID, error)
	EndOfCall(ctx context.Context, id uuid.UUID, transcript string) error
}

type bookingCommandsImpl struct {
	coordinator Coordinator
	directory   DirectoryLookup
	dialer      CallInitiator
	logger      *slog.Logger
}

func NewBookingCommands(
	coordinator Coordinator,
	directory DirectoryLookup,
	dialer CallInitiator,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		coordinator: coordinator,
		directory:   directory,
		dialer:      dialer,
		logger:      logger,
	}
}

// CreateReservation resolves the restaurant, creates the record, then starts
// the outbound call. A failed lookup aborts before anything is stored; a
// failed dial leaves the record in status initiated with no outbound session,
// which the caller reports as a graceful spoken fallback.
func (b *bookingCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (uuid.UUID, error) {
	contact, err := b.directory.ResolveContact(ctx, params.RestaurantName, params.Location)
	if err != nil {
		return uuid.Nil, err
	}
	if contact.Phone == "" {
		return uuid.Nil, errs.Mark(
			errs.Newf("no phone number listed for %s", contact.Name),
			errs.ErrDirectoryLookupFailed,
		)
	}

	intent := reservation.Intent{
		CustomerName:    params.CustomerName,
		CustomerPhone:   params.CustomerPhone,
		RestaurantName:  contact.Name,
		RestaurantPhone: contact.Phone,
		Date:            params.Date,
		Time:            params.Time,
		PartySize:       params.PartySize,
		SpecialRequests: params.SpecialRequests,
	}

	id, err := b.coordinator.CreateReservation(ctx, intent, params.InboundSessionID)
	if err != nil {
		return uuid.Nil, err
	}

	sessionID, err := b.dialer.StartCall(ctx, OutboundCall{
		ToNumber:      contact.Phone,
		ReservationID: id,
		Variables: map[string]string{
			"customer_name":    params.CustomerName,
			"restaurant_name":  contact.Name,
			"date":             params.Date,
			"time":             params.Time,
			"party_size":       strconv.Itoa(params.PartySize),
			"special_requests": params.SpecialRequests,
		},
	})
	if err != nil {
		b.logger.Warn("outbound call initiation failed",
			"reservation_id", id, "restaurant", contact.Name, "error", err)
		return id, errs.Mark(err, errs.ErrCallInitiationFailed)
	}

	if err := b.coordinator.AttachOutboundSession(ctx, id, sessionID); err != nil {
		return id, err
	}
	if err := b.coordinator.AdvanceStatus(ctx, id, reservation.StatusCallingRestaurant,
		"outbound call to restaurant started", sessionID); err != nil {
		return id, err
	}
	return id, nil
}

func (b *bookingCommandsImpl) EndOfCall(ctx context.Context, id uuid.UUID, transcript string) error {
	return b.coordinator.ClassifyAndAdvance(ctx, id, transcript)
}
