package usecase

import (
	"context"

	"tableline/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationStore is the canonical record table. Implementations must be
// safe under parallel invocation and serialize conflicting writes per id.
type ReservationStore interface {
	Create(res *reservation.Reservation) error
	Find(id uuid.UUID) (*reservation.Reservation, error)
	FindBySession(sessionID string) (*reservation.Reservation, error)
	Update(id uuid.UUID, fn func(*reservation.Reservation) error) error
	AttachOutboundSession(id uuid.UUID, sessionID string) error
}

// UpdateMailbox carries narration between the two call sessions.
type UpdateMailbox interface {
	Enqueue(sessionID, message string)
	Drain(sessionID string) []string
}

// OutcomeClassifier maps an end-of-call transcript to a terminal status and a
// human-readable detail. Implementations must check confirmation phrases
// before decline phrases.
type OutcomeClassifier interface {
	Classify(transcript, customerName string) (reservation.Status, string)
}

// RestaurantContact is the directory lookup result for one restaurant.
type RestaurantContact struct {
	Name       string
	Phone      string
	Address    string
	Rating     float64
	PriceLevel int
	OpenNow    *bool
	Hours      []string
	HasWebsite bool
}

// RestaurantSummary is one entry of a directory search result list.
type RestaurantSummary struct {
	Name    string
	PlaceID string
	Address string
	Rating  float64
	OpenNow *bool
}

// DirectoryLookup resolves restaurant contact details from a text query.
type DirectoryLookup interface {
	Search(ctx context.Context, query string) ([]RestaurantSummary, error)
	ResolveContact(ctx context.Context, name, location string) (*RestaurantContact, error)
}

// OutboundCall describes the restaurant-facing call to start. Variables are
// handed to the voice agent driving the conversation.
type OutboundCall struct {
	ToNumber      string
	ReservationID uuid.UUID
	Variables     map[string]string
}

// CallInitiator starts the restaurant-facing phone session and returns its
// session id. There is no retry policy; a failed dial surfaces immediately.
type CallInitiator interface {
	StartCall(ctx context.Context, call OutboundCall) (string, error)
}
