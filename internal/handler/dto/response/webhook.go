package response

import (
	"time"

	"tableline/internal/domain/reservation"

	"github.com/google/uuid"
)

// Spoken is what the voice platform reads back to the caller.
type Spoken struct {
	Response string `json:"response"`
}

func NewSpoken(text string) Spoken {
	return Spoken{Response: text}
}

// ReservationDebug is the full record snapshot served by the debug endpoint.
type ReservationDebug struct {
	ID                uuid.UUID      `json:"id"`
	Status            string         `json:"status"`
	CustomerName      string         `json:"customerName"`
	CustomerPhone     string         `json:"customerPhone"`
	RestaurantName    string         `json:"restaurantName"`
	RestaurantPhone   string         `json:"restaurantPhone"`
	Date              string         `json:"date"`
	Time              string         `json:"time"`
	PartySize         int            `json:"partySize"`
	SpecialRequests   string         `json:"specialRequests,omitempty"`
	InboundSessionID  string         `json:"inboundSessionId"`
	OutboundSessionID string         `json:"outboundSessionId,omitempty"`
	Outcome           string         `json:"outcome,omitempty"`
	History           []HistoryEntry `json:"history"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail"`
	Source    string    `json:"source"`
}

func FromReservation(res *reservation.Reservation) ReservationDebug {
	intent := res.Intent()

	history := make([]HistoryEntry, 0, len(res.History()))
	for _, entry := range res.History() {
		history = append(history, HistoryEntry{
			Timestamp: entry.Timestamp,
			Status:    entry.Status.String(),
			Detail:    entry.Detail,
			Source:    entry.Source.String(),
		})
	}

	out := ReservationDebug{
		ID:                res.ID(),
		Status:            res.Status().String(),
		CustomerName:      intent.CustomerName,
		CustomerPhone:     intent.CustomerPhone,
		RestaurantName:    intent.RestaurantName,
		RestaurantPhone:   intent.RestaurantPhone,
		Date:              intent.Date,
		Time:              intent.Time,
		PartySize:         intent.PartySize,
		SpecialRequests:   intent.SpecialRequests,
		InboundSessionID:  res.InboundSessionID(),
		OutboundSessionID: res.OutboundSessionID(),
		History:           history,
		CreatedAt:         res.CreatedAt(),
		UpdatedAt:         res.UpdatedAt(),
	}
	if o := res.Outcome(); o != nil {
		out.Outcome = o.Summary()
	}
	return out
}
