//go:build unit

package builder

import (
	"time"

	"tableline/internal/domain/reservation"
)

// ReservationBuilder assembles valid reservation fixtures that tests mutate
// per case.
type ReservationBuilder struct {
	intent           reservation.Intent
	inboundSessionID string
	now              time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		intent: reservation.Intent{
			CustomerName:    "Jane Doe",
			CustomerPhone:   "+15551234567",
			RestaurantName:  "Chez Panisse",
			RestaurantPhone: "+15107735000",
			Date:            "2026-09-12",
			Time:            "19:00",
			PartySize:       2,
			SpecialRequests: "window table",
		},
		inboundSessionID: "call-inbound-1",
		now:              time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) WithCustomerName(name string) *ReservationBuilder {
	b.intent.CustomerName = name
	return b
}

func (b *ReservationBuilder) WithCustomerPhone(phone string) *ReservationBuilder {
	b.intent.CustomerPhone = phone
	return b
}

func (b *ReservationBuilder) WithRestaurantName(name string) *ReservationBuilder {
	b.intent.RestaurantName = name
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.intent.Date = date
	return b
}

func (b *ReservationBuilder) WithTime(t string) *ReservationBuilder {
	b.intent.Time = t
	return b
}

func (b *ReservationBuilder) WithPartySize(size int) *ReservationBuilder {
	b.intent.PartySize = size
	return b
}

func (b *ReservationBuilder) WithInboundSession(sessionID string) *ReservationBuilder {
	b.inboundSessionID = sessionID
	return b
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.now = now
	return b
}

func (b *ReservationBuilder) Intent() reservation.Intent {
	return b.intent
}

func (b *ReservationBuilder) InboundSessionID() string {
	return b.inboundSessionID
}

func (b *ReservationBuilder) Now() time.Time {
	return b.now
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.intent, b.inboundSessionID, b.now)
}
