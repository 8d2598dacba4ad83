package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomerName   = errors.New("customer name is required")
	ErrMissingCustomerPhone  = errors.New("customer phone is required")
	ErrMissingRestaurantName = errors.New("restaurant name is required")
	ErrMissingDateTime       = errors.New("reservation date and time are required")
	ErrInvalidPartySize      = errors.New("party size must be at least 1")
	ErrMissingInboundSession = errors.New("inbound session id is required")
	ErrUnknownStatus         = errors.New("unknown reservation status")
)

// Intent is the immutable booking request captured from the customer call.
// The restaurant phone may be empty at creation and is filled in once the
// directory lookup resolves it.
type Intent struct {
	CustomerName    string
	CustomerPhone   string
	RestaurantName  string
	RestaurantPhone string
	Date            string
	Time            string
	PartySize       int
	SpecialRequests string
}

func (i Intent) validate() error {
	if strings.TrimSpace(i.CustomerName) == "" {
		return ErrMissingCustomerName
	}
	if strings.TrimSpace(i.CustomerPhone) == "" {
		return ErrMissingCustomerPhone
	}
	if strings.TrimSpace(i.RestaurantName) == "" {
		return ErrMissingRestaurantName
	}
	if strings.TrimSpace(i.Date) == "" || strings.TrimSpace(i.Time) == "" {
		return ErrMissingDateTime
	}
	if i.PartySize < 1 {
		return ErrInvalidPartySize
	}
	return nil
}

// HistoryEntry is one accepted transition. History is append-only and never
// reordered; the entry order is the order transitions entered the store's
// critical section, not the wall-clock order of their origin.
type HistoryEntry struct {
	Timestamp time.Time
	Status    Status
	Detail    string
	Source    Source
}

type Reservation struct {
	id                uuid.UUID
	intent            Intent
	status            Status
	inboundSessionID  string
	outboundSessionID string
	history           []HistoryEntry
	outcome           Outcome
	createdAt         time.Time
	updatedAt         time.Time
}

func NewReservation(intent Intent, inboundSessionID string, now time.Time) (*Reservation, error) {
	if err := intent.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(inboundSessionID) == "" {
		return nil, ErrMissingInboundSession
	}

	return &Reservation{
		id:               uuid.New(),
		intent:           intent,
		status:           StatusInitiated,
		inboundSessionID: inboundSessionID,
		history: []HistoryEntry{{
			Timestamp: now,
			Status:    StatusInitiated,
			Detail:    "reservation created",
			Source:    SourceSystem,
		}},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds an entity from raw state. Intended for tests and
// debug snapshots, not for regular mutation paths.
func Reconstruct(
	id uuid.UUID,
	intent Intent,
	status Status,
	inboundSessionID, outboundSessionID string,
	history []HistoryEntry,
	outcome Outcome,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		intent:            intent,
		status:            status,
		inboundSessionID:  inboundSessionID,
		outboundSessionID: outboundSessionID,
		history:           history,
		outcome:           outcome,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Apply records a transition. Every accepted call appends exactly one history
// entry. Once a terminal status has been recorded, later transitions still
// land in history but the status and outcome are kept at the first terminal
// value (a late duplicate webhook must not flip a confirmed reservation).
func (r *Reservation) Apply(now time.Time, status Status, detail string, source Source) error {
	if !status.IsValid() {
		return ErrUnknownStatus
	}

	r.history = append(r.history, HistoryEntry{
		Timestamp: now,
		Status:    status,
		Detail:    detail,
		Source:    source,
	})

	if !r.status.IsTerminal() {
		r.status = status
		if out := outcomeFor(status, detail); out != nil {
			r.outcome = out
		}
	}
	if now.After(r.updatedAt) {
		r.updatedAt = now
	}
	return nil
}

// AttachOutboundSession is idempotent; the last write wins when the outbound
// call is re-initiated.
func (r *Reservation) AttachOutboundSession(sessionID string) {
	r.outboundSessionID = sessionID
}

// SetRestaurantPhone fills in the resolved phone number before dialing.
func (r *Reservation) SetRestaurantPhone(phone string) {
	r.intent.RestaurantPhone = phone
}

// SourceOf maps a session id to the side of the bridge it belongs to.
// Unmatched ids are treated as system-originated.
func (r *Reservation) SourceOf(sessionID string) Source {
	switch {
	case sessionID != "" && sessionID == r.inboundSessionID:
		return SourceInbound
	case sessionID != "" && sessionID == r.outboundSessionID:
		return SourceOutbound
	default:
		return SourceSystem
	}
}

// CounterpartSession returns the session that should be notified about a
// transition produced by src. Empty when the update is system-originated or
// the counterpart does not exist yet.
func (r *Reservation) CounterpartSession(src Source) string {
	switch src {
	case SourceOutbound:
		return r.inboundSessionID
	case SourceInbound:
		return r.outboundSessionID
	default:
		return ""
	}
}

// Clone returns a deep copy safe to hand out across goroutines.
func (r *Reservation) Clone() *Reservation {
	cp := *r
	cp.history = make([]HistoryEntry, len(r.history))
	copy(cp.history, r.history)
	return &cp
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) Intent() Intent            { return r.intent }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) InboundSessionID() string  { return r.inboundSessionID }
func (r *Reservation) OutboundSessionID() string { return r.outboundSessionID }
func (r *Reservation) Outcome() Outcome          { return r.outcome }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }

func (r *Reservation) History() []HistoryEntry {
	out := make([]HistoryEntry, len(r.history))
	copy(out, r.history)
	return out
}

// ConfirmationDetails returns the confirmation text once the attempt ended in
// confirmed, empty otherwise.
func (r *Reservation) ConfirmationDetails() string {
	if out, ok := r.outcome.(Confirmed); ok {
		return out.Details
	}
	return ""
}

// DeclineReason returns the decline text once the attempt ended in declined,
// empty otherwise.
func (r *Reservation) DeclineReason() string {
	if out, ok := r.outcome.(Declined); ok {
		return out.Reason
	}
	return ""
}
