package request

import "encoding/json"

// FunctionCall is the voice platform's custom-function invocation payload.
// Arguments are function-specific and decoded per dispatch target.
type FunctionCall struct {
	FunctionName string          `json:"function_name" binding:"required"`
	Arguments    json.RawMessage `json:"arguments"`
	Call         CallContext     `json:"call"`
}

// CallContext identifies the live call session issuing the function call.
type CallContext struct {
	CallID string `json:"call_id"`
}

type CreateReservationArgs struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	RestaurantName  string `json:"restaurant_name" binding:"required"`
	Location        string `json:"location"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

type ReservationIDArgs struct {
	ReservationID string `json:"reservation_id" binding:"required"`
}

type AdvanceArgs struct {
	ReservationID string `json:"reservation_id" binding:"required"`
	Detail        string `json:"detail"`
}

type SearchRestaurantsArgs struct {
	Location string `json:"location" binding:"required"`
	Cuisine  string `json:"cuisine"`
}

type RestaurantDetailsArgs struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Location       string `json:"location"`
}

// CallEvent is the asynchronous end-of-call notification.
type CallEvent struct {
	Event string        `json:"event" binding:"required"`
	Call  CallEventBody `json:"call" binding:"required"`
}

type CallEventBody struct {
	CallID     string            `json:"call_id"`
	Transcript string            `json:"transcript"`
	Metadata   map[string]string `json:"metadata"`
}
