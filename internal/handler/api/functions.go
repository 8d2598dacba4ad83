package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tableline/internal/domain/reservation"
	reqdto "tableline/internal/handler/dto/request"
	resdto "tableline/internal/handler/dto/response"
	"tableline/internal/pkg/errs"
	"tableline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// FunctionHandler dispatches the voice platform's custom-function calls to
// the coordinator. Every outcome, including failures, is spoken back as a
// 200 response; the caller is a voice agent, not an API client.
type FunctionHandler struct {
	booking     usecase.BookingCommands
	coordinator usecase.Coordinator
	directory   usecase.DirectoryLookup
	logger      *slog.Logger
}

func NewFunctionHandler(
	booking usecase.BookingCommands,
	coordinator usecase.Coordinator,
	directory usecase.DirectoryLookup,
	logger *slog.Logger,
) *FunctionHandler {
	return &FunctionHandler{
		booking:     booking,
		coordinator: coordinator,
		directory:   directory,
		logger:      logger,
	}
}

func (h *FunctionHandler) Dispatch(c *gin.Context) {
	var call reqdto.FunctionCall
	if err := c.ShouldBindJSON(&call); err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(
			"I couldn't understand that request. Could you try again?"))
		return
	}

	h.logger.Info("function call received",
		"function", call.FunctionName, "call_id", call.Call.CallID)

	switch call.FunctionName {
	// Customer-facing surface
	case "create_new_reservation":
		h.createNewReservation(c, call)
	case "check_reservation_status_updates":
		h.checkStatusUpdates(c, call)
	case "get_reservation_final_status":
		h.finalStatus(c, call)
	case "search_restaurants":
		h.searchRestaurants(c, call)
	case "get_restaurant_details":
		h.restaurantDetails(c, call)

	// Restaurant-facing surface
	case "start_restaurant_call":
		h.advance(c, call, reservation.StatusCallingRestaurant, "outbound call to restaurant started")
	case "restaurant_answered":
		h.advance(c, call, reservation.StatusSpeakingWithRestaurant, "restaurant answered the call")
	case "restaurant_checking_availability":
		h.advance(c, call, reservation.StatusCheckingAvailability, "restaurant is checking availability")
	case "reservation_confirmed_by_restaurant":
		h.advance(c, call, reservation.StatusConfirmed, "restaurant confirmed the reservation")
	case "reservation_declined_by_restaurant":
		h.advance(c, call, reservation.StatusDeclined, "restaurant declined the reservation")
	case "restaurant_line_busy":
		h.advance(c, call, reservation.StatusRestaurantBusy, "restaurant line was busy")
	case "restaurant_no_answer":
		h.advance(c, call, reservation.StatusNoAnswer, "restaurant did not answer")
	case "get_reservation_details":
		h.reservationDetails(c, call)

	default:
		c.JSON(http.StatusOK, resdto.NewSpoken(fmt.Sprintf(
			"I received an unknown function: %s. I can create reservations, check their status, or look up restaurants. What would you like to do?",
			call.FunctionName)))
	}
}

func (h *FunctionHandler) createNewReservation(c *gin.Context, call reqdto.FunctionCall) {
	var args reqdto.CreateReservationArgs
	if !bindArgs(c, call, &args) {
		return
	}

	id, err := h.booking.CreateReservation(c.Request.Context(), usecase.CreateReservationParams{
		CustomerName:     args.CustomerName,
		CustomerPhone:    args.PhoneNumber,
		RestaurantName:   args.RestaurantName,
		Location:         args.Location,
		Date:             args.Date,
		Time:             args.Time,
		PartySize:        args.PartySize,
		SpecialRequests:  args.SpecialRequests,
		InboundSessionID: call.Call.CallID,
	})
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(spokenFallback(err, args.RestaurantName)))
		return
	}

	c.JSON(http.StatusOK, resdto.NewSpoken(fmt.Sprintf(
		"I'm calling %s now to book a table for %d on %s at %s. Ask me for status updates any time. Your reservation id is %s.",
		args.RestaurantName, args.PartySize, args.Date, args.Time, id)))
}

func (h *FunctionHandler) checkStatusUpdates(c *gin.Context, call reqdto.FunctionCall) {
	updates := h.coordinator.DrainForSession(call.Call.CallID)
	if len(updates) > 0 {
		c.JSON(http.StatusOK, resdto.NewSpoken(strings.Join(updates, " ")))
		return
	}

	summary, err := h.coordinator.DescribeStatusForSession(c.Request.Context(), call.Call.CallID)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(
			"I don't have a reservation on file for this call yet. Would you like to make one?"))
		return
	}
	c.JSON(http.StatusOK, resdto.NewSpoken("No news yet. "+summary))
}

func (h *FunctionHandler) finalStatus(c *gin.Context, call reqdto.FunctionCall) {
	var args reqdto.ReservationIDArgs
	if !bindArgs(c, call, &args) {
		return
	}

	id, err := uuid.Parse(args.ReservationID)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(
			"That reservation id doesn't look right. Could you repeat it?"))
		return
	}

	summary, err := h.coordinator.DescribeStatus(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(
			"I couldn't find that reservation. It may have been made in a different session."))
		return
	}
	c.JSON(http.StatusOK, resdto.NewSpoken(summary))
}

func (h *FunctionHandler) searchRestaurants(c *gin.Context, call reqdto.FunctionCall) {
	var args reqdto.SearchRestaurantsArgs
	if !bindArgs(c, call, &args) {
		return
	}

	query := fmt.Sprintf("restaurants in %s", args.Location)
	if args.Cuisine != "" {
		query = fmt.Sprintf("%s restaurants in %s", args.Cuisine, args.Location)
	}

	results, err := h.directory.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(fmt.Sprintf(
			"I couldn't find any restaurants in %s right now. Could you try a different search?", args.Location)))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d restaurants in %s: ", len(results), args.Location)
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s", i+1, r.Name)
		if r.Rating > 0 {
			fmt.Fprintf(&sb, ", %.1f stars", r.Rating)
		}
		if r.OpenNow != nil {
			if *r.OpenNow {
				sb.WriteString(", open now")
			} else {
				sb.WriteString(", closed now")
			}
		}
		sb.WriteString(". ")
	}
	sb.WriteString("Would you like more details about any of these?")
	c.JSON(http.StatusOK, resdto.NewSpoken(sb.String()))
}

func (h *FunctionHandler) restaurantDetails(c *gin.Context, call reqdto.FunctionCall) {
	var args reqdto.RestaurantDetailsArgs
	if !bindArgs(c, call, &args) {
		return
	}

	contact, err := h.directory.ResolveContact(c.Request.Context(), args.RestaurantName, args.Location)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(fmt.Sprintf(
			"I couldn't find %s. Could you check the spelling or tell me more about its location?", args.RestaurantName)))
		return
	}

	var sb strings.Builder
	sb.WriteString(contact.Name + " ")
	if contact.Rating > 0 {
		fmt.Fprintf(&sb, "has a rating of %.1f stars. ", contact.Rating)
	}
	if contact.PriceLevel > 0 {
		priceDesc := []string{"inexpensive", "moderate", "expensive", "very expensive"}
		idx := contact.PriceLevel - 1
		if idx > 3 {
			idx = 3
		}
		fmt.Fprintf(&sb, "It's %s. ", priceDesc[idx])
	}
	if contact.OpenNow != nil {
		if *contact.OpenNow {
			sb.WriteString("The restaurant is currently open. ")
		} else {
			sb.WriteString("The restaurant is currently closed. ")
		}
	}
	if contact.Phone != "" {
		fmt.Fprintf(&sb, "Their phone number is %s. ", contact.Phone)
	}
	sb.WriteString("Would you like me to call them and make a reservation?")
	c.JSON(http.StatusOK, resdto.NewSpoken(sb.String()))
}

// advance maps one restaurant-facing function to one status transition. The
// outbound call id in the payload is the transition's source session.
func (h *FunctionHandler) advance(c *gin.Context, call reqdto.FunctionCall, status reservation.Status, defaultDetail string) {
	var args reqdto.AdvanceArgs
	if !bindArgs(c, call, &args) {
		return
	}

	id, err := uuid.Parse(args.ReservationID)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken("I don't recognize that reservation id."))
		return
	}

	detail := args.Detail
	if detail == "" {
		detail = defaultDetail
	}

	if err := h.coordinator.AdvanceStatus(c.Request.Context(), id, status, detail, call.Call.CallID); err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken("I couldn't find that reservation."))
		return
	}
	c.JSON(http.StatusOK, resdto.NewSpoken("Noted."))
}

func (h *FunctionHandler) reservationDetails(c *gin.Context, call reqdto.FunctionCall) {
	var args reqdto.ReservationIDArgs
	if !bindArgs(c, call, &args) {
		return
	}

	id, err := uuid.Parse(args.ReservationID)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken("I don't recognize that reservation id."))
		return
	}

	res, err := h.coordinator.Reservation(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken("I couldn't find that reservation."))
		return
	}

	intent := res.Intent()
	text := fmt.Sprintf("Reservation under the name %s, party of %d, on %s at %s.",
		intent.CustomerName, intent.PartySize, intent.Date, intent.Time)
	if intent.SpecialRequests != "" {
		text += " Special requests: " + intent.SpecialRequests + "."
	}
	c.JSON(http.StatusOK, resdto.NewSpoken(text))
}

// bindArgs decodes function arguments and speaks a clarification prompt when
// required fields are missing.
func bindArgs(c *gin.Context, call reqdto.FunctionCall, out any) bool {
	if err := decodeArgs(call, out); err != nil {
		c.JSON(http.StatusOK, resdto.NewSpoken(
			"I'm missing some details for that request. Could you provide them again?"))
		return false
	}
	return true
}

func decodeArgs(call reqdto.FunctionCall, out any) error {
	if len(call.Arguments) == 0 {
		return errs.New("function call has no arguments")
	}
	if err := json.Unmarshal(call.Arguments, out); err != nil {
		return errs.Wrap(err, "decode function arguments")
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(out)
}

func spokenFallback(err error, restaurantName string) string {
	switch {
	case errors.Is(err, errs.ErrRestaurantNotFound):
		return fmt.Sprintf("I couldn't find %s. Could you check the name or give me its location?", restaurantName)
	case errors.Is(err, errs.ErrDirectoryLookupFailed):
		return fmt.Sprintf("I couldn't look up %s right now. Please try again in a moment.", restaurantName)
	case errors.Is(err, errs.ErrCallInitiationFailed):
		return fmt.Sprintf("I found %s but couldn't reach them by phone. You may want to call them directly.", restaurantName)
	case errors.Is(err, errs.ErrInvalidIntent):
		return "I'm missing some reservation details. Could you give me the name, date, time, and party size again?"
	default:
		return "I ran into a problem creating the reservation. Please try again."
	}
}
