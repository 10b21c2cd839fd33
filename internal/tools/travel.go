package tools

import (
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// Flight describes a single bookable flight option.
type Flight struct {
	Number    string
	Departure string
	Arrival   string
	Price     decimal.Decimal
}

// AvailableFlights returns the canned flight options for a route.
func AvailableFlights(origin, destination, date string) []Flight {
	// Inventory is the same for every route in this demo.
	_ = origin
	_ = destination
	_ = date
	return []Flight{
		{Number: "AA123", Departure: "08:00", Arrival: "10:30", Price: decimal.NewFromInt(299)},
		{Number: "DL456", Departure: "12:15", Arrival: "14:45", Price: decimal.NewFromInt(329)},
		{Number: "UA789", Departure: "16:30", Arrival: "19:00", Price: decimal.NewFromInt(279)},
	}
}

// RefundDecision is the outcome of a refund eligibility check.
type RefundDecision struct {
	BookingRef string
	Eligible   bool
	Amount     decimal.Decimal
	Reason     string
}

var refundPolicies = map[string]RefundDecision{
	"ABC123": {BookingRef: "ABC123", Eligible: true, Amount: decimal.NewFromInt(250), Reason: "Cancellation within 24 hours"},
	"DEF456": {BookingRef: "DEF456", Eligible: false, Reason: "Non-refundable fare"},
	"GHI789": {BookingRef: "GHI789", Eligible: true, Amount: decimal.NewFromInt(150), Reason: "Partial refund due to fare rules"},
}

// CheckRefund looks up the refund policy for a booking reference.
func CheckRefund(bookingRef string) (RefundDecision, bool) {
	decision, ok := refundPolicies[bookingRef]
	return decision, ok
}

// NewGetAvailableFlightsTool returns a tool listing flights for a route and date.
func NewGetAvailableFlightsTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_available_flights",
			Description: "Get available flights between two cities on a specific date",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			origin, _ := args["origin"].(string)
			destination, _ := args["destination"].(string)
			date, _ := args["date"].(string)
			if origin == "" || destination == "" {
				deps.Log.Warnw("Tool: get_available_flights called with missing route", "origin", origin, "destination", destination)
				return nil, fmt.Errorf("get_available_flights: origin and destination are required")
			}

			deps.Log.Debugw("Tool: get_available_flights called", "origin", origin, "destination", destination, "date", date)

			flights := AvailableFlights(origin, destination, date)
			options := make([]map[string]interface{}, 0, len(flights))
			for _, f := range flights {
				options = append(options, map[string]interface{}{
					"flight":    f.Number,
					"departure": f.Departure,
					"arrival":   f.Arrival,
					"price":     "$" + f.Price.StringFixed(0),
				})
			}

			return map[string]interface{}{
				"origin":      origin,
				"destination": destination,
				"date":        date,
				"flights":     options,
			}, nil
		})
}

// NewCheckRefundEligibilityTool returns a tool that checks refund eligibility.
func NewCheckRefundEligibilityTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "check_refund_eligibility",
			Description: "Check if a booking reference is eligible for a refund",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			bookingRef, _ := args["booking_reference"].(string)
			if bookingRef == "" {
				deps.Log.Warn("Tool: check_refund_eligibility called without a booking reference")
				return nil, fmt.Errorf("check_refund_eligibility: booking_reference is required")
			}

			deps.Log.Debugw("Tool: check_refund_eligibility called", "booking_reference", bookingRef)

			decision, ok := CheckRefund(bookingRef)
			if !ok {
				return map[string]interface{}{
					"booking_reference": bookingRef,
					"found":             false,
					"message":           fmt.Sprintf("Booking reference %s not found in our system.", bookingRef),
				}, nil
			}

			result := map[string]interface{}{
				"booking_reference": bookingRef,
				"found":             true,
				"eligible":          decision.Eligible,
				"reason":            decision.Reason,
			}
			if decision.Eligible {
				result["refund_amount"] = "$" + decision.Amount.StringFixed(0)
			}

			return result, nil
		})
}
