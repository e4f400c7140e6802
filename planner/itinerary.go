package planner

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Aashiq1/TripGenie-sub000/logger"
	"github.com/Aashiq1/TripGenie-sub000/types"
)

// textBlobFields are the free-text fields older planner versions used to
// wrap their output, probed in this order before any generic scan.
var textBlobFields = []string{"response", "raw_response", "message", "plan", "text"}

// NormalizeItinerary projects a raw trip-plan document onto an ordered
// sequence of itinerary days. Supported document shapes, in strict
// precedence:
//
//  1. a top-level daily_itinerary map
//  2. a free-text field with an embedded JSON blob containing one
//  3. a daily_itinerary map nested one level under a destination-code key
//  4. no itinerary at all but a date_range / cost_optimization block,
//     from which empty days are synthesized
//
// A document matching none of these, or one that blows up mid-parse,
// yields an empty slice. A broken plan must degrade to "no itinerary
// yet", not crash the view.
func NormalizeItinerary(raw types.RawTripPlan) (days []types.ItineraryDay) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().Warnw("Recovered from malformed trip plan during itinerary normalization", "panic", r)
			days = []types.ItineraryDay{}
		}
	}()

	if raw == nil {
		return []types.ItineraryDay{}
	}

	if itin := locateItineraryMap(raw); itin != nil {
		return buildDays(itin)
	}

	return synthesizeFromDateRange(raw)
}

// locateItineraryMap walks the precedence chain (shapes 1-3) and returns
// the first daily_itinerary map found, or nil.
func locateItineraryMap(raw types.RawTripPlan) map[string]interface{} {
	if itin, ok := asMap(raw["daily_itinerary"]); ok {
		return itin
	}

	if itin := itineraryFromTextBlob(raw); itin != nil {
		return itin
	}

	// Destination-code nesting: {"MAD": {"daily_itinerary": {...}}}.
	for _, key := range sortedKeys(raw) {
		nested, ok := asMap(raw[key])
		if !ok {
			continue
		}
		if itin, ok := asMap(nested["daily_itinerary"]); ok {
			return itin
		}
	}
	return nil
}

// itineraryFromTextBlob handles the oldest plan shape: an agent response
// string with a JSON object buried in prose. Parse failures fall through
// silently; the caller continues down the precedence chain.
func itineraryFromTextBlob(raw types.RawTripPlan) map[string]interface{} {
	candidates := make([]string, 0, len(textBlobFields))
	candidates = append(candidates, textBlobFields...)
	for _, key := range sortedKeys(raw) {
		if _, ok := asString(raw[key]); ok {
			candidates = append(candidates, key)
		}
	}

	for _, field := range candidates {
		text, ok := asString(raw[field])
		if !ok {
			continue
		}
		blob := extractBalancedJSON(text)
		if blob == "" {
			continue
		}
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
			continue
		}
		if itin, ok := asMap(parsed["daily_itinerary"]); ok {
			return itin
		}
	}
	return nil
}

// buildDays converts a daily_itinerary map into sorted ItineraryDays.
// Keys look like "day_1", "day_2"; anything else is skipped.
func buildDays(itin map[string]interface{}) []types.ItineraryDay {
	days := make([]types.ItineraryDay, 0, len(itin))
	for _, key := range sortedKeys(itin) {
		entry, ok := asMap(itin[key])
		if !ok {
			continue
		}
		num, ok := dayNumber(key, entry)
		if !ok {
			continue
		}
		days = append(days, types.ItineraryDay{
			ID:         key,
			DayNumber:  num,
			Date:       dayLabel(entry),
			Activities: buildActivities(entry["activities"]),
		})
	}

	// Lexical key order puts day_10 before day_2; the contract is
	// ascending day number, with source order kept for duplicates.
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})
	return days
}

// dayNumber prefers an explicit day_number field over the key suffix.
func dayNumber(key string, entry map[string]interface{}) (int, bool) {
	if n, ok := asNumber(entry["day_number"]); ok {
		return int(n), true
	}
	suffix, found := strings.CutPrefix(key, "day_")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// dayLabel renders the day's date for display. A parseable date gets the
// short form; an unparseable one passes through verbatim as a label;
// a missing one shows the TBD marker.
func dayLabel(entry map[string]interface{}) string {
	s, ok := asString(entry["date"])
	if !ok || strings.TrimSpace(s) == "" {
		return "TBD"
	}
	if d := ParseCalendarDate(s); d != nil {
		return d.Format(DateStyleShort)
	}
	return s
}

func buildActivities(v interface{}) []types.Activity {
	entries, ok := asSlice(v)
	if !ok {
		return []types.Activity{}
	}
	activities := make([]types.Activity, 0, len(entries))
	for _, e := range entries {
		entry, ok := asMap(e)
		if !ok {
			continue
		}
		activities = append(activities, mapActivity(entry))
	}
	return activities
}

func mapActivity(entry map[string]interface{}) types.Activity {
	title, _ := asString(entry["name"])
	if title == "" {
		title, _ = asString(entry["title"])
	}
	if title == "" {
		title = "Activity"
	}

	timeStr, _ := asString(entry["time"])
	desc, _ := asString(entry["description"])

	return types.Activity{
		Time:        timeStr,
		Title:       title,
		Description: desc,
		Category:    activityCategory(entry),
		Confirmed:   hasBookingInfo(entry),
	}
}

func activityCategory(entry map[string]interface{}) types.ActivityCategory {
	s, _ := asString(entry["category"])
	if s == "" {
		s, _ = asString(entry["type"])
	}
	switch strings.ToLower(s) {
	case "flight", "transport":
		return types.CategoryFlight
	case "accommodation", "hotel", "lodging", "check-in", "checkin":
		return types.CategoryAccommodation
	case "meal", "food", "restaurant", "dining":
		return types.CategoryMeal
	default:
		return types.CategoryActivity
	}
}

// hasBookingInfo is the sole source of the Confirmed flag. An activity
// is confirmed only when the planner attached booking data to it.
func hasBookingInfo(entry map[string]interface{}) bool {
	for _, key := range []string{"booking", "booking_info", "booking_url", "booking_link", "confirmation_number"} {
		v, present := entry[key]
		if !present || v == nil {
			continue
		}
		if s, ok := asString(v); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return true
	}
	return false
}

// synthesizeFromDateRange is the shape-4 fallback: no itinerary map
// anywhere, but a date_range or cost_optimization block gives start/end
// dates. One empty day is synthesized per calendar day in [start, end).
func synthesizeFromDateRange(raw types.RawTripPlan) []types.ItineraryDay {
	start, end := planDateRange(raw)
	dates := DatesInRange(start, end)
	if len(dates) == 0 {
		return []types.ItineraryDay{}
	}
	days := make([]types.ItineraryDay, 0, len(dates))
	for i, d := range dates {
		days = append(days, types.ItineraryDay{
			ID:         fmt.Sprintf("day_%d", i+1),
			DayNumber:  i + 1,
			Date:       d.Format(DateStyleShort),
			Activities: []types.Activity{},
		})
	}
	return days
}

// planDateRange reads a start/end date pair from a date_range block,
// falling back to cost_optimization. Either endpoint failing to parse
// disables synthesis.
func planDateRange(raw types.RawTripPlan) (*CalendarDate, *CalendarDate) {
	for _, blockKey := range []string{"date_range", "cost_optimization"} {
		block, ok := asMap(raw[blockKey])
		if !ok {
			continue
		}
		startStr, _ := asString(block["start_date"])
		endStr, _ := asString(block["end_date"])
		start := ParseCalendarDate(startStr)
		end := ParseCalendarDate(endStr)
		if start != nil && end != nil {
			return start, end
		}
	}
	return nil, nil
}
