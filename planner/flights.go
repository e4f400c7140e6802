package planner

import (
	"strings"

	"github.com/Aashiq1/TripGenie-sub000/types"
)

// ResolveMemberFlight finds the flight assignment for one member of the
// group, identified by email. The payload groups members by departure
// city; the member's group decides which flight and booking links apply.
// Returns nil when the member is in no group or no flight data exists
// for their city. Group membership is an exact identifier match, never
// best-effort, so the function can never hand back another member's
// flight.
func ResolveMemberFlight(raw types.RawTripPlan, memberEmail string) *types.FlightAssignment {
	if raw == nil || strings.TrimSpace(memberEmail) == "" {
		return nil
	}

	city := departureCityFor(raw, memberEmail)
	if city == "" {
		return nil
	}

	assignment := flightFromSearchResults(raw, city)
	if assignment == nil {
		// Older payloads carry no flight search results, only booking
		// links with a few flight-info fields alongside them.
		assignment = flightFromBookingLinks(raw, city)
	}
	if assignment == nil {
		return nil
	}

	assignment.BookingLinks = bookingLinksFor(raw, city)
	return assignment
}

// departureCityFor locates the member inside the flight-group map and
// returns their departure-city code, or "" when unlisted. Emails are
// compared case-insensitively after trimming; a member appears in at
// most one group.
func departureCityFor(raw types.RawTripPlan, memberEmail string) string {
	groups, ok := asMap(raw["flight_groups"])
	if !ok {
		groups, ok = asMap(raw["groups"])
	}
	if !ok {
		return ""
	}

	want := strings.ToLower(strings.TrimSpace(memberEmail))
	for _, city := range sortedKeys(groups) {
		members, ok := asSlice(groups[city])
		if !ok {
			continue
		}
		for _, m := range members {
			email, ok := asString(m)
			if !ok {
				// Some versions list member objects, not bare emails.
				if obj, isMap := asMap(m); isMap {
					email, _ = asString(obj["email"])
				}
			}
			if strings.ToLower(strings.TrimSpace(email)) == want {
				return city
			}
		}
	}
	return ""
}

// FlightGroups lists the trip's departure-city buckets with their
// member emails, sorted by city code. Returns nil when the payload
// carries no group map.
func FlightGroups(raw types.RawTripPlan) []types.FlightGroup {
	if raw == nil {
		return nil
	}
	groups, ok := asMap(raw["flight_groups"])
	if !ok {
		groups, ok = asMap(raw["groups"])
	}
	if !ok {
		return nil
	}

	out := make([]types.FlightGroup, 0, len(groups))
	for _, city := range sortedKeys(groups) {
		members, ok := asSlice(groups[city])
		if !ok {
			continue
		}
		fg := types.FlightGroup{DepartureCity: city}
		for _, m := range members {
			email, ok := asString(m)
			if !ok {
				if obj, isMap := asMap(m); isMap {
					email, _ = asString(obj["email"])
				}
			}
			if email = strings.TrimSpace(email); email != "" {
				fg.MemberEmails = append(fg.MemberEmails, email)
			}
		}
		out = append(out, fg)
	}
	return out
}

// flightFromSearchResults reads the structured flights-by-city map.
func flightFromSearchResults(raw types.RawTripPlan, city string) *types.FlightAssignment {
	flights, ok := asMap(raw["flights"])
	if !ok {
		return nil
	}
	info, ok := asMap(flights[city])
	if !ok {
		return nil
	}
	return assignmentFromInfo(info, city)
}

// flightFromBookingLinks synthesizes a minimal assignment from whatever
// flight-info fields accompany the booking-link entry for the city.
func flightFromBookingLinks(raw types.RawTripPlan, city string) *types.FlightAssignment {
	links, ok := asMap(raw["booking_links"])
	if !ok {
		return nil
	}
	entry, ok := asMap(links[city])
	if !ok {
		return nil
	}
	info, ok := asMap(entry["flight_info"])
	if !ok {
		info = entry
	}
	return assignmentFromInfo(info, city)
}

// assignmentFromInfo maps payload flight fields onto a FlightAssignment.
// Fields the payload cannot supply stay absent; a misleading default is
// worse than a gap. Returns nil when the info block carries nothing
// usable at all.
func assignmentFromInfo(info map[string]interface{}, city string) *types.FlightAssignment {
	a := &types.FlightAssignment{DepartureCity: city}
	populated := false

	if s, ok := asString(info["origin"]); ok && s != "" {
		a.Origin = s
		populated = true
	}
	if s, ok := asString(info["destination"]); ok && s != "" {
		a.Destination = s
		populated = true
	}
	if s, ok := asString(info["departure_date"]); ok && s != "" {
		a.DepartureDate = s
		populated = true
	}
	if s, ok := asString(info["return_date"]); ok && s != "" {
		a.ReturnDate = s
		populated = true
	}
	if n, ok := asNumber(info["total_price"]); ok {
		a.TotalPrice = &n
		populated = true
	} else if n, ok := asNumber(info["price"]); ok {
		a.TotalPrice = &n
		populated = true
	}
	if s, ok := asString(info["airline"]); ok && s != "" {
		a.AirlineCode = s
		populated = true
	} else if s, ok := asString(info["airline_code"]); ok && s != "" {
		a.AirlineCode = s
		populated = true
	}
	if s, ok := asString(info["flight_number"]); ok && s != "" {
		a.FlightNumber = s
		populated = true
	}
	if n, ok := asNumber(info["stops"]); ok {
		stops := int(n)
		a.Stops = &stops
		populated = true
	}
	if s, ok := asString(info["duration"]); ok && s != "" {
		a.Duration = s
		populated = true
	}

	if !populated {
		return nil
	}
	return a
}

// bookingLinksFor collects the ordered booking links for a departure
// city. Link entries appear either as a platform->url map or as a list
// of {platform, url} objects depending on payload vintage. Always
// returns a non-nil slice.
func bookingLinksFor(raw types.RawTripPlan, city string) []types.BookingLink {
	out := []types.BookingLink{}
	container, ok := asMap(raw["booking_links"])
	if !ok {
		return out
	}
	entry, ok := asMap(container[city])
	if !ok {
		return out
	}

	links := entry["links"]
	if links == nil {
		links = entry["booking_links"]
	}

	switch v := links.(type) {
	case map[string]interface{}:
		for _, platform := range sortedKeys(v) {
			if url, ok := asString(v[platform]); ok && url != "" {
				out = append(out, types.BookingLink{Platform: platform, URL: url})
			}
		}
	case []interface{}:
		for _, item := range v {
			obj, ok := asMap(item)
			if !ok {
				continue
			}
			platform, _ := asString(obj["platform"])
			url, _ := asString(obj["url"])
			if url != "" {
				out = append(out, types.BookingLink{Platform: platform, URL: url})
			}
		}
	}
	return out
}
