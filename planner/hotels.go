package planner

import (
	"github.com/Aashiq1/TripGenie-sub000/types"
)

// ExtractHotelRecommendations locates the recommended lodging in a raw
// plan document. Precedence over the nesting conventions the planner
// has used across versions:
//
//	(a) an explicit hotel_recommendations block
//	(b) top-level recommended / alternates fields
//	(c) the first top-level object exposing either field
//	    (destination-code nesting)
//
// Within (a), a flat ranked "all" list with no pre-split top pick gets
// its first element promoted to recommended and the next two to
// alternates. Returns nil when no convention matches.
func ExtractHotelRecommendations(raw types.RawTripPlan) *types.HotelRecommendationSet {
	if raw == nil {
		return nil
	}

	if block, ok := asMap(raw["hotel_recommendations"]); ok {
		return setFromBlock(block)
	}

	if hasHotelFields(raw) {
		return setFromBlock(raw)
	}

	for _, key := range sortedKeys(raw) {
		nested, ok := asMap(raw[key])
		if !ok {
			continue
		}
		if block, ok := asMap(nested["hotel_recommendations"]); ok {
			return setFromBlock(block)
		}
		if hasHotelFields(nested) {
			return setFromBlock(nested)
		}
	}
	return nil
}

func hasHotelFields(m map[string]interface{}) bool {
	_, hasRec := m["recommended"]
	_, hasAlt := m["alternates"]
	return hasRec || hasAlt
}

// setFromBlock builds the recommendation set from a block exposing
// recommended/alternates/all in any combination.
func setFromBlock(block map[string]interface{}) *types.HotelRecommendationSet {
	set := &types.HotelRecommendationSet{Alternates: []types.HotelOption{}}

	if rec, ok := asMap(block["recommended"]); ok {
		set.Recommended = hotelOption(rec)
	}
	if alts, ok := asSlice(block["alternates"]); ok {
		for _, a := range alts {
			if m, ok := asMap(a); ok {
				if opt := hotelOption(m); opt != nil {
					set.Alternates = append(set.Alternates, *opt)
				}
			}
		}
	}

	// Flat ranked list with no pre-split top pick: promote all[0] and
	// take the next two as alternates.
	if set.Recommended == nil && len(set.Alternates) == 0 {
		all, ok := asSlice(block["all"])
		if !ok || len(all) == 0 {
			return nil
		}
		for i, a := range all {
			if i > 2 {
				break
			}
			m, ok := asMap(a)
			if !ok {
				continue
			}
			opt := hotelOption(m)
			if opt == nil {
				continue
			}
			if set.Recommended == nil {
				set.Recommended = opt
			} else {
				set.Alternates = append(set.Alternates, *opt)
			}
		}
		if set.Recommended == nil {
			return nil
		}
	}

	return set
}

// hotelOption maps one payload hotel object onto a HotelOption. Numeric
// fields stay absent unless the payload supplied them.
func hotelOption(m map[string]interface{}) *types.HotelOption {
	name, _ := asString(m["name"])
	if name == "" {
		name, _ = asString(m["hotel_name"])
	}
	if name == "" {
		return nil
	}

	opt := &types.HotelOption{Name: name}
	if addr, ok := asString(m["address"]); ok {
		opt.Address = addr
	}
	if n, ok := asNumber(m["rating"]); ok {
		opt.Rating = &n
	}
	if n, ok := asNumber(m["distance_to_center_km"]); ok {
		opt.DistanceToAnchor = &n
	} else if n, ok := asNumber(m["distance_km"]); ok {
		opt.DistanceToAnchor = &n
	}
	if n, ok := asNumber(m["total_trip_cost"]); ok {
		opt.TotalTripCost = &n
	} else if n, ok := asNumber(m["total_cost"]); ok {
		opt.TotalTripCost = &n
	}

	if rooms, ok := asMap(m["room_breakdown"]); ok {
		breakdown := make(map[string]int, len(rooms))
		for k, v := range rooms {
			if n, ok := asNumber(v); ok {
				breakdown[k] = int(n)
			}
		}
		if len(breakdown) > 0 {
			opt.RoomBreakdown = breakdown
		}
	}
	if costs, ok := asMap(m["individual_costs"]); ok {
		individual := make(map[string]float64, len(costs))
		for k, v := range costs {
			if n, ok := asNumber(v); ok {
				individual[k] = n
			}
		}
		if len(individual) > 0 {
			opt.IndividualCosts = individual
		}
	}
	return opt
}
