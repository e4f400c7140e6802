package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashiq1/TripGenie-sub000/types"
)

func hotel(name string, cost float64) map[string]interface{} {
	return map[string]interface{}{
		"name":            name,
		"rating":          float64(4.2),
		"total_trip_cost": cost,
	}
}

func TestExtractHotelRecommendations_ExplicitBlock(t *testing.T) {
	raw := types.RawTripPlan{
		"hotel_recommendations": map[string]interface{}{
			"recommended": hotel("Hotel Uno", 2100),
			"alternates": []interface{}{
				hotel("Hotel Dos", 1950),
				hotel("Hotel Tres", 1800),
			},
		},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	require.NotNil(t, set.Recommended)
	assert.Equal(t, "Hotel Uno", set.Recommended.Name)
	require.Len(t, set.Alternates, 2)
	assert.Equal(t, "Hotel Dos", set.Alternates[0].Name)
}

func TestExtractHotelRecommendations_PromotionFromAll(t *testing.T) {
	raw := types.RawTripPlan{
		"hotel_recommendations": map[string]interface{}{
			"all": []interface{}{
				hotel("First", 1000),
				hotel("Second", 1100),
				hotel("Third", 1200),
				hotel("Fourth", 1300),
			},
		},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	require.NotNil(t, set.Recommended)
	assert.Equal(t, "First", set.Recommended.Name)
	require.Len(t, set.Alternates, 2)
	assert.Equal(t, "Second", set.Alternates[0].Name)
	assert.Equal(t, "Third", set.Alternates[1].Name)
}

func TestExtractHotelRecommendations_TopLevelFields(t *testing.T) {
	raw := types.RawTripPlan{
		"recommended": hotel("Plain Hotel", 900),
		"alternates":  []interface{}{hotel("Backup", 850)},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	require.NotNil(t, set.Recommended)
	assert.Equal(t, "Plain Hotel", set.Recommended.Name)
	require.Len(t, set.Alternates, 1)
}

func TestExtractHotelRecommendations_DestinationCodeNesting(t *testing.T) {
	raw := types.RawTripPlan{
		"BCN": map[string]interface{}{
			"hotel_recommendations": map[string]interface{}{
				"recommended": hotel("Nested Hotel", 1500),
			},
		},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	require.NotNil(t, set.Recommended)
	assert.Equal(t, "Nested Hotel", set.Recommended.Name)
	assert.Empty(t, set.Alternates)
}

func TestExtractHotelRecommendations_NestedTopLevelFields(t *testing.T) {
	raw := types.RawTripPlan{
		"MAD": map[string]interface{}{
			"recommended": hotel("Gran Via", 1700),
		},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	require.NotNil(t, set.Recommended)
	assert.Equal(t, "Gran Via", set.Recommended.Name)
}

func TestExtractHotelRecommendations_FieldMapping(t *testing.T) {
	raw := types.RawTripPlan{
		"hotel_recommendations": map[string]interface{}{
			"recommended": map[string]interface{}{
				"name":                  "Full Hotel",
				"address":               "Calle Mayor 1",
				"rating":                float64(4.7),
				"distance_to_center_km": float64(0.4),
				"total_trip_cost":       float64(2400),
				"room_breakdown":        map[string]interface{}{"double": float64(3)},
				"individual_costs":      map[string]interface{}{"a@x.com": float64(480)},
			},
		},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	rec := set.Recommended
	require.NotNil(t, rec)
	assert.Equal(t, "Calle Mayor 1", rec.Address)
	require.NotNil(t, rec.Rating)
	assert.InDelta(t, 4.7, *rec.Rating, 0.001)
	require.NotNil(t, rec.DistanceToAnchor)
	assert.InDelta(t, 0.4, *rec.DistanceToAnchor, 0.001)
	assert.Equal(t, map[string]int{"double": 3}, rec.RoomBreakdown)
	assert.Equal(t, map[string]float64{"a@x.com": 480}, rec.IndividualCosts)
}

func TestExtractHotelRecommendations_NoMatchIsNil(t *testing.T) {
	assert.Nil(t, ExtractHotelRecommendations(nil))
	assert.Nil(t, ExtractHotelRecommendations(types.RawTripPlan{}))
	assert.Nil(t, ExtractHotelRecommendations(types.RawTripPlan{
		"daily_itinerary": map[string]interface{}{},
		"note":            "no hotels here",
	}))
	// An empty all list has nothing to promote.
	assert.Nil(t, ExtractHotelRecommendations(types.RawTripPlan{
		"hotel_recommendations": map[string]interface{}{
			"all": []interface{}{},
		},
	}))
}

func TestExtractHotelRecommendations_NamelessOptionsSkipped(t *testing.T) {
	raw := types.RawTripPlan{
		"hotel_recommendations": map[string]interface{}{
			"all": []interface{}{
				map[string]interface{}{"rating": float64(5)},
				hotel("Named", 1000),
				hotel("Also Named", 1050),
			},
		},
	}

	set := ExtractHotelRecommendations(raw)
	require.NotNil(t, set)
	require.NotNil(t, set.Recommended)
	assert.Equal(t, "Named", set.Recommended.Name)
	require.Len(t, set.Alternates, 1)
	assert.Equal(t, "Also Named", set.Alternates[0].Name)
}
