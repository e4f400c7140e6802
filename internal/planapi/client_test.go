package planapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashiq1/TripGenie-sub000/types"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://planner.example.com", "test-key")

	assert.NotNil(t, client)
	assert.Equal(t, "https://planner.example.com", client.baseURL)
	assert.Equal(t, "test-key", client.apiKey)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestNewClientWithOptions(t *testing.T) {
	customClient := &http.Client{Timeout: 5 * time.Second}
	client := NewClient("https://planner.example.com", "k", WithHTTPClient(customClient))
	assert.Equal(t, customClient, client.httpClient)

	client = NewClient("https://planner.example.com", "k", WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}

func TestGetTripDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/groups/ABC123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"group_data": []map[string]interface{}{
				{"email": "a@x.com", "name": "Ana", "hasSubmitted": true},
			},
			"trip_plan": map[string]interface{}{
				"daily_itinerary": map[string]interface{}{},
			},
			"status": "planned",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	details, err := client.GetTripDetails(context.Background(), "ABC123")
	require.NoError(t, err)

	require.Len(t, details.GroupData, 1)
	assert.Equal(t, "a@x.com", details.GroupData[0].Email)
	assert.NotNil(t, details.TripPlan)
	assert.Equal(t, "planned", details.Status)
}

func TestGetTripDetails_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "group not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	_, err := client.GetTripDetails(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group not found")
}

func TestGetTripPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/ABC123/plan", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"plan": map[string]interface{}{
				"daily_itinerary": map[string]interface{}{
					"day_1": map[string]interface{}{"date": "2024-07-01"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	plan, err := client.GetTripPlan(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Contains(t, plan, "daily_itinerary")
}

func TestGetTripPlan_InBandError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not enough member inputs"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	_, err := client.GetTripPlan(context.Background(), "ABC123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough member inputs")
}

func TestUpdateTrip(t *testing.T) {
	dest := "Barcelona"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/groups/ABC123", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Barcelona", body["destination"])
		assert.NotContains(t, body, "budget", "unset fields must not be sent")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"group":           map[string]interface{}{"destination": "Barcelona"},
			"requires_replan": true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	ack, err := client.UpdateTrip(context.Background(), "ABC123", types.TripEditableFields{Destination: &dest})
	require.NoError(t, err)
	assert.True(t, ack.RequiresReplan)
}

func TestUpdateTrip_EmptyFields(t *testing.T) {
	client := NewClient("http://unused", "k")
	_, err := client.UpdateTrip(context.Background(), "ABC123", types.TripEditableFields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no editable fields")
}

func TestRequestPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/groups/ABC123/plan", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"plan": map[string]interface{}{"date_range": map[string]interface{}{"start_date": "2024-07-01", "end_date": "2024-07-04"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	plan, err := client.RequestPlan(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Contains(t, plan, "date_range")
}

func TestRequestPlan_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "optimizer crashed"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	_, err := client.RequestPlan(context.Background(), "ABC123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "optimizer crashed")
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetTripPlan(ctx, "ABC123")
	assert.Error(t, err)
}
