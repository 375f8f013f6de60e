package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shasta-io/shasta/pkg/shasta"
)

func TestVenuesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/venues", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "42", request.URL.Query().Get("orgId"))
		assert.Equal(t, "venueId", request.URL.Query().Get("orderBy"))

		// No search query means no search parameter at all.
		_, hasSearch := request.URL.Query()["search"]
		assert.False(t, hasSearch)

		_ = json.NewEncoder(writer).Encode(shasta.VenueList{
			TotalCount: 1,
			Data:       []shasta.Venue{{ID: 7, OrgID: 42, Name: "HQ"}},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	venues, err := c.Venues().List(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, venues.TotalCount)
	require.Len(t, venues.Data, 1)
	assert.Equal(t, "HQ", venues.Data[0].Name)
}

func TestVenuesClient_List_WithSearch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "HQ", request.URL.Query().Get("search"))
		assert.Equal(t, "42", request.URL.Query().Get("orgId"))

		_ = json.NewEncoder(writer).Encode(shasta.VenueList{
			TotalCount: 1,
			Data:       []shasta.Venue{{ID: 7, OrgID: 42, Name: "HQ"}},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	venues, err := c.Venues().List(context.Background(), 42, shasta.NewListParams().WithSearch("HQ"))
	require.NoError(t, err)
	require.Len(t, venues.Data, 1)
}

func TestVenuesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/venues", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, float64(42), req["orgId"])
		assert.Equal(t, float64(0), req["parentVenueId"])
		assert.Equal(t, "Warehouse", req["venueName"])
		assert.Equal(t, float64(1), req["state"])
		assert.Equal(t, float64(1), req["venueType"])

		venueAddr := req["venueAddress"].(map[string]interface{})
		shippingAddr := req["shippingAddress"].(map[string]interface{})
		assert.Equal(t, "55 Dock Rd", venueAddr["addressLine"])
		assert.Equal(t, "55 Dock Rd", shippingAddr["addressLine"])

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(shasta.Venue{ID: 8, OrgID: 42, Name: "Warehouse"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	venue, err := c.Venues().Create(context.Background(),
		shasta.NewVenueCreateRequest(42, "Warehouse", "55 Dock Rd"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), venue.ID)
	assert.Equal(t, "Warehouse", venue.Name)
}

func TestVenuesClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/venues/8", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status, err := c.Venues().Delete(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}
