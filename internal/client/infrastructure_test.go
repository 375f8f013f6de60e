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

func TestInfrastructureClient_ListByOrganization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/infrastructure/organization/42", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_ = json.NewEncoder(writer).Encode(shasta.InfrastructureList{
			TotalCount: 1,
			Data: []shasta.Infrastructure{
				{ID: 9001, OrgID: 42, VenueID: 7, MACAddress: "AA:BB:CC:DD:EE:FF"},
			},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	infra, err := c.Infrastructure().ListByOrganization(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, infra.Data, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", infra.Data[0].MACAddress)
}

func TestInfrastructureClient_ListByVenue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/infrastructure/venue/7", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_ = json.NewEncoder(writer).Encode(shasta.InfrastructureList{
			TotalCount: 1,
			Data:       []shasta.Infrastructure{{ID: 9001, VenueID: 7}},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	infra, err := c.Infrastructure().ListByVenue(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, infra.Data, 1)
	assert.Equal(t, int64(7), infra.Data[0].VenueID)
}

func TestInfrastructureClient_ListTypes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/infrastructure/infratype", request.URL.Path)
		// Type lookups are scoped to the MSP org from the config.
		assert.Equal(t, "317", request.URL.Query().Get("orgId"))

		_ = json.NewEncoder(writer).Encode(shasta.InfraTypeList{
			TotalCount: 2,
			Data: []shasta.InfraType{
				{ID: 1, Name: "Access Point"},
				{ID: 2, Name: "Switch"},
			},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	types, err := c.Infrastructure().ListTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types.Data, 2)
	assert.Equal(t, "Switch", types.Data[1].Name)
}

func TestInfrastructureClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/infrastructure", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, float64(7), req["venueId"])
		assert.Equal(t, float64(42), req["orgId"])
		assert.Equal(t, float64(1), req["infraTypeId"])
		assert.Equal(t, "AA:BB:CC:DD:EE:FF", req["macAddress"])
		assert.Equal(t, "ap-lobby", req["infraDisplayName"])
		assert.Equal(t, float64(1), req["sourceId"])
		assert.Equal(t, false, req["realInfra"])
		assert.Equal(t, "", req["serialNumber"])
		assert.Equal(t, "", req["assetTag"])

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(shasta.Infrastructure{
			ID:          9002,
			VenueID:     7,
			OrgID:       42,
			DisplayName: "ap-lobby",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	infra, err := c.Infrastructure().Create(context.Background(),
		shasta.NewInfrastructureCreateRequest(42, 7, 1, "AA:BB:CC:DD:EE:FF", "ap-lobby"))
	require.NoError(t, err)
	assert.Equal(t, int64(9002), infra.ID)
	assert.Equal(t, "ap-lobby", infra.DisplayName)
}

func TestInfrastructureClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/infrastructure/9002", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status, err := c.Infrastructure().Delete(context.Background(), 9002)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestInfrastructureClient_Delete_AlreadyRemoved(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Infrastructure not found"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status, err := c.Infrastructure().Delete(context.Background(), 9002)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.True(t, shasta.IsNotFound(err))
}
