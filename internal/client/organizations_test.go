package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/shasta-io/shasta/internal/client"
	"github.com/shasta-io/shasta/pkg/shasta"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	c, err := New(&shasta.Config{
		APIEndpoint: serverURL,
		OrgID:       317,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	return c
}

func TestOrganizationsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/organization/317/child", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
		assert.Equal(t, "0", request.URL.Query().Get("offset"))
		assert.Equal(t, "10", request.URL.Query().Get("limit"))
		assert.Equal(t, "DESC", request.URL.Query().Get("order"))
		assert.Equal(t, "orgId", request.URL.Query().Get("orderBy"))

		list := shasta.OrganizationList{
			TotalCount: 2,
			Data: []shasta.Organization{
				{ID: 401, DisplayName: "Acme"},
				{ID: 402, DisplayName: "Globex"},
			},
		}
		_ = json.NewEncoder(writer).Encode(list)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	orgs, err := c.Organizations().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, orgs.TotalCount)
	require.Len(t, orgs.Data, 2)
	assert.Equal(t, "Acme", orgs.Data[0].DisplayName)
	assert.Equal(t, int64(402), orgs.Data[1].ID)
}

func TestOrganizationsClient_List_WithSearch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Acme", request.URL.Query().Get("search"))

		_ = json.NewEncoder(writer).Encode(shasta.OrganizationList{
			TotalCount: 1,
			Data:       []shasta.Organization{{ID: 401, DisplayName: "Acme"}},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	orgs, err := c.Organizations().List(context.Background(), shasta.NewListParams().WithSearch("Acme"))
	require.NoError(t, err)
	require.Len(t, orgs.Data, 1)
	assert.Equal(t, "Acme", orgs.Data[0].DisplayName)
}

func TestOrganizationsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/organization", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, "Acme", req["orgDisplayName"])
		assert.Equal(t, float64(3), req["orgTypeId"])
		assert.Equal(t, float64(317), req["parentOrgId"])

		// Required empty fields must still be present.
		assert.Contains(t, req, "phone")
		assert.Contains(t, req, "notes")
		assert.Contains(t, req, "billingRecipients")

		// The single address is applied to both records.
		orgAddr := req["orgAddress"].(map[string]interface{})
		billingAddr := req["billingAddress"].(map[string]interface{})
		assert.Equal(t, "123 Main St", orgAddr["addressLine"])
		assert.Equal(t, "123 Main St", billingAddr["addressLine"])

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(shasta.Organization{
			ID:          500,
			DisplayName: "Acme",
			TypeID:      3,
			ParentID:    317,
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	org, err := c.Organizations().Create(context.Background(),
		shasta.NewOrganizationCreateRequest("Acme", 3, 317, "123 Main St"))
	require.NoError(t, err)
	assert.Equal(t, int64(500), org.ID)
	assert.Equal(t, "Acme", org.DisplayName)
}

func TestOrganizationsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/organization/500", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status, err := c.Organizations().Delete(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestOrganizationsClient_Delete_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Organization not found"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status, err := c.Organizations().Delete(context.Background(), 500)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.True(t, shasta.IsNotFound(err))
}
