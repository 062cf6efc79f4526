package googlesheets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veggierescue/veggierescue/internal/report/googlesheets"
)

func TestClient_FetchValues(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "Form responses!B1:P4",
			"majorDimension": "ROWS",
			"values": [["Food Recipient","Total Pounds"],["Food Bank North","100"]]
		}`))
	}))
	defer server.Close()

	client := googlesheets.NewClient(googlesheets.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})

	values, err := client.FetchValues(context.Background(), "sheet-id", "Form responses!B:P")
	require.NoError(t, err)

	assert.Equal(t, "/spreadsheets/sheet-id/values/Form responses!B:P", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, values, 2)
	assert.Equal(t, []string{"Food Recipient", "Total Pounds"}, values[0])
}

func TestClient_FetchValues_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := googlesheets.NewClient(googlesheets.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})

	_, err := client.FetchValues(context.Background(), "sheet-id", "Sheet1!A:B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheets API error")
}

func TestClient_FetchValues_EmptySheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A:B","majorDimension":"ROWS"}`))
	}))
	defer server.Close()

	client := googlesheets.NewClient(googlesheets.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})

	values, err := client.FetchValues(context.Background(), "sheet-id", "Sheet1!A:B")
	require.NoError(t, err)
	assert.Empty(t, values)
}
