package search_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/search"
)

func testBusinesses() []search.BusinessSummary {
	return []search.BusinessSummary{
		{
			ID:           1,
			BusinessName: "Planoria Cuts",
			Services: []search.ServiceSummary{
				{ID: 3, Name: "Haircut"},
				{ID: 4, Name: "Beard Trim"},
			},
		},
		{
			ID:           2,
			BusinessName: "Glow Spa",
			Services:     []search.ServiceSummary{{ID: 9, Name: "Facial"}},
		},
	}
}

func TestAnalyzeQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the catalog and decodes matches", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody struct {
			Query      string                   `json:"query"`
			Businesses []search.BusinessSummary `json:"businesses"`
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(search.Result{
				Keywords: []string{"haircut"},
				Matches:  testBusinesses()[:1],
			})
		}))
		t.Cleanup(srv.Close)

		client := search.NewClient(srv.URL)
		result, err := client.AnalyzeQuery(ctx, "I need a haircut", testBusinesses())
		require.NoError(t, err)

		assert.Equal(t, "/analyze-query", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "I need a haircut", gotBody.Query)
		assert.Equal(t, testBusinesses(), gotBody.Businesses)

		assert.Equal(t, []string{"haircut"}, result.Keywords)
		require.Len(t, result.Matches, 1)
		assert.Equal(t, "Planoria Cuts", result.Matches[0].BusinessName)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)

		client := search.NewClient(srv.URL)
		_, err := client.AnalyzeQuery(ctx, "anything", nil)
		assert.ErrorContains(t, err, "unexpected status 502")
	})

	t.Run("malformed response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		t.Cleanup(srv.Close)

		client := search.NewClient(srv.URL)
		_, err := client.AnalyzeQuery(ctx, "anything", nil)
		assert.ErrorContains(t, err, "decode response")
	})

	t.Run("unreachable service is an error", func(t *testing.T) {
		client := search.NewClient("http://127.0.0.1:1")
		_, err := client.AnalyzeQuery(ctx, "anything", nil)
		assert.Error(t, err)
	})
}
