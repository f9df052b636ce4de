package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSearch_ReducesResultsToDisplayNameAndPincode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Connaught Place", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"display_name": "Connaught Place, New Delhi, Delhi, India",
				"address":      map[string]string{"postcode": "110001"},
			},
			{
				"display_name": "Connaught Place Metro Station, New Delhi",
				"address":      map[string]string{},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())
	suggestions := client.Search(context.Background(), "Connaught Place")

	assert.Len(t, suggestions, 2)
	assert.Equal(t, "110001", suggestions[0].Pincode)
	assert.Equal(t, "Connaught Place, New Delhi, Delhi, India", suggestions[0].DisplayName)
	assert.Empty(t, suggestions[1].Pincode)
}

func TestSearch_CapsSuggestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := make([]map[string]interface{}, 8)
		for i := range results {
			results[i] = map[string]interface{}{"display_name": "somewhere"}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())
	suggestions := client.Search(context.Background(), "somewhere")

	assert.Len(t, suggestions, 5)
}

func TestSearch_EmptyQuerySkipsUpstream(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())
	assert.Nil(t, client.Search(context.Background(), "   "))
	assert.False(t, called)
}

func TestSearch_UpstreamErrorYieldsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())
	assert.Nil(t, client.Search(context.Background(), "Delhi"))
}

func TestSearch_UnreachableUpstreamYieldsEmptyList(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", nil, zap.NewNop())
	assert.Nil(t, client.Search(context.Background(), "Delhi"))
}
