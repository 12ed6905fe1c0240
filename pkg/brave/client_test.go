package brave

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSearch(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  string
		wantURLs []string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"web": {"results": [
				{"title": "Jane Doe | LinkedIn", "url": "https://www.linkedin.com/in/jdoe/"},
				{"title": "Acme Corp", "url": "https://acme.example.com/about"}
			]}}`,
			wantURLs: []string{"https://www.linkedin.com/in/jdoe/", "https://acme.example.com/about"},
		},
		{
			name:     "no_results",
			status:   http.StatusOK,
			body:     `{"web": {"results": []}}`,
			wantURLs: nil,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"message": "invalid subscription token"}`,
			wantErr: "unexpected status 401",
		},
		{
			name:    "malformed_response",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: "unmarshal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/web/search", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("X-Subscription-Token"))
				assert.Equal(t, `Jane Doe Acme "LinkedIn"`, r.URL.Query().Get("q"))
				assert.Equal(t, "web", r.URL.Query().Get("results_filter"))
				assert.Equal(t, "5", r.URL.Query().Get("count"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))
			resp, err := client.WebSearch(context.Background(), `Jane Doe Acme "LinkedIn"`, 5)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			var urls []string
			for _, res := range resp.Web.Results {
				urls = append(urls, res.URL)
			}
			assert.Equal(t, tt.wantURLs, urls)
		})
	}
}

func TestWebSearchDefaultCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[]}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.WebSearch(context.Background(), "query", 0)
	require.NoError(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()
	c := NewClient("my-key")
	hc := c.(*httpClient)
	assert.Equal(t, "my-key", hc.apiKey)
	assert.Equal(t, defaultBaseURL, hc.baseURL)
	assert.NotNil(t, hc.http)
}
