package upstream

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parfums", r.URL.Path)
		assert.Equal(t, "oud", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
	}))
	defer server.Close()

	client := NewClient(testLog(), server.URL)

	var out []struct {
		ID int64 `json:"id"`
	}
	status, err := client.Get("/parfums", url.Values{"q": {"oud"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, 200, status)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[1].ID)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"parfum_id": 3}`, string(body))
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(testLog(), server.URL)

	var result MutationResult
	_, err := client.Post("/panier", map[string]int64{"parfum_id": 3}, &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestClientUpstreamErrorCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"message": "parfum introuvable"}`))
	}))
	defer server.Close()

	client := NewClient(testLog(), server.URL)

	status, err := client.Get("/parfums/99", nil, nil)
	require.Error(t, err)

	assert.Equal(t, 404, status)
	assert.Equal(t, 404, StatusCode(err))
	assert.Equal(t, "parfum introuvable", Message(err))
}

func TestClientUnreachableUpstream(t *testing.T) {
	client := NewClient(testLog(), "http://127.0.0.1:1")

	_, err := client.Get("/parfums", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 502, StatusCode(err))
}

func TestErrorMessage(t *testing.T) {
	testTable := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "message field", body: `{"message": "stock insuffisant"}`, expected: "stock insuffisant"},
		{name: "details over error", body: `{"details": "detail", "error": "err"}`, expected: "detail"},
		{name: "error field", body: `{"error": "err"}`, expected: "err"},
		{name: "empty json", body: `{}`, expected: "erreur 500"},
		{name: "not json", body: `<html>oops</html>`, expected: "erreur 500"},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errorMessage([]byte(tc.body), 500))
		})
	}
}

func TestStatusCodeFallback(t *testing.T) {
	assert.Equal(t, 500, StatusCode(assert.AnError))
	assert.Equal(t, assert.AnError.Error(), Message(assert.AnError))
}

func TestResolveImageURL(t *testing.T) {
	testTable := []struct {
		name     string
		ref      string
		expected string
	}{
		{name: "empty gets placeholder", ref: "", expected: placeholderImage},
		{name: "absolute passes through", ref: "http://cdn.local/p.jpg", expected: "http://cdn.local/p.jpg"},
		{name: "relative joins base", ref: "/images/p.jpg", expected: "http://api.local/images/p.jpg"},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveImageURL("http://api.local/", tc.ref))
		})
	}
}
