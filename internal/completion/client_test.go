package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccessTrimsWhitespace(t *testing.T) {
	var gotBody struct {
		Message string `json:"message"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "  - **Battery**: lasts all day.\n"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.Complete(context.Background(), "Explain Battery: 5000mAh")
	require.NoError(t, err)
	assert.Equal(t, "- **Battery**: lasts all day.", out)
	assert.Equal(t, "Explain Battery: 5000mAh", gotBody.Message)
}

func TestCompleteServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Complete(context.Background(), "prompt")
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindService, cerr.Kind)
	assert.Equal(t, http.StatusInternalServerError, cerr.StatusCode)
}

func TestCompleteMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"missing field": `{"reply":"hello"}`,
		"not json":      `<html>nope</html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Complete(context.Background(), "prompt")
			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, KindMalformed, cerr.Kind)
		})
	}
}

func TestCompleteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := NewClient(srv.URL).Complete(context.Background(), "prompt")
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindNetwork, cerr.Kind)
}

func TestCompleteEmptyPromptRejectedBeforeIO(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Complete(context.Background(), "   ")
	require.Error(t, err)
	assert.EqualValues(t, 0, calls.Load())
}

func TestCompleteNoDedup(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	for i := 0; i < 2; i++ {
		out, err := c.Complete(context.Background(), "same prompt")
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	}
	assert.EqualValues(t, 2, calls.Load())
}
