package adapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var fastRetry = adapter.RetryConfig{
	InitialInterval: time.Millisecond,
	MaxInterval:     5 * time.Millisecond,
	MaxElapsedTime:  2 * time.Second,
}

func TestHTTPClient_GetBytes(t *testing.T) {
	tests := []struct {
		name         string
		handler      func(hit int32) http.HandlerFunc
		expectedHits int32
		expectedBody string
		expectedErr  string // Error message to assert, empty means no error expected
	}{
		{
			name: "ok",
			handler: func(hit int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"name":"Token"}`))
				}
			},
			expectedHits: 1,
			expectedBody: `{"name":"Token"}`,
		},
		{
			name: "429 is retried",
			handler: func(hit int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					if hit < 3 {
						w.WriteHeader(http.StatusTooManyRequests)
						return
					}
					_, _ = w.Write([]byte("done"))
				}
			},
			expectedHits: 3,
			expectedBody: "done",
		},
		{
			name: "500 fails without retry",
			handler: func(hit int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte("boom"))
				}
			},
			expectedHits: 1,
			expectedErr:  "unexpected status code 500: boom",
		},
		{
			name: "404 fails without retry",
			handler: func(hit int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}
			},
			expectedHits: 1,
			expectedErr:  "unexpected status code 404",
		},
		{
			name: "truncated body fails without retry",
			handler: func(hit int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Length", "100")
					_, _ = w.Write([]byte("short"))
				}
			},
			expectedHits: 1,
			expectedErr:  "failed to read response body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.handler(atomic.AddInt32(&hits, 1))(w, r)
			}))
			defer server.Close()

			client := adapter.NewHTTPClient(time.Second, fastRetry)
			body, err := client.GetBytes(context.Background(), server.URL)

			assert.Equal(t, tt.expectedHits, atomic.LoadInt32(&hits))
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, body)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBody, string(body))
		})
	}
}

func TestHTTPClient_GetBytesStopsOnCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := adapter.NewHTTPClient(time.Second, adapter.RetryConfig{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		MaxElapsedTime:  time.Minute,
	})

	_, err := client.GetBytes(ctx, server.URL)
	assert.Error(t, err)
}
