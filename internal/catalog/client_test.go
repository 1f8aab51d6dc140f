package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-booking/internal/catalog"
)

func TestShowName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/7":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"Arena Sessions"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := catalog.New(srv.URL, nil)
	ctx := context.Background()

	name, err := c.ShowName(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Arena Sessions", name)

	_, err = c.ShowName(ctx, 8)
	assert.Error(t, err, "non-200 statuses surface as errors for callers to degrade on")
}

func TestShowName_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately so the address refuses connections

	c := catalog.New(srv.URL, nil)
	_, err := c.ShowName(context.Background(), 1)
	assert.Error(t, err)
}
