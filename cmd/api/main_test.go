package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistly/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "artistly version "+Version+"\n", out)
}

func TestFacetsCommandUsesEmbeddedCatalog(t *testing.T) {
	out, err := execute(t, "", "facets")
	require.NoError(t, err)

	var facets struct {
		Categories  []string `json:"categories"`
		Locations   []string `json:"locations"`
		PriceRanges []string `json:"priceRanges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &facets))
	assert.Contains(t, facets.Categories, "singers")
	assert.NotEmpty(t, facets.Locations)
	assert.NotEmpty(t, facets.PriceRanges)
}

func TestValidateCommand(t *testing.T) {
	valid := `{"name":"Jordan Lee","bio":"Singer and composer performing live across India!!","categories":["singers"],"languages":["Hindi"],"feeRange":"₹50,000-1,00,000","location":"Pune, Maharashtra"}`
	path := filepath.Join(t.TempDir(), "application.json")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o600))

	out, err := execute(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)

	out, err = execute(t, `{"name":""}`, "validate")
	require.Error(t, err)
	assert.Contains(t, out, `"valid": false`)
	assert.Contains(t, out, `"name"`)
}

func TestNewServerServesSeededAPI(t *testing.T) {
	cfg := config.Config{
		LogLevel:              "error",
		SubmitTimeout:         time.Second,
		SubmitRateLimitPerMin: 10,
		SessionTTL:            time.Minute,
		RequestTimeout:        5 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := newServer(context.Background(), cfg, nil, logger)
	require.NoError(t, err)
	require.NotNil(t, srv.catalog)

	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/submissions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var queue []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &queue))
	assert.Len(t, queue, 5)
}

func TestConnectRedisWithoutURL(t *testing.T) {
	assert.Nil(t, connectRedis(context.Background(), "", slog.Default()))
	assert.Nil(t, connectRedis(context.Background(), "not a url", slog.New(slog.NewTextHandler(io.Discard, nil))))
}
