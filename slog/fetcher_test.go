package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valukujp-oss/zeirishi-scraper/mock"
	zslog "github.com/valukujp-oss/zeirishi-scraper/slog"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs URL and byte count on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		fetcher := zslog.NewLoggingFetcher(next, logger)

		html, err := fetcher.Fetch(context.Background(), "https://example.com/page")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "https://example.com/page")
		assert.Contains(t, buf.String(), "bytes=13")
	})

	t.Run("passes the error through and logs it", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		wantErr := errors.New("connection refused")
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", wantErr
			},
		}

		fetcher := zslog.NewLoggingFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com/page")
		require.ErrorIs(t, err, wantErr)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := zslog.NewLoggingFetcher(next, stdslog.New(stdslog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
