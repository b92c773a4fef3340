package storage

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/fourinarow/testing/suite"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: connecting to the suite's redis
		client, err := New(ctx, st.Storage.Options().Addr)

		// Then: the connection is usable
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })
		require.NoError(t, client.Set(ctx, "ping", "pong", time.Minute).Err())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// When: connecting to a closed port
		client, err := New(ctx, "127.0.0.1:1")

		// Then: an error is returned and no client leaks out
		require.Error(t, err)
		require.Nil(t, client)
	})
}
