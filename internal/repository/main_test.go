//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/castlemill/tms-proxy/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain shares one MongoDB container across all integration tests in
// this package.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDB connects to the shared container with a unique database name
// for test isolation.
func setupTestDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	return db
}
