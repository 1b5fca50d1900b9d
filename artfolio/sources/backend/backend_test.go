package backend

import (
	"context"
	"testing"

	"artfolio/artfolio/config"
	"artfolio/artfolio/sources/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	s, err := Open(context.Background(), config.Config{StoreBackend: config.BackendMemory})
	require.NoError(t, err)
	defer s.Close()

	u, err := s.GetUser(context.Background(), memory.DemoUserID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, memory.DemoFullName, *u.FullName)
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StoreBackend: "sqlite"})
	assert.ErrorContains(t, err, "unknown store backend")
}
