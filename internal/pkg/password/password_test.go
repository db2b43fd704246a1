package password_test

import (
	"testing"

	"parcels/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.Hash("s3cret", password.DefaultCost)

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)
	require.NoError(t, password.Compare(hashed, "s3cret"))
	require.Error(t, password.Compare(hashed, "wrong"))
}
