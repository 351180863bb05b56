package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveBucketName(t *testing.T) {
	// Digest must match BLAKE2b with an 8-byte digest size, the same
	// derivation the original provisioning tooling used, so existing
	// buckets stay addressable.
	name, err := DeriveBucketName("proj-42", "imdb-datasets")
	require.NoError(t, err)
	require.Equal(t, "7799d9dca862bb4d-imdb-datasets", name)
}

func TestDeriveBucketNameDeterministic(t *testing.T) {
	first, err := DeriveBucketName("my-project", "imdb-datasets")
	require.NoError(t, err)

	second, err := DeriveBucketName("my-project", "imdb-datasets")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDeriveBucketNameDistinctTenants(t *testing.T) {
	a, err := DeriveBucketName("my-project", "imdb-datasets")
	require.NoError(t, err)

	b, err := DeriveBucketName("another-project", "imdb-datasets")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestDeriveBucketNameHidesTenantID(t *testing.T) {
	name, err := DeriveBucketName("my-project", "imdb-datasets")
	require.NoError(t, err)
	require.NotContains(t, name, "my-project")
}

func TestDeriveBucketNameEmptyTenant(t *testing.T) {
	_, err := DeriveBucketName("", "imdb-datasets")

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}
