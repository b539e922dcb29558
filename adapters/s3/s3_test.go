package s3

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Operator(t *testing.T) {
	client := s3.New(s3.Options{Region: "auto"})

	_, err := NewS3Operator(client, "")
	assert.Error(t, err)

	operator, err := NewS3Operator(client, "recipes")
	require.NoError(t, err)
	assert.Equal(t, "recipes", operator.Bucket)
	assert.NotNil(t, operator.Presign)
}

func TestStorageError(t *testing.T) {
	t.Run("api error keeps service message", func(t *testing.T) {
		apiErr := &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"}

		err := storageError(apiErr)

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "NoSuchBucket", storageErr.Code)
		assert.Equal(t, "The specified bucket does not exist", err.Error())
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		origin := errors.New("dial tcp: connection refused")
		assert.Same(t, origin, storageError(origin))
	})
}
