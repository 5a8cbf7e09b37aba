package hashid

import (
	"testing"

	"Foodgram/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c, err := New(config.Default())
	require.NoError(t, err)

	for _, id := range []uint64{1, 42, 1834567890123456789} {
		code, err := c.Encode(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(code), config.Default().ShortLink.MinLength)

		got, err := c.Decode(code)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestCodec_Decode_Invalid(t *testing.T) {
	t.Parallel()

	c, err := New(config.Default())
	require.NoError(t, err)

	_, err = c.Decode("")
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = c.Decode("@@@")
	assert.ErrorIs(t, err, ErrInvalidCode)

	other := config.Default()
	other.ShortLink.Salt = "another salt"
	o, err := New(other)
	require.NoError(t, err)
	code, err := o.Encode(5)
	require.NoError(t, err)
	_, err = c.Decode(code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}
