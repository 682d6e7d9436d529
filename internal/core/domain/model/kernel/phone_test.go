package kernel_test

import (
	"testing"

	"kurirkan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("should replace leading zero with country code", func(t *testing.T) {
		p, err := kernel.NewPhone("081234567890")

		require.NoError(t, err)
		assert.Equal(t, "6281234567890", p.String())
	})

	t.Run("should prepend country code when missing", func(t *testing.T) {
		p, err := kernel.NewPhone("81234567890")

		require.NoError(t, err)
		assert.Equal(t, "6281234567890", p.String())
	})

	t.Run("should keep number already in canonical form", func(t *testing.T) {
		p, err := kernel.NewPhone("6281234567890")

		require.NoError(t, err)
		assert.Equal(t, "6281234567890", p.String())
	})

	t.Run("should strip formatting characters", func(t *testing.T) {
		p, err := kernel.NewPhone("+62 812-3456-7890")

		require.NoError(t, err)
		assert.Equal(t, "6281234567890", p.String())
	})

	t.Run("should not reject short numbers", func(t *testing.T) {
		// Canonicalization only - length validation is not this type's job.
		p, err := kernel.NewPhone("0812")

		require.NoError(t, err)
		assert.Equal(t, "62812", p.String())
	})

	t.Run("should fail when no digits remain", func(t *testing.T) {
		_, err := kernel.NewPhone("abc")

		require.ErrorIs(t, err, kernel.ErrPhoneIsRequired)
	})
}

func TestPhone_IsEqual(t *testing.T) {
	t.Run("different spellings of same number are equal", func(t *testing.T) {
		a, err := kernel.NewPhone("081234567890")
		require.NoError(t, err)
		b, err := kernel.NewPhone("+6281234567890")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})
}
