package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashGenerate(t *testing.T) {
	svc := NewHashService()

	t.Run("known digests", func(t *testing.T) {
		res, err := svc.Generate("hello")
		require.NoError(t, err)
		assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", res.MD5)
		assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", res.SHA1)
		assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", res.SHA256)
		assert.Equal(t, 128, len(res.SHA512))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Generate("")
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindValidation, svcErr.Kind)
	})
}

func TestHashPassword(t *testing.T) {
	svc := NewHashService()

	t.Run("length and charset", func(t *testing.T) {
		res, err := svc.Password(32)
		require.NoError(t, err)
		assert.Equal(t, 32, res.Length)
		assert.Len(t, res.Password, 32)
		for _, c := range res.Password {
			assert.True(t, strings.ContainsRune(passwordCharset, c), "unexpected character %q", c)
		}
	})

	t.Run("successive passwords differ", func(t *testing.T) {
		a, err := svc.Password(minPasswordLength)
		require.NoError(t, err)
		b, err := svc.Password(minPasswordLength)
		require.NoError(t, err)
		assert.NotEqual(t, a.Password, b.Password)
	})

	t.Run("length out of range", func(t *testing.T) {
		for _, length := range []int{0, 7, 129} {
			_, err := svc.Password(length)
			var svcErr *Error
			require.ErrorAs(t, err, &svcErr, "length %d", length)
			assert.Equal(t, KindValidation, svcErr.Kind)
		}
	})
}
