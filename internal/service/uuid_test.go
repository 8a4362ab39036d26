package service

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerateV4(t *testing.T) {
	svc := NewUUIDService()

	t.Run("single", func(t *testing.T) {
		res, err := svc.GenerateV4(1)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t, "4", res.Version)
		assert.Len(t, res.UUIDs, 1)
		assert.Empty(t, res.Timestamp)

		u, err := uuid.Parse(res.UUIDs[0])
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())
	})

	t.Run("batch has no duplicates", func(t *testing.T) {
		res, err := svc.GenerateV4(100)
		require.NoError(t, err)
		assert.Len(t, res.UUIDs, 100)

		seen := make(map[string]bool, len(res.UUIDs))
		for _, s := range res.UUIDs {
			assert.False(t, seen[s], "duplicate uuid %s", s)
			seen[s] = true
		}
	})

	t.Run("count out of range", func(t *testing.T) {
		for _, count := range []int{0, -1, 101} {
			res, err := svc.GenerateV4(count)
			assert.Nil(t, res)
			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, KindValidation, svcErr.Kind)
			assert.Equal(t, "Count must be between 1 and 100", svcErr.Message)
		}
	})
}

func TestUUIDGenerateV7(t *testing.T) {
	svc := NewUUIDService()

	t.Run("batch is sorted and versioned", func(t *testing.T) {
		res, err := svc.GenerateV7(50)
		require.NoError(t, err)
		assert.Equal(t, "7", res.Version)
		assert.NotEmpty(t, res.Timestamp)

		assert.True(t, sort.StringsAreSorted(res.UUIDs), "v7 batch must be lexicographically ordered")
		for _, s := range res.UUIDs {
			u, err := uuid.Parse(s)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), u.Version())
		}
	})

	t.Run("count out of range", func(t *testing.T) {
		_, err := svc.GenerateV7(101)
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindValidation, svcErr.Kind)
	})
}

func TestUUIDParse(t *testing.T) {
	svc := NewUUIDService()

	t.Run("v4 round trip", func(t *testing.T) {
		gen, err := svc.GenerateV4(1)
		require.NoError(t, err)

		res, err := svc.Parse(gen.UUIDs[0])
		require.NoError(t, err)
		assert.Equal(t, gen.UUIDs[0], res.UUID)
		assert.Equal(t, 4, res.Version)
		assert.Equal(t, 2, res.Variant)
		assert.Equal(t, "Random UUID (version 4)", res.Type)
		assert.False(t, res.HasTimestamp)
	})

	t.Run("v7 round trip", func(t *testing.T) {
		gen, err := svc.GenerateV7(1)
		require.NoError(t, err)

		res, err := svc.Parse(gen.UUIDs[0])
		require.NoError(t, err)
		assert.Equal(t, 7, res.Version)
		assert.Equal(t, "Time-ordered UUID (version 7)", res.Type)
	})

	t.Run("v1 exposes embedded timestamp", func(t *testing.T) {
		res, err := svc.Parse("c232ab00-9414-11ec-b3c8-9f6bdeced846")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Version)
		assert.True(t, res.HasTimestamp)
		assert.Positive(t, res.Timestamp)
	})

	t.Run("bit halves", func(t *testing.T) {
		res, err := svc.Parse("00000000-0000-4000-8000-000000000001")
		require.NoError(t, err)
		assert.Equal(t, "0x0000000000004000", res.MostSigBits)
		assert.Equal(t, "0x8000000000000001", res.LeastSigBits)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		res, err := svc.Parse("  c232ab00-9414-11ec-b3c8-9f6bdeced846\n")
		require.NoError(t, err)
		assert.Equal(t, "c232ab00-9414-11ec-b3c8-9f6bdeced846", res.UUID)
	})

	t.Run("non-canonical forms are rejected", func(t *testing.T) {
		inputs := []string{
			"",
			"not-a-uuid",
			"c232ab00941411ecb3c89f6bdeced846",                     // compact
			"{c232ab00-9414-11ec-b3c8-9f6bdeced846}",               // braces
			"urn:uuid:c232ab00-9414-11ec-b3c8-9f6bdeced846",        // URN
			"c232ab00-9414-11ec-b3c8-9f6bdeced84",                  // too short
			"g232ab00-9414-11ec-b3c8-9f6bdeced846",                 // non-hex
			"c232ab00-9414-11ec-b3c8-9f6bdeced846-extra",           // trailing
		}
		for _, in := range inputs {
			_, err := svc.Parse(in)
			var svcErr *Error
			require.ErrorAs(t, err, &svcErr, "input %q", in)
			assert.Equal(t, KindFormat, svcErr.Kind, "input %q", in)
		}
	})
}
