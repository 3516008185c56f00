package freeze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func january() domain.Subscription {
	return domain.Subscription{
		ID:         1,
		IsValid:    true,
		ValidSince: date(2025, 1, 1),
		ValidUntil: date(2025, 1, 31),
	}
}

func TestFreeze_ExtendsByFreezeLength(t *testing.T) {
	sub := january()

	got, err := Freeze(sub, date(2025, 1, 10), date(2025, 1, 20))
	require.NoError(t, err)

	assert.Equal(t, date(2025, 2, 10), got.ValidUntil)
	assert.Equal(t, date(2025, 1, 10), *got.FrozenFrom)
	assert.Equal(t, date(2025, 1, 20), *got.FrozenUntil)
	assert.True(t, got.IsValid)
	assert.Nil(t, sub.FrozenFrom, "input is not mutated")
	assert.Equal(t, date(2025, 1, 31), sub.ValidUntil)
}

func TestFreeze_ExtensionEqualsDuration(t *testing.T) {
	sub := domain.Subscription{ValidSince: date(2025, 1, 1), ValidUntil: date(2025, 12, 31)}

	for _, r := range [][2]time.Time{
		{date(2025, 1, 1), date(2025, 1, 2)},
		{date(2025, 2, 20), date(2025, 3, 5)},
		{date(2025, 3, 28), date(2025, 4, 3)}, // переход на летнее время в Европе
		{date(2025, 6, 1), date(2025, 12, 31)},
	} {
		got, err := Freeze(sub, r[0], r[1])
		require.NoError(t, err)
		extension := ExtensionDays(sub.ValidUntil, got.ValidUntil)
		assert.Equal(t, ExtensionDays(r[0], r[1]), extension)
	}
}

func TestFreeze_Preconditions(t *testing.T) {
	sub := january()

	tests := []struct {
		name    string
		from    time.Time
		until   time.Time
		wantErr error
	}{
		{name: "inverted", from: date(2025, 1, 20), until: date(2025, 1, 10), wantErr: domain.ErrInvertedFreezeRange},
		{name: "empty", from: date(2025, 1, 10), until: date(2025, 1, 10), wantErr: domain.ErrInvertedFreezeRange},
		{name: "before start", from: date(2024, 12, 25), until: date(2025, 1, 5), wantErr: domain.ErrFreezeBeforeStart},
		{name: "after end", from: date(2025, 1, 25), until: date(2025, 2, 5), wantErr: domain.ErrFreezeAfterEnd},
		{name: "first failure wins", from: date(2025, 2, 5), until: date(2024, 12, 1), wantErr: domain.ErrInvertedFreezeRange},
		{name: "whole period", from: date(2025, 1, 1), until: date(2025, 1, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Freeze(sub, tt.from, tt.until)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFreeze_ReplacesPreviousFreeze(t *testing.T) {
	frozen, err := Freeze(january(), date(2025, 1, 10), date(2025, 1, 20))
	require.NoError(t, err)
	require.Equal(t, date(2025, 2, 10), frozen.ValidUntil)

	t.Run("same range is idempotent", func(t *testing.T) {
		got, err := Freeze(frozen, date(2025, 1, 10), date(2025, 1, 20))
		require.NoError(t, err)
		assert.Equal(t, date(2025, 2, 10), got.ValidUntil)
	})

	t.Run("shorter range shrinks extension", func(t *testing.T) {
		got, err := Freeze(frozen, date(2025, 1, 10), date(2025, 1, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2025, 2, 5), got.ValidUntil)
		assert.Equal(t, date(2025, 1, 15), *got.FrozenUntil)
	})

	t.Run("end checked without previous extension", func(t *testing.T) {
		_, err := Freeze(frozen, date(2025, 1, 25), date(2025, 2, 5))
		assert.ErrorIs(t, err, domain.ErrFreezeAfterEnd)
	})
}

func TestFreeze_IgnoresTimeOfDay(t *testing.T) {
	sub := january()

	got, err := Freeze(sub, time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC), time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, date(2025, 2, 10), got.ValidUntil)
}
