//go:build unit

package pgconv_test

import (
	"database/sql"
	"math"
	"testing"
	"time"

	"coupon-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "integer percent", in: 10, want: 10},
		{name: "two decimals kept", in: 12.5, want: 12.5},
		{name: "upper bound", in: 100, want: 100},
		{name: "rounded to scale", in: 33.336, want: 33.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := pgconv.NumericFromFloat64(tt.in)
			require.NoError(t, err)
			require.True(t, n.Valid)

			got, err := pgconv.Float64FromNumeric(n)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNumericRejectsNonFinite(t *testing.T) {
	_, err := pgconv.NumericFromFloat64(math.NaN())
	assert.ErrorIs(t, err, pgconv.ErrInvalidFloat64Value)

	_, err = pgconv.NumericFromFloat64(math.Inf(1))
	assert.ErrorIs(t, err, pgconv.ErrInvalidFloat64Value)
}

func TestFloat64FromNullNumeric(t *testing.T) {
	_, err := pgconv.Float64FromNumeric(pgtype.Numeric{})
	assert.ErrorIs(t, err, pgconv.ErrNullNumeric)
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	got := pgconv.IntPtrFromPgtype(pgtype.Int4{Int32: 0, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)

	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	now := time.Now()
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))

	id := uuid.New()
	assert.Equal(t, id, pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgtype.UUID{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

func TestNumericFromFloat64KeepsScale(t *testing.T) {
	n, err := pgconv.NumericFromFloat64(12.5)
	require.NoError(t, err)

	assert.Equal(t, int32(-pgconv.NumericScale), n.Exp)
	assert.Equal(t, int64(1250), n.Int.Int64())
}
