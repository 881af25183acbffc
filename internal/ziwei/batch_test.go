package ziwei

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestBatch_FailureIsolation(t *testing.T) {
	defer goleak.VerifyNone(t)

	inputs := []BirthInput{
		goldenInput,
		{Year: 1990, Month: 13, Day: 1, Hour: 1, Gender: Male},
		{Year: 1984, Month: 2, Day: 2, Hour: 23, Gender: Female},
	}
	batch := New().Batch(context.Background(), inputs, 2)

	_, err := uuid.Parse(batch.ID)
	require.NoError(t, err)
	require.Len(t, batch.Results, 3)
	assert.Equal(t, 2, batch.Succeeded())

	for i, r := range batch.Results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, inputs[i], r.Input)
	}
	assert.NotNil(t, batch.Results[0].Chart)
	assert.NotNil(t, batch.Results[2].Chart)

	failed := batch.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Index)
	assert.Nil(t, failed[0].Chart)
	assert.True(t, errors.Is(failed[0].Err, ErrInvalidInput))
}

func TestBatch_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	calc := New()
	var inputs []BirthInput
	for m := 1; m <= 12; m++ {
		inputs = append(inputs, BirthInput{Year: 1988, Month: m, Day: 20, Hour: m * 2 % 24, Gender: Female})
	}
	batch := calc.Batch(context.Background(), inputs, 0)
	require.Equal(t, len(inputs), batch.Succeeded())

	for i, in := range inputs {
		want, err := calc.Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, want.Life, batch.Results[i].Chart.Life)
		assert.Equal(t, want.Palaces, batch.Results[i].Chart.Palaces)
	}
}

func TestBatch_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := &fixedResolver{sx: goldenSexagenary}
	batch := New(WithResolver(res)).Batch(ctx, []BirthInput{goldenInput, goldenInput}, 1)

	assert.Zero(t, batch.Succeeded())
	for _, r := range batch.Results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
	assert.Zero(t, res.calls.Load())
}
