package modal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestParticipation(t *testing.T) {
	masses := []float64{2, 1}
	M := NewMassMatrix(masses)
	m := mat.NewVecDense(2, []float64{2, 1})
	x := mat.NewVecDense(2, []float64{0.5, 1})

	gamma, err := Participation(m, M, x)
	require.NoError(t, err)
	// (2·0.5 + 1·1) / (2·0.25 + 1·1)
	assert.InDelta(t, 2.0/1.5, gamma, 1e-12)
}

func TestParticipation_Degenerate(t *testing.T) {
	M := NewMassMatrix([]float64{0, 0})
	m := mat.NewVecDense(2, []float64{0, 0})
	x := mat.NewVecDense(2, []float64{0.5, 1})

	_, err := Participation(m, M, x)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestParticipation_LengthMismatch(t *testing.T) {
	M := NewMassMatrix([]float64{1, 1})
	m := mat.NewVecDense(2, []float64{1, 1})
	x := mat.NewVecDense(3, []float64{0.3, 0.6, 1})

	_, err := Participation(m, M, x)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewMassMatrix(t *testing.T) {
	masses := []float64{3, 2, 1}
	M := NewMassMatrix(masses)

	r, c := M.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = masses[i]
			}
			assert.Equal(t, want, M.At(i, j))
		}
	}

	masses[0] = 10
	assert.Equal(t, 3.0, M.At(0, 0))
}

func TestResponse(t *testing.T) {
	M := NewMassMatrix([]float64{2, 4})
	x := mat.NewVecDense(2, []float64{0.5, 1})

	u, f := Response(2.0, 1.5, x, M)
	assert.Equal(t, []float64{1.5, 3.0}, u.RawVector().Data)
	assert.Equal(t, []float64{3.0, 12.0}, f.RawVector().Data)
}

func TestStoryShear(t *testing.T) {
	tests := []struct {
		name   string
		forces []float64
		want   []float64
	}{
		{"single floor", []float64{110.3625}, []float64{110.3625}},
		{"three floors", []float64{1, 2, 3}, []float64{6, 5, 3}},
		{"mixed signs", []float64{-2, 5, -1, 4}, []float64{6, 8, 3, 4}},
		{"empty", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StoryShear(tt.forces))
		})
	}
}

func TestStoryShear_DoesNotModifyInput(t *testing.T) {
	forces := []float64{1, 2, 3}
	StoryShear(forces)
	assert.Equal(t, []float64{1, 2, 3}, forces)
}

func TestCombine(t *testing.T) {
	q := mat.NewDense(2, 2, []float64{
		3, -4,
		-1, 0,
	})

	abs, srss := Combine(q)
	assert.InDeltaSlice(t, []float64{7, 1}, abs, 1e-12)
	assert.InDeltaSlice(t, []float64{5, 1}, srss, 1e-12)
}

func TestCombine_SRSSBoundedByAbs(t *testing.T) {
	data := make([]float64, 0, 8*5)
	for i := 0; i < 8*5; i++ {
		data = append(data, math.Sin(float64(i)*1.7)*float64(i%7+1)*(-1+2*float64(i%2)))
	}
	q := mat.NewDense(8, 5, data)

	abs, srss := Combine(q)
	for i := range abs {
		assert.LessOrEqual(t, srss[i], abs[i]+1e-12, "floor %d", i+1)
		assert.GreaterOrEqual(t, srss[i], 0.0)
	}
}

func TestScale(t *testing.T) {
	weighted, design := Scale([]float64{100, 40}, []float64{80, 20}, 8)

	assert.InDeltaSlice(t, []float64{85, 25}, weighted, 1e-12)
	assert.InDeltaSlice(t, []float64{510, 150}, design, 1e-12)
}

func TestCombineAndScale(t *testing.T) {
	q := mat.NewDense(1, 1, []float64{110.3625})

	c := CombineAndScale(q, 8)
	assert.InDelta(t, 110.3625, c.Abs[0], 1e-12)
	assert.InDelta(t, 110.3625, c.SRSS[0], 1e-12)
	assert.InDelta(t, 110.3625, c.Weighted[0], 1e-12)
	assert.InDelta(t, 662.175, c.Design[0], 1e-9)
}
