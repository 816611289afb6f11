package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	cl, err := New(400, 400, 1)
	assert.NoError(err)
	assert.Equal(CLASS_A, cl.Class)
	assert.False(cl.Show)

	_, err = New(0, 400, 1)
	assert.ErrorIs(err, ErrCanvas)
}

func TestClassifier_Add(t *testing.T) {
	assert := assert.New(t)

	cl, err := New(400, 400, 1)
	assert.NoError(err)

	assert.NoError(cl.Add(10, 20))
	assert.NoError(cl.SetClass(CLASS_B))
	assert.NoError(cl.Add(30, 40))
	assert.Equal([]Point{{10, 20, CLASS_A}, {30, 40, CLASS_B}}, cl.Points)

	assert.ErrorIs(cl.Add(0, 10), ErrOutside)
	assert.ErrorIs(cl.Add(10, 400), ErrOutside)
	assert.ErrorIs(cl.SetClass(Label(5)), ErrLabel)
	assert.Len(cl.Points, 2)

	a, b := cl.Count()
	assert.Equal(1, a)
	assert.Equal(1, b)

	// Hidden boundary: nothing is trained.
	assert.False(cl.Trained)

	cl.Reset()
	assert.Empty(cl.Points)
	assert.False(cl.Show)
}

func TestClassifier_Train(t *testing.T) {
	assert := assert.New(t)

	cl, err := New(400, 400, 42)
	assert.NoError(err)

	passes, converged := cl.Train()
	assert.Equal(0, passes)
	assert.False(converged)

	assert.NoError(cl.Add(100, 100))
	cl.Toggle()
	assert.True(cl.Show)
	assert.False(cl.Trained)

	assert.NoError(cl.SetClass(CLASS_B))
	assert.NoError(cl.Add(300, 300))
	assert.True(cl.Trained)
	assert.True(cl.Converged)
	assert.LessOrEqual(cl.Passes, MAX_PASSES)

	assert.Equal(CLASS_A, cl.Classify(100, 100))
	assert.Equal(CLASS_B, cl.Classify(300, 300))

	for _, p := range cl.Points {
		x, y := cl.normalize(p)
		assert.Greater(p.Label.Sign()*cl.Activation(x, y), 0.0)
	}
}

func TestClassifier_Repeatable(t *testing.T) {
	assert := assert.New(t)

	var weights [2][2]float64
	for n := range 2 {
		cl, err := New(400, 400, 7)
		assert.NoError(err)
		assert.NoError(cl.Add(50, 50))
		assert.NoError(cl.Add(60, 300))
		assert.NoError(cl.SetClass(CLASS_B))
		assert.NoError(cl.Add(350, 80))
		cl.Toggle()
		weights[n] = cl.Weights
	}
	assert.Equal(weights[0], weights[1])
}

func TestClassifier_Line(t *testing.T) {
	assert := assert.New(t)

	cl, err := New(400, 200, 1)
	assert.NoError(err)

	_, ok := cl.Line(0)
	assert.False(ok)

	cl.Weights = [2]float64{0, 1}
	seg, ok := cl.Line(0)
	assert.True(ok)
	assert.Equal(Segment{X1: 0, Y1: 100, X2: 400, Y2: 100}, seg)

	seg, ok = cl.Line(1)
	assert.True(ok)
	assert.Equal(Segment{X1: 0, Y1: -100, X2: 400, Y2: -100}, seg)

	cl.Weights = [2]float64{1, 0}
	seg, ok = cl.Line(0)
	assert.True(ok)
	assert.Equal(Segment{X1: 200, Y1: 0, X2: 200, Y2: 200}, seg)
}

func TestLabel(t *testing.T) {
	assert := assert.New(t)

	label, err := ParseLabel("b")
	assert.NoError(err)
	assert.Equal(CLASS_B, label)
	assert.Equal("B", label.String())
	assert.Equal(-1.0, label.Sign())
	assert.Equal(1.0, CLASS_A.Sign())

	_, err = ParseLabel("C")
	assert.ErrorIs(err, ErrLabel)
	assert.Equal("?", Label(3).String())
}
