// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package classifier is the 2D linear classifier demo: labelled points
// on a canvas, separated by a perceptron trained on every change.
//
// The perceptron is a visual aid. It is not guaranteed to converge, and
// gives up after MAX_PASSES passes over the points.
package classifier

import (
	"errors"
	"math"
	"math/rand"

	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrOutside = errors.New(f("point outside canvas"))
	ErrLabel   = errors.New(f("unknown class"))
	ErrCanvas  = errors.New(f("canvas must have a positive size"))
)

const (
	MAX_PASSES    = 1000 // Training passes before giving up.
	LEARNING_RATE = 0.1  // Weight correction per misclassified point.
	MIN_POINTS    = 2    // Points needed before training.
)

// Label is the class of a point.
type Label int

const (
	CLASS_A = Label(0) // A
	CLASS_B = Label(1) // B
)

func (label Label) String() string {
	switch label {
	case CLASS_A:
		return "A"
	case CLASS_B:
		return "B"
	}
	return "?"
}

// Sign is the perceptron target: +1 for A, -1 for B.
func (label Label) Sign() float64 {
	if label == CLASS_A {
		return 1
	}
	return -1
}

// ParseLabel accepts "A" or "B", in either case.
func ParseLabel(text string) (label Label, err error) {
	switch text {
	case "A", "a":
		label = CLASS_A
	case "B", "b":
		label = CLASS_B
	default:
		err = ErrLabel
	}
	return
}

// Point in canvas coordinates.
type Point struct {
	X     float64
	Y     float64
	Label Label
}

// Classifier state.
type Classifier struct {
	Width  float64 // Canvas width.
	Height float64 // Canvas height.

	Points []Point // In insertion order.
	Class  Label   // Label given to the next point.
	Show   bool    // Boundary shown; training follows every change.

	Weights [2]float64
	Bias    float64
	Trained bool // Weights are from a training run.

	Passes    int  // Passes of the last training run.
	Converged bool // Last training run ended on a clean pass.

	rand *rand.Rand
}

// New creates a classifier for a width by height canvas. The seed makes
// the random initial weights repeatable.
func New(width, height float64, seed int64) (cl *Classifier, err error) {
	if width <= 0 || height <= 0 {
		err = ErrCanvas
		return
	}

	cl = &Classifier{
		Width:  width,
		Height: height,
		rand:   rand.New(rand.NewSource(seed)),
	}
	return
}

// SetClass selects the label of subsequently added points.
func (cl *Classifier) SetClass(label Label) (err error) {
	if label != CLASS_A && label != CLASS_B {
		err = ErrLabel
		return
	}

	cl.Class = label
	return
}

// Add places a point with the current class, retraining when shown.
func (cl *Classifier) Add(x, y float64) (err error) {
	if x <= 0 || x >= cl.Width || y <= 0 || y >= cl.Height {
		err = ErrOutside
		return
	}

	cl.Points = append(cl.Points, Point{X: x, Y: y, Label: cl.Class})
	if cl.Show {
		cl.Train()
	}
	return
}

// Reset removes every point and hides the boundary.
func (cl *Classifier) Reset() {
	cl.Points = nil
	cl.Show = false
	cl.Trained = false
	cl.Passes = 0
	cl.Converged = false
}

// Toggle shows or hides the boundary, training when it is shown.
func (cl *Classifier) Toggle() {
	cl.Show = !cl.Show
	if cl.Show {
		cl.Train()
	}
}

// normalize maps canvas coordinates to [-0.5, 0.5).
func (cl *Classifier) normalize(p Point) (x, y float64) {
	return p.X/cl.Width - 0.5, p.Y/cl.Height - 0.5
}

// Train runs the perceptron from random weights. Fewer than MIN_POINTS
// points leave the classifier untouched.
func (cl *Classifier) Train() (passes int, converged bool) {
	if len(cl.Points) < MIN_POINTS {
		return
	}

	cl.Weights = [2]float64{cl.rand.Float64()*2 - 1, cl.rand.Float64()*2 - 1}
	cl.Bias = cl.rand.Float64()*2 - 1

	for passes < MAX_PASSES {
		passes++
		corrected := false
		for _, p := range cl.Points {
			x, y := cl.normalize(p)
			target := p.Label.Sign()
			if target*cl.Activation(x, y) <= 0 {
				cl.Weights[0] += LEARNING_RATE * target * x
				cl.Weights[1] += LEARNING_RATE * target * y
				cl.Bias += LEARNING_RATE * target
				corrected = true
			}
		}
		if !corrected {
			converged = true
			break
		}
	}

	cl.Trained = true
	cl.Passes, cl.Converged = passes, converged
	return
}

// Activation is w·x + b for normalized coordinates.
func (cl *Classifier) Activation(x, y float64) float64 {
	return cl.Weights[0]*x + cl.Weights[1]*y + cl.Bias
}

// Classify labels a canvas point with the current weights.
func (cl *Classifier) Classify(x, y float64) Label {
	nx, ny := cl.normalize(Point{X: x, Y: y})
	if cl.Activation(nx, ny) > 0 {
		return CLASS_A
	}
	return CLASS_B
}

// Segment is a line segment in canvas coordinates.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Line returns the canvas segment where w·x + b + offset = 0. Offset 0 is
// the boundary and ±1 the margins. The line spans the canvas along its
// shallower axis; ok is false when the weights are all zero.
func (cl *Classifier) Line(offset float64) (seg Segment, ok bool) {
	wx, wy := cl.Weights[0], cl.Weights[1]
	b := cl.Bias + offset

	if wx == 0 && wy == 0 {
		return
	}

	if math.Abs(wy) > math.Abs(wx) {
		seg = Segment{
			X1: 0,
			Y1: (-b-wx*-0.5)/wy*cl.Height + cl.Height/2,
			X2: cl.Width,
			Y2: (-b-wx*0.5)/wy*cl.Height + cl.Height/2,
		}
	} else {
		seg = Segment{
			X1: (-b-wy*-0.5)/wx*cl.Width + cl.Width/2,
			Y1: 0,
			X2: (-b-wy*0.5)/wx*cl.Width + cl.Width/2,
			Y2: cl.Height,
		}
	}

	ok = true
	return
}

// Count returns the number of points of each class.
func (cl *Classifier) Count() (a int, b int) {
	for _, p := range cl.Points {
		if p.Label == CLASS_A {
			a++
		} else {
			b++
		}
	}
	return
}
