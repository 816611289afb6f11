package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/calculator"
	"github.com/ezrec/abacus/classifier"
	"github.com/ezrec/abacus/export"
	"github.com/ezrec/abacus/operand"
	"github.com/ezrec/abacus/theme"
)

const MAX_BODY = 1 << 20

var validate = newValidator()

func newValidator() (v *validator.Validate) {
	v = validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decode reads and validates a JSON request body.
func decode(w http.ResponseWriter, r *http.Request, req any) (err error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY))
	dec.DisallowUnknownFields()

	err = dec.Decode(req)
	if err != nil {
		err = fmt.Errorf("%v: %w", f("malformed request"), err)
		return
	}

	err = validate.Struct(req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			err = errors.New(f("invalid request: %v", strings.Join(fields, ", ")))
		}
	}
	return
}

type calcRequest struct {
	Op   string `json:"op" validate:"required"`
	A    string `json:"a" validate:"required"`
	B    string `json:"b" validate:"required"`
	Bits int    `json:"bits,omitempty" validate:"omitempty,min=1,max=64"`
}

type calcResponse struct {
	Op        string   `json:"op"`
	Bits      int      `json:"bits"`
	A         string   `json:"a"`
	B         string   `json:"b"`
	Result    string   `json:"result"`
	Decimal   uint64   `json:"decimal"`
	Remainder string   `json:"remainder,omitempty"`
	Summary   []string `json:"summary"`
	Steps     []string `json:"steps"`
}

func (srv *Server) calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	err := decode(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bits := req.Bits
	if bits == 0 {
		bits = srv.Config.Bits
	}

	op, err := alu.ParseOp(req.Op)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := operand.Parse(req.A, bits)
	if err != nil {
		writeError(w, http.StatusBadRequest, &alu.ErrOperand{Name: "a", Err: err})
		return
	}

	b, err := operand.Parse(req.B, bits)
	if err != nil {
		writeError(w, http.StatusBadRequest, &alu.ErrOperand{Name: "b", Err: err})
		return
	}

	res, err := alu.Apply(op, a, b, bits)
	srv.metrics.calculations.WithLabelValues(op.Name(), outcome(err)).Inc()
	if err != nil {
		srv.Log.Debug("calc", zap.Stringer("op", op), zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, &calcResponse{
		Op:        op.Name(),
		Bits:      bits,
		A:         string(a),
		B:         string(b),
		Result:    string(res.Result),
		Decimal:   res.Result.Uint(),
		Remainder: string(res.Remainder),
		Summary:   calculator.Summarize(op, a, b, res, nil),
		Steps:     res.Steps,
	})
}

type decimalRequest struct {
	Value *int `json:"value" validate:"required"`
}

type rodResponse struct {
	Digit int  `json:"digit"`
	Five  bool `json:"five"`
	Ones  int  `json:"ones"`
}

type decimalResponse struct {
	Value       int           `json:"value"`
	Rods        []rodResponse `json:"rods"` // Least significant first.
	Description []string      `json:"description"`
	Display     string        `json:"display"`
}

func (srv *Server) decimal(w http.ResponseWriter, r *http.Request) {
	var req decimalRequest
	err := decode(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ab := abacus.NewDecimal()
	err = ab.Set(*req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := &decimalResponse{
		Value:       ab.Value(),
		Description: ab.Describe(),
		Display:     ab.String(),
	}
	for _, rod := range ab.Rods() {
		resp.Rods = append(resp.Rods, rodResponse{Digit: rod.Digit(), Five: rod.Five, Ones: rod.Ones})
	}

	writeJSON(w, http.StatusOK, resp)
}

type pointRequest struct {
	X     float64 `json:"x" validate:"gt=0"`
	Y     float64 `json:"y" validate:"gt=0"`
	Label string  `json:"label" validate:"oneof=A B a b"`
}

type classifierRequest struct {
	Points []pointRequest `json:"points" validate:"required,min=1,dive"`
	Width  int            `json:"width,omitempty" validate:"omitempty,gt=0,max=1024"`
	Height int            `json:"height,omitempty" validate:"omitempty,gt=0,max=1024"`
	Seed   int64          `json:"seed,omitempty"`
}

type classifierResponse struct {
	Weights   [2]float64          `json:"weights"`
	Bias      float64             `json:"bias"`
	Passes    int                 `json:"passes"`
	Converged bool                `json:"converged"`
	Trained   bool                `json:"trained"`
	Boundary  *classifier.Segment `json:"boundary,omitempty"`
	Labels    []string            `json:"labels"` // Prediction per point.
	Legend    []string            `json:"legend"`
}

// classify trains on the posted points. With "Accept: image/png" the
// plot is returned instead of JSON.
func (srv *Server) classify(w http.ResponseWriter, r *http.Request) {
	var req classifierRequest
	err := decode(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	width, height := req.Width, req.Height
	if width == 0 {
		width = srv.Config.Classifier.Width
	}
	if height == 0 {
		height = srv.Config.Classifier.Height
	}

	seed := req.Seed
	if seed == 0 {
		seed = srv.Config.Classifier.Seed
	}
	if seed == 0 {
		seed = srv.Now().UnixNano()
	}

	cl, err := classifier.New(float64(width), float64(height), seed)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	for _, p := range req.Points {
		label, err := classifier.ParseLabel(p.Label)
		if err == nil {
			err = cl.SetClass(label)
		}
		if err == nil {
			err = cl.Add(p.X, p.Y)
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	cl.Toggle()
	if cl.Trained {
		result := "separated"
		if !cl.Converged {
			result = "not_separated"
		}
		srv.metrics.trainings.WithLabelValues(result).Inc()
	}

	if strings.Contains(r.Header.Get("Accept"), "image/png") {
		w.Header().Set("Content-Type", "image/png")
		err = export.EncodePNG(w, cl.Plot())
		if err != nil {
			srv.Log.Error("plot", zap.Error(err))
		}
		return
	}

	resp := &classifierResponse{
		Weights:   cl.Weights,
		Bias:      cl.Bias,
		Passes:    cl.Passes,
		Converged: cl.Converged,
		Trained:   cl.Trained,
		Legend:    cl.Legend(),
	}
	if seg, ok := cl.Line(0); ok && cl.Trained {
		resp.Boundary = &seg
	}
	for _, p := range cl.Points {
		resp.Labels = append(resp.Labels, cl.Classify(p.X, p.Y).String())
	}

	writeJSON(w, http.StatusOK, resp)
}

type themeResponse struct {
	Theme theme.Theme `json:"theme"`
}

func (srv *Server) getTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &themeResponse{Theme: srv.currentTheme()})
}

func (srv *Server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	if srv.Pref == nil {
		writeError(w, http.StatusServiceUnavailable, ErrNoStore)
		return
	}

	t, err := srv.Pref.Toggle()
	if err != nil {
		srv.Log.Error("theme toggle", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, &themeResponse{Theme: t})
}
