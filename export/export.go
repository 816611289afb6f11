// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package export saves demo results: calculation traces and abacus states
// as text, classifier plots as PNG. File names carry the time of the save.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"iter"
	"path"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

// Export directories, one per demo.
const (
	DIR_CALCULATOR = "binary-calculator"
	DIR_ABACUS     = "digital-abacus"
	DIR_CLASSIFIER = "svm-simulator"
)

// Export file name formats, given the Timestamp.
const (
	FILE_CALCULATION = "binary_calculation_%s.txt"
	FILE_ABACUS      = "abacus_state_%s.txt"
	FILE_PLOT        = "svm_result_%s.png"
)

// Timestamp is the ISO-8601 UTC time to the second, with ':' replaced by
// '-' so that it can be part of a file name.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15-04-05")
}

// Exporter writes exports into a CreateFS.
type Exporter struct {
	FS  CreateFS
	Now func() time.Time // Defaults to time.Now.
	Log *zap.Logger      // Defaults to a no-op logger.
}

func (ex *Exporter) now() time.Time {
	if ex.Now == nil {
		return time.Now()
	}
	return ex.Now()
}

func (ex *Exporter) log() *zap.Logger {
	if ex.Log == nil {
		return zap.NewNop()
	}
	return ex.Log
}

// save writes a file into a demo directory, creating the directory
// when it does not exist yet. It returns the path written.
func (ex *Exporter) save(dir string, name string, write func(w io.Writer) error) (saved string, err error) {
	subsys, err := ex.FS.Sub(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return
		}
		err = ex.FS.Mkdir(dir, 0755)
		if err != nil {
			return
		}
		subsys, err = ex.FS.Sub(dir)
		if err != nil {
			return
		}
	}

	file, err := subsys.Create(name)
	if err != nil {
		return
	}

	err = write(file)
	if err != nil {
		if af, ok := file.(Aborter); ok {
			af.Abort()
		} else {
			file.Close()
		}
		return
	}

	err = file.Close()
	if err != nil {
		return
	}

	saved = path.Join(dir, name)
	ex.log().Info("exported", zap.String("path", saved))
	return
}

// Calculation saves a calculation summary and its trace. res may be nil
// when the calculation failed.
func (ex *Exporter) Calculation(summary []string, res *alu.Result) (saved string, err error) {
	ts := Timestamp(ex.now())
	return ex.save(DIR_CALCULATOR, fmt.Sprintf(FILE_CALCULATION, ts), func(w io.Writer) error {
		return WriteCalculation(w, ts, summary, res)
	})
}

// AbacusState saves the reading and bead description of a decimal abacus.
func (ex *Exporter) AbacusState(ab *abacus.Decimal) (saved string, err error) {
	ts := Timestamp(ex.now())
	return ex.save(DIR_ABACUS, fmt.Sprintf(FILE_ABACUS, ts), func(w io.Writer) error {
		return WriteAbacusState(w, ts, ab)
	})
}

// Plot saves a classifier plot.
func (ex *Exporter) Plot(img image.Image) (saved string, err error) {
	ts := Timestamp(ex.now())
	return ex.save(DIR_CLASSIFIER, fmt.Sprintf(FILE_PLOT, ts), func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

// EncodePNG writes an image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// writeLines writes each line of each block in turn.
func writeLines(w io.Writer, blocks ...iter.Seq[string]) (err error) {
	for _, block := range blocks {
		for line := range block {
			_, err = io.WriteString(w, line+"\n")
			if err != nil {
				return
			}
		}
	}
	return
}

// WriteCalculation writes the text of a calculation export.
func WriteCalculation(w io.Writer, ts string, summary []string, res *alu.Result) error {
	head := []string{f("binary calculation result - %v", ts), ""}
	head = append(head, summary...)
	head = append(head, "", f("calculation steps:"))

	if res == nil {
		return writeLines(w, slices.Values(head))
	}

	return writeLines(w, slices.Values(head), res.Lines())
}

// WriteAbacusState writes the text of an abacus state export.
func WriteAbacusState(w io.Writer, ts string, ab *abacus.Decimal) error {
	head := []string{
		f("traditional abacus state - %v", ts),
		"",
		f("current value: %v", strconv.Itoa(ab.Value())),
		"",
		f("bead state per rod:"),
	}
	legend := []string{
		"",
		f("how to read the abacus:"),
		f("- five bead active (%v): worth 5", abacus.BEAD_ACTIVE),
		f("- one bead active (%v): worth 1", abacus.BEAD_ACTIVE),
		f("- inactive (%v): worth 0", abacus.BEAD_INACTIVE),
	}

	return writeLines(w, slices.Values(head), slices.Values(ab.Describe()), slices.Values(legend))
}
