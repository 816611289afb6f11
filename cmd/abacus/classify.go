package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/classifier"
)

type ErrPoint string

func (err ErrPoint) Error() string {
	return f("'%v' is not a point: expected x,y,label", string(err))
}

// parsePoint reads "x,y,label".
func parsePoint(text string) (x, y float64, label classifier.Label, err error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		err = ErrPoint(text)
		return
	}

	x, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		err = ErrPoint(text)
		return
	}

	y, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		err = ErrPoint(text)
		return
	}

	label, err = classifier.ParseLabel(strings.TrimSpace(fields[2]))
	return
}

func classifyCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "classify <x,y,label>...",
		Short: f("Train a linear classifier on labelled points"),
		Long: f("Points are in canvas coordinates, labelled A or B. " +
			"The weights, bias and decision boundary are printed; --save writes the plot."),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			canvas := a.cfg.Classifier
			if !cmd.Flags().Changed("seed") {
				seed = canvas.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			cl, err := classifier.New(float64(canvas.Width), float64(canvas.Height), seed)
			if err != nil {
				return
			}

			for _, arg := range args {
				x, y, label, err := parsePoint(arg)
				if err != nil {
					return err
				}
				err = cl.SetClass(label)
				if err != nil {
					return err
				}
				err = cl.Add(x, y)
				if err != nil {
					return fmt.Errorf("%v: %w", arg, err)
				}
			}

			cl.Toggle()

			out := cmd.OutOrStdout()
			for _, line := range cl.Legend() {
				fmt.Fprintln(out, line)
			}
			if cl.Trained {
				fmt.Fprintln(out, f("weights: %v, %v bias: %v",
					strconv.FormatFloat(cl.Weights[0], 'f', 4, 64),
					strconv.FormatFloat(cl.Weights[1], 'f', 4, 64),
					strconv.FormatFloat(cl.Bias, 'f', 4, 64)))
				if seg, ok := cl.Line(0); ok {
					fmt.Fprintln(out, f("boundary: (%v, %v) - (%v, %v)",
						strconv.FormatFloat(seg.X1, 'f', 1, 64),
						strconv.FormatFloat(seg.Y1, 'f', 1, 64),
						strconv.FormatFloat(seg.X2, 'f', 1, 64),
						strconv.FormatFloat(seg.Y2, 'f', 1, 64)))
				}
				for _, p := range cl.Points {
					fmt.Fprintln(out, f("(%v, %v) %v: classified %v",
						strconv.FormatFloat(p.X, 'f', -1, 64),
						strconv.FormatFloat(p.Y, 'f', -1, 64),
						p.Label, cl.Classify(p.X, p.Y)))
				}
			}

			if a.save {
				ex, err := a.exporter()
				if err != nil {
					return err
				}
				path, err := ex.Plot(cl.Plot())
				if err != nil {
					return err
				}
				saved(cmd, path)
			}

			return
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, f("seed of the initial weights (0: from the clock)"))

	return cmd
}
