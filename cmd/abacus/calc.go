package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/calculator"
	"github.com/ezrec/abacus/operand"
)

func calcCmd(a *app) *cobra.Command {
	var steps bool

	cmd := &cobra.Command{
		Use:   "calc <op> <a> <b>",
		Short: f("Calculate in fixed width binary"),
		Long: f("Apply add, subtract, multiply or divide to two operands. " +
			"Operands are bit strings, prefixed literals (0x1f) or $(expressions)."),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			width := a.cfg.Bits

			op, err := alu.ParseOp(args[0])
			if err != nil {
				return
			}

			var ops [2]alu.BitString
			for n, name := range []string{"a", "b"} {
				ops[n], err = operand.Parse(args[1+n], width)
				if err != nil {
					return &alu.ErrOperand{Name: name, Err: err}
				}
			}

			res, calcErr := alu.Apply(op, ops[0], ops[1], width)

			summary := calculator.Summarize(op, ops[0], ops[1], res, calcErr)
			out := cmd.OutOrStdout()
			for _, line := range summary {
				fmt.Fprintln(out, line)
			}

			if steps && res != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, f("calculation steps:"))
				for line := range res.Lines() {
					fmt.Fprintln(out, line)
				}
			}

			if a.save {
				ex, err := a.exporter()
				if err != nil {
					return err
				}
				path, err := ex.Calculation(summary, res)
				if err != nil {
					return err
				}
				saved(cmd, path)
			}

			return calcErr
		},
	}

	cmd.Flags().BoolVarP(&steps, "steps", "s", false, f("show every step of the calculation"))

	return cmd
}
