package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/abacus"
)

func abacusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abacus",
		Short: f("Show numbers on the seven rod decimal abacus"),
	}

	decimal := func(arg string) (ab *abacus.Decimal, err error) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			err = abacus.ErrRange
			return
		}

		ab = abacus.NewDecimal()
		err = ab.Set(n)
		return
	}

	save := func(cmd *cobra.Command, ab *abacus.Decimal) (err error) {
		if !a.save {
			return
		}

		ex, err := a.exporter()
		if err != nil {
			return
		}

		path, err := ex.AbacusState(ab)
		if err != nil {
			return
		}

		saved(cmd, path)
		return
	}

	set := &cobra.Command{
		Use:   "set <n>",
		Short: f("Draw the abacus showing n"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ab, err := decimal(args[0])
			if err != nil {
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), ab.String())
			fmt.Fprintln(cmd.OutOrStdout(), f("current value: %v", strconv.Itoa(ab.Value())))
			return save(cmd, ab)
		},
	}

	describe := &cobra.Command{
		Use:   "describe <n>",
		Short: f("Describe the beads of every rod showing n"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ab, err := decimal(args[0])
			if err != nil {
				return
			}

			for _, line := range ab.Describe() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return save(cmd, ab)
		},
	}

	cmd.AddCommand(set, describe)
	return cmd
}
