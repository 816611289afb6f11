package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/calculator"
	"github.com/ezrec/abacus/tui"
)

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: f("Interactive binary abacus calculator"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			calc, err := calculator.New(a.cfg.Bits, a.log)
			if err != nil {
				return
			}

			pref, err := a.preference()
			if err != nil {
				return
			}

			ex, err := a.exporter()
			if err != nil {
				return
			}

			return tui.Run(tui.New(calc, pref, ex, a.log))
		},
	}
}
