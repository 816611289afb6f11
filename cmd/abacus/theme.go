package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/theme"
)

func themeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [get|toggle|set <theme>]",
		Short:     f("Show or change the saved theme"),
		Args:      cobra.RangeArgs(0, 2),
		ValidArgs: []string{"get", "toggle", "set"},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			pref, err := a.preference()
			if err != nil {
				return
			}

			action := "get"
			if len(args) > 0 {
				action = args[0]
			}

			var t theme.Theme
			switch action {
			case "get":
				if len(args) > 1 {
					return cobra.ExactArgs(1)(cmd, args)
				}
				t, err = pref.Load()
			case "toggle":
				if len(args) > 1 {
					return cobra.ExactArgs(1)(cmd, args)
				}
				t, err = pref.Toggle()
			case "set":
				if len(args) != 2 {
					return cobra.ExactArgs(2)(cmd, args)
				}
				t, err = theme.Parse(args[1])
				if err == nil {
					err = pref.Set(t)
				}
			default:
				err = fmt.Errorf("%v: %q", f("unknown action"), action)
			}
			if err != nil {
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return
		},
	}

	return cmd
}
