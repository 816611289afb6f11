package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ezrec/abacus/config"
	"github.com/ezrec/abacus/export"
	"github.com/ezrec/abacus/theme"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	bits       int
	lang       string
	data       string
	out        string
	verbose    bool
	save       bool

	cfg   *config.Config
	log   *zap.Logger // Built from --verbose unless already set.
	store *theme.BadgerStore
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "abacus",
		Short:         f("Binary calculator, abacus and classifier demos"),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", f("configuration file (default %v)", defaultConfigPath()))
	flags.IntVar(&a.bits, "bits", 0, f("bit width of the binary calculator"))
	flags.StringVar(&a.lang, "lang", "", f("message language, as a BCP 47 tag"))
	flags.StringVar(&a.data, "data", "", f("directory of the theme store"))
	flags.StringVar(&a.out, "out", "", f("directory for exports"))
	flags.BoolVarP(&a.verbose, "verbose", "v", false, f("verbose logging"))
	flags.BoolVar(&a.save, "save", false, f("export the result"))

	root.AddCommand(
		calcCmd(a),
		abacusCmd(a),
		classifyCmd(a),
		themeCmd(a),
		tuiCmd(a),
		serveCmd(a),
	)

	return root
}

func defaultConfigPath() string {
	path, err := config.DefaultPath()
	if err != nil {
		return config.CONFIG_FILE
	}
	return path
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) (err error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("bits") {
		cfg.Bits = a.bits
	}
	if flags.Changed("lang") {
		cfg.Lang = a.lang
	}
	if flags.Changed("data") {
		cfg.Data = a.data
	}
	if flags.Changed("out") {
		cfg.Out = a.out
	}

	err = cfg.Validate()
	if err != nil {
		return
	}
	a.cfg = cfg

	if cfg.Lang != "" {
		translate.SetLanguage(language.Make(cfg.Lang))
	}

	if a.log == nil {
		if a.verbose {
			a.log, err = zap.NewDevelopment()
		} else {
			a.log, err = zap.NewProduction()
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", f("logger"), err)
			return
		}
	}

	a.log.Debug("configured",
		zap.Int("bits", cfg.Bits),
		zap.String("lang", cfg.Lang),
		zap.String("data", cfg.Data),
		zap.String("out", cfg.Out))
	return
}

func (a *app) close() (err error) {
	if a.store != nil {
		err = a.store.Close()
		a.store = nil
	}
	if a.log != nil {
		a.log.Sync()
	}
	return
}

// preference opens the theme store on first use.
func (a *app) preference() (pref *theme.Preference, err error) {
	if a.store == nil {
		a.store, err = theme.OpenStore(theme.StoreConfig{Path: a.cfg.Data, Log: a.log})
		if err != nil {
			return
		}
	}

	pref = &theme.Preference{Store: a.store, Log: a.log}
	return
}

func (a *app) exporter() (ex *export.Exporter, err error) {
	err = os.MkdirAll(a.cfg.Out, 0755)
	if err != nil {
		return
	}

	ex = &export.Exporter{FS: export.DirFS(a.cfg.Out), Log: a.log}
	return
}

// saved reports an export.
func saved(cmd *cobra.Command, path string) {
	fmt.Fprintln(cmd.OutOrStdout(), f("saved %v", path))
}
