package cmd

import (
	"os"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var cfgFile string

// appState is filled in by the root command's pre-run hook, once flags are
// parsed and the config file is known.
type appState struct {
	app     *app.App
	cleanup func()
}

func (s *appState) App() *app.App { return s.app }

func (s *appState) close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	state := &appState{}
	rootCmd := NewRootCmd(state)

	err := rootCmd.Execute()
	state.close()

	if err != nil {
		if errhandler.IsInterrupt(err) {
			errhandler.HandleError(err)
		}
		pterm.Error.Println(errhandler.Message(err))
		os.Exit(1)
	}
}

func NewRootCmd(state *appState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a password-protected terminal bank ledger",
		Long: `teller is a password-protected terminal bank ledger.

Create users, open savings and checking accounts, and record deposits and
withdrawals. Every amount is kept in whole cents and every account keeps a
complete transaction record. Nothing is written to disk.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			application, cleanup, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			state.app = application
			state.cleanup = cleanup
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := state.App()
			prompter := terminalPrompter{minPasswordLength: a.Config.Security.MinPasswordLength}
			runner := newShellRunner(a.Service, prompter)
			return runner.Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewInfoCmd(state))

	return rootCmd
}
