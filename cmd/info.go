package cmd

import (
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the effective configuration: config file, currency, overdraft policy, password hashing and logging.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: state.App().Config,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	sessionTTL := "Until logout"
	if r.cfg.Security.SessionTTL > 0 {
		sessionTTL = r.cfg.Security.SessionTTL.String()
	}

	logFile, _ := config.ExpandPath(r.cfg.Log.File)

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		AppDataDir:     getAppDataDirOrUnknown(),
		Currency:       r.cfg.Bank.Currency,
		AllowOverdraft: r.cfg.Bank.AllowOverdraft,
		Hash:           r.cfg.Security.Hash,
		SessionTTL:     sessionTTL,
		LogLevel:       r.cfg.Log.Level,
		LogFile:        logFile,
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
