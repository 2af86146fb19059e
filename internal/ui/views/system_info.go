package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	AppDataDir     string
	Currency       string
	AllowOverdraft bool
	Hash           string
	SessionTTL     string
	LogLevel       string
	LogFile        string
}

func RenderSystemInfo(data SystemInfoItem) error {
	overdraft := pterm.Green("Denied")
	if data.AllowOverdraft {
		overdraft = pterm.Yellow("Allowed")
	}

	logFile := data.LogFile
	if logFile == "" {
		logFile = "(stderr)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"Currency", data.Currency},
		{"Overdraft", overdraft},
		{"Password Hash", data.Hash},
		{"Session Lifetime", data.SessionTTL},
		{"Log", fmt.Sprintf("%s -> %s", data.LogLevel, logFile)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
