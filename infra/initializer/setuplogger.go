package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

func levelStyle(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().SetString(icon).Bold(true).Padding(0, 1).Foreground(color)
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = levelStyle("❌", errorColor)
	styles.Levels[log.WarnLevel] = levelStyle("⚠️", warnColor)
	styles.Levels[log.InfoLevel] = levelStyle("ℹ️", infoColor)
	styles.Levels[log.DebugLevel] = levelStyle("🐛", debugColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":      errorColor,
		"warn":       warnColor,
		"request_id": infoColor,
		"locator":    infoColor,
		"component":  debugColor,
		"prefix":     debugColor,
		"caller":     debugColor,
		"time":       debugColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// SetupLogger builds the process logger, installs it as the slog default
// and returns it.
func SetupLogger(cfg *config.Log) *slog.Logger {
	return setupLogger(os.Stdout, cfg)
}

func setupLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(logStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
