package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/consoleargs/foundation/args/router"
	"github.com/msto63/consoleargs/foundation/args/tokenizer"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/i18n"
	"github.com/msto63/consoleargs/foundation/core/log"
	"github.com/msto63/consoleargs/internal/action"
	"github.com/msto63/consoleargs/internal/config"
	"github.com/msto63/consoleargs/internal/history"
	"github.com/msto63/consoleargs/internal/repl"
)

// app bundles what a subcommand needs to route input
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	requestID string
	manager   *router.Manager
	history   *history.Store
	out       io.Writer
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newLogger builds the default logger. Level and format were checked by
// config.Validate.
func newLogger(cfg *config.Config, output io.Writer, requestID string) *log.Logger {
	level, _ := log.ParseLevel(cfg.Settings.LogLevel)
	if verbose {
		level = log.LevelDebug
	}
	format, _ := log.ParseFormat(cfg.Settings.LogFormat)

	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "consoleargs",
	}).WithRequestID(requestID)

	log.SetDefault(logger)
	return logger
}

func newLocale(cfg *config.Config, logger *log.Logger) *i18n.Locale {
	if cfg.Settings.LocalesDir == "" {
		return i18n.Default()
	}

	m, err := i18n.New(i18n.Options{
		DefaultLocale: cfg.Settings.Locale,
		LocalesDir:    cfg.Settings.LocalesDir,
	})
	if err != nil {
		logger.WarnWithErr("catalogs not loaded, using built-in messages", err)
		return i18n.Default()
	}

	if localeFlag != "" {
		if err := m.SetLocale(localeFlag); err != nil {
			logger.WarnWithErr("locale not available", err, log.Fields{"locale": localeFlag})
		}
	}
	return i18n.FromManager(m)
}

// newApp loads the definitions and builds the router. Interactive apps
// capture script output instead of streaming it to the command's writers.
func newApp(cmd *cobra.Command, interactive bool) (*app, error) {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	logger := newLogger(cfg, cmd.ErrOrStderr(), requestID)
	locale := newLocale(cfg, logger)

	opts := action.Options{
		Timeout: cfg.Settings.ScriptTimeout.Duration,
		Context: ctx,
		Logger:  logger,
	}
	if !interactive {
		opts.Stdout = cmd.OutOrStdout()
		opts.Stderr = cmd.ErrOrStderr()
	}

	manager, err := action.NewResolver(opts).Build(cfg, locale)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, requestID: requestID, manager: manager, out: cmd.OutOrStdout()}

	if cfg.Settings.History != "" {
		store, err := history.Open(cfg.Settings.History)
		if err != nil {
			logger.WarnWithErr("history disabled", err, log.Fields{"path": cfg.Settings.History})
		} else {
			a.history = store
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.history != nil {
		a.history.Close()
	}
}

// invoke routes tokens, prints the result and records the invocation
func (a *app) invoke(ctx context.Context, input string, tokens []string) error {
	result, err := a.manager.ExecuteArgs(tokens)
	a.record(ctx, input, tokens, err)
	if err != nil {
		var coded *mdwerror.Error
		if errors.As(err, &coded) {
			coded.WithRequestID(a.requestID)
		}
		return err
	}

	if text := repl.Format(result); text != "" {
		fmt.Fprintln(a.out, text)
	}
	return nil
}

func (a *app) record(ctx context.Context, input string, tokens []string, err error) {
	if a.history == nil {
		return
	}

	entry := &history.Entry{Input: input, Success: err == nil}
	if res, rerr := a.manager.Resolve(tokens); rerr == nil {
		entry.Command = res.Command.Name()
	}
	if err != nil {
		entry.ErrorCode = string(mdwerror.GetCode(err))
	}

	if herr := a.history.Record(ctx, entry); herr != nil {
		a.logger.WarnWithErr("invocation not recorded", herr)
	}
}

// recordLine records a line executed by the interactive prompt
func (a *app) recordLine(ctx context.Context) func(string, interface{}, error) {
	return func(input string, _ interface{}, err error) {
		a.record(ctx, input, tokenizer.Tokenize(input), err)
	}
}
