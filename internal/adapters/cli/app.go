package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/bootstrap"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

// session is one command's view of the wired application
type session struct {
	app   *bootstrap.App
	prefs *config.UserConfig
	ctx   context.Context
}

// openSession loads configuration and preferences and wires the application.
// withDB opens the database for commands that persist data.
func openSession(cmd *cobra.Command, withDB bool) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	prefs := loadPreferences()

	opts := bootstrap.Options{WithDatabase: withDB}
	if unlockedOnly {
		if len(prefs.UnlockedMixers) == 0 {
			return nil, fmt.Errorf("--unlocked-only needs mixers saved with 'schedule1 config set-unlocked'")
		}
		opts.UnlockedMixers = prefs.UnlockedMixers
	}

	app, err := bootstrap.New(cfg, opts)
	if err != nil {
		return nil, err
	}

	return &session{
		app:   app,
		prefs: prefs,
		ctx:   app.Context(cmd.Context()),
	}, nil
}

func (s *session) close() {
	s.app.Close()
}

func (s *session) send(request common.Request) (common.Response, error) {
	return s.app.Mediator.Send(s.ctx, request)
}

// product returns the first argument, falling back to the saved default product
func (s *session) product(args []string) (string, []string, error) {
	if len(args) > 0 {
		return args[0], args[1:], nil
	}
	if s.prefs.DefaultProduct != "" {
		return s.prefs.DefaultProduct, nil, nil
	}
	return "", nil, fmt.Errorf("no product given and no default set (use 'schedule1 config set-product')")
}

// loadPreferences never fails; a missing or unreadable file means no preferences
func loadPreferences() *config.UserConfig {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return &config.UserConfig{}
	}
	prefs, err := handler.Load()
	if err != nil {
		return &config.UserConfig{}
	}
	return prefs
}

// splitList parses "a, b,c" into trimmed non-empty items
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
