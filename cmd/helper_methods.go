package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/gistenv/internal/configs"
	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/workflows"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadConfig resolves configuration from the environment, .gistenv and the
// user config.
func loadConfig() (*configs.Config, error) {
	cfg, err := configs.Load(configs.LoadOptions{})
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Gist ID from %s, token from %s, encryption key from %s",
		cfg.Sources.GistID, cfg.Sources.GitHubToken, cfg.Sources.EncryptionKey)
	if cfg.DotenvPath != "" {
		Logger.Debugf("Read settings from %s", cfg.DotenvPath)
	}
	return cfg, nil
}

// newService loads configuration and builds the workflow service.
func newService() (*workflows.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return workflows.NewService(cfg, Logger)
}

// reportedError marks an error whose message has already been shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// fail puts the user-facing message for err on the spinner and returns an
// error that exits non-zero without being printed twice.
func fail(s *spinner.Spinner, err error) error {
	Logger.Errorf("%v", err)
	s.FinalMSG = formatError(err)
	return &reportedError{err: err}
}

// formatError formats a workflow error for display to the user.
func formatError(err error) string {
	cross := ui.Error.Sprint("✗") + " "
	arrow := ui.Info.Sprint("→") + " "

	switch {
	case errors.Is(err, kerrors.ErrGistIDNotSet):
		return cross + "No gist ID configured\n" +
			arrow + "Set " + ui.Code.Sprint("GISTENV_GIST_ID") + " or run " + ui.Code.Sprint("gistenv config init")

	case errors.Is(err, kerrors.ErrGistNotFound):
		return cross + "Gist not found\n" +
			arrow + "Check the gist ID and that your token can read it"

	case errors.Is(err, kerrors.ErrUnauthorized):
		return cross + "GitHub rejected the request\n" +
			arrow + "Set " + ui.Code.Sprint("GISTENV_GITHUB_TOKEN") + " to a token with the " + ui.Code.Sprint("gist") + " scope"

	case errors.Is(err, kerrors.ErrNoEnvFile):
		return cross + "The gist has no " + ui.Path.Sprint(".env") + " file\n" +
			arrow + "Add a file named " + ui.Path.Sprint(".env") + " or ending in " + ui.Path.Sprint(".env") + ", or run " + ui.Code.Sprint("gistenv push")

	case errors.Is(err, kerrors.ErrEncryptionKeyNotSet):
		return cross + "No usable encryption key\n" +
			arrow + "Set " + ui.Code.Sprint("GISTENV_ENCRYPTION_KEY") + " to at least 16 characters"

	case errors.Is(err, kerrors.ErrSectionNotFound),
		errors.Is(err, kerrors.ErrKeyNotFound),
		errors.Is(err, kerrors.ErrInvalidMode),
		errors.Is(err, kerrors.ErrInvalidSectionName),
		errors.Is(err, kerrors.ErrInvalidDateFormat),
		errors.Is(err, kerrors.ErrInvalidChoice):
		return cross + capitalize(err.Error())

	case errors.Is(err, kerrors.ErrNotInteractive):
		return cross + capitalize(err.Error()) + "\n" +
			arrow + "Pass the names as arguments, see " + ui.Code.Sprint("--help")

	case errors.Is(err, kerrors.ErrRemoteRequest):
		return cross + "GitHub API request failed: " + err.Error()

	default:
		return cross + "Error: " + err.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
