// Package process is the boot layer shared by the platform binaries:
// cobra command execution with TRACD_* env binding, zap logger setup,
// signal handling, and the process exit code contract.
package process

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tracd.io/tracd/pkg/config"
	"tracd.io/tracd/pkg/rpcstatus"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitStartup = 1
	ExitConfig  = 2
	ExitRuntime = 3
	ExitData    = 4
)

// ExitError carries an explicit exit code out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// Exit wraps err with an explicit process exit code.
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode classifies an error into the process exit contract. Config
// errors are detected by class; data corruption by status code; anything
// else that happens after startup is a runtime error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if config.Error.Has(err) {
		return ExitConfig
	}
	if rpcstatus.Code(err) == rpcstatus.DataLoss {
		return ExitData
	}
	return ExitRuntime
}

// Execute runs the root command with TRACD_* env binding and exits the
// process with the classified code.
func Execute(cmd *cobra.Command) {
	viper.SetEnvPrefix("tracd")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(cmd.PersistentFlags())

	if err := cmd.Execute(); err != nil {
		os.Exit(ExitCode(err))
	}
}

// Ctx returns a context cancelled by SIGINT or SIGTERM.
func Ctx() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
