// Package logging sets up the structured logger shared by the inventory
// updater, the day runner and the texttest command.
//
// Loggers are logr.Logger values backed by zap through controller-runtime's
// log/zap helpers. Callers pass the logger down explicitly or through the
// context (log.IntoContext / log.FromContext); verbosity is selected with
// logger.V(DEBUG) and logger.V(TRACE).
package logging

import (
	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels used with logr's V().
const (
	// DEBUG reports one summary line per simulated day.
	DEBUG = 1
	// TRACE reports every per-item transition.
	TRACE = 2
)

// NewLogger builds a zap-backed logr.Logger from the given options and installs
// it as the controller-runtime global logger. A nil opts yields a production
// logger at info level.
func NewLogger(opts *zap.Options) logr.Logger {
	if opts == nil {
		opts = &zap.Options{}
	}
	logger := zap.New(zap.UseFlagOptions(opts))
	log.SetLogger(logger)
	return logger
}

// LevelFor maps a logr verbosity onto the zap level that enables it.
func LevelFor(verbosity int) zapcore.LevelEnabler {
	if verbosity < 0 {
		verbosity = 0
	}
	return uberzap.NewAtomicLevelAt(zapcore.Level(-verbosity))
}

// NewTestLogger installs a development logger that writes to the Ginkgo
// writer at TRACE verbosity, so failing specs show the full transition log.
func NewTestLogger() logr.Logger {
	logger := zap.New(
		zap.WriteTo(ginkgo.GinkgoWriter),
		zap.UseDevMode(true),
		zap.Level(LevelFor(TRACE)),
	)
	log.SetLogger(logger)
	return logger
}
