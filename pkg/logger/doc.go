// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers for reporting constraint violations.
//
// New selects a text or JSON handler, applies the level and any static
// attributes, and optionally installs a ReplaceAttr hook that redacts the
// rejected value of every logged violation. Environment presets
// (WithDevelopment, WithStaging, WithProduction, WithEnvironment) bundle the
// usual choices per deployment.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment(os.Getenv("APP_ENV"), "billing"))
//	logger.SetAsDefault(log)
//
//	if _, err := refined.New[Port](p); err != nil {
//	    log.Warn("rejected port", logger.Violation(err))
//	}
//
// # Attributes
//
// Violation renders a *refined.Violation and its cause chain as nested
// groups. Violations does the same for every field of an error returned by
// refined.Apply. Error and Errors produce attributes only for non-nil
// errors, so they can be passed without a nil check:
//
//	log.Info("loaded", logger.Error(err))
package logger
