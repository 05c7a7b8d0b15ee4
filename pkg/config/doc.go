// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//   - LoadEnv / MustLoadEnv read one or more .env files (./.env when no path is given).
//   - Load / MustLoad parse the environment into any struct with `env` tags.
//   - Each configuration type is parsed once and cached for the process lifetime.
//   - ResetCache and ForceReloadConfig drop cached values, mostly for tests.
//
// # Usage
//
// The geo validation policy and the CLI settings are both plain tagged structs:
//
//	if err := config.LoadEnv("geocalc.env"); err != nil {
//		return err
//	}
//
//	var policy geo.Policy
//	if err := config.Load(&policy); err != nil {
//		return err
//	}
//
// Calling Load again for geo.Policy returns the cached copy without re-reading
// the environment.
//
// # Error Handling
//
// Sentinel errors can be matched with errors.Is:
//
//   - ErrParsingConfig: env.Parse failed (joined with the underlying error).
//   - ErrNilPointer: a nil pointer was passed to Load.
//
// A failed parse is not cached; the next Load for that type parses again.
package config
