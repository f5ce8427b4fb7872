// Package config loads application configuration from environment variables
// into structs, validating refined fields while they are parsed.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once, if present.
//     Additional files can be requested per call with WithEnvFiles.
//   - Fields are populated from `env` tags. refined.Refined, refined.Vector
//     and refined.Bytes fields decode through their TextUnmarshaler, so a
//     variable that violates the field's constraint fails the load.
//   - Each configuration type is parsed once per prefix and cached for the
//     lifetime of the process. Failed loads are not cached.
//
// # Usage
//
//	type ServerConfig struct {
//	    Port    refined.Refined[int, refined.Between[int, constant.Zero[int], MaxPort]] `env:"PORT" envDefault:"8080"`
//	    Workers refined.Refined[int, refined.Positive[int]]                             `env:"WORKERS,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithPrefix("API_"), config.WithLogger(log)); err != nil {
//	    log.Error("invalid configuration", logger.Violations(err))
//	    os.Exit(1)
//	}
//
// # Error Handling
//
// Every parse failure matches ErrParsingConfig. When at least one refined
// field rejected its value the error also matches ErrInvalidValue and
// carries refined.Violations keyed by the Go field name:
//
//	for _, fv := range refined.ExtractViolations(err) {
//	    fmt.Println(fv.Field, fv.Err)
//	}
//
// Use ResetCache between tests that change the environment.
package config
