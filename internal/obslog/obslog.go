// Package obslog constructs the single *zap.SugaredLogger shared by
// cmd/udecctl and any package that wants structured progress output
// without importing zap directly.
package obslog

import "go.uber.org/zap"

// New builds a development-mode logger (human-readable console output,
// no sampling) and returns its sugared form. The CLI is a short-lived
// batch tool, not a long-running service, so zap's production JSON
// encoder and sampling would only add noise.
func New() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
