package ports

import "context"

// Runner is the generic "run external tool, capture stdout, report exit
// status" primitive every probe adapter is built on.
//
// Run blocks until the subprocess exits and returns its standard output.
// A missing executable yields domain.ErrToolMissing; a non-zero exit
// yields domain.ErrToolExecutionFailed carrying the captured stderr.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}
