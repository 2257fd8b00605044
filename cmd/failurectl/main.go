package main

import (
	"context"
	"os"

	"pkt.systems/pslog"

	"github.com/xgx-io/xgx-failure/failurelog"
)

func main() {
	os.Exit(submain(context.Background()))
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(ctx,
		pslog.WithEnvPrefix("FAILURECTL_LOG_"),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured, MinLevel: pslog.InfoLevel}),
		pslog.WithEnvWriter(os.Stderr),
	).With("app", "failurectl")
	cmd := newRootCommand(logger)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", failurelog.ErrorFields(err)...)
		return 1
	}
	return 0
}
