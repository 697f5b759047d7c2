package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/webzeppelin/rusty-sharutils/cli"
	"github.com/webzeppelin/rusty-sharutils/log"
)

func main() {
	err := cli.Run(context.Background(), cli.UUEncode(), os.Args...)
	if err == nil {
		return
	}

	// Reporting already happened inside cli; decide the exit code only.
	var xerr *cli.ExitError
	if errors.As(err, &xerr) {
		os.Exit(xerr.Code)
	}

	log.Error("run failed", slog.Any("error", err))
	os.Exit(1)
}
