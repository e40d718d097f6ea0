package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/internal/app"
	"github.com/cnmi-csc/busybee/internal/usecase/minutes"
	"github.com/cnmi-csc/busybee/pkg/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	var (
		once    sync.Once
		built   *app.App
		initErr error
	)
	service := func(ctx context.Context) (minutes.Service, error) {
		once.Do(func() {
			cfg, err := config.Load()
			if err != nil {
				initErr = err
				return
			}
			logger := zap.NewNop()
			if os.Getenv("BUSYBEE_DEBUG") != "" {
				if l, err := zap.NewDevelopment(); err == nil {
					logger = l
				}
			}
			built, initErr = app.Build(ctx, cfg, logger)
		})
		if initErr != nil {
			return nil, initErr
		}
		return built.Service, nil
	}

	err := newCLIApp(service, os.Stdin, os.Stdout).Run(os.Args)
	if built != nil {
		built.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
