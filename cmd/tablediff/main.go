package main

import (
	"context"
	"os"

	"github.com/qri-io/tablediff/internal/command"
	"github.com/qri-io/tablediff/internal/log"
)

func main() {
	os.Exit(realMain(context.Background(), os.Args))
}

func realMain(ctx context.Context, args []string) int {
	log.InitLogger()
	app := command.InitApp(os.Stdout, os.Stderr)
	return command.ExitCode(app.Run(ctx, args), os.Stderr)
}
