package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ui := tui.New(os.Stdout, os.Stdin)
	root := newRootCmd(ui, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := root.ExecuteContext(ctx); err != nil {
		ui.Error(err)
		stop()
		os.Exit(1)
	}
}
