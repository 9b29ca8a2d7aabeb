package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/fang"

	"MaskPaint/cmd"
	"MaskPaint/internal/config"
	"MaskPaint/internal/ui"
)

const version = "0.1.0"

func main() {
	root := cmd.NewRootCmd(func(cfg config.Config) error {
		ui.RunApp(app.New(), cfg)
		return nil
	})

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
