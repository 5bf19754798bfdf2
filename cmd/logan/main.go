package main

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/logan/internal/infrastructure/cli"
	"github.com/doeshing/logan/internal/infrastructure/config"
)

func main() {
	ctx := context.Background()

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	os.Exit(cli.Execute(ctx, cli.Options{Settings: settings}))
}
