// Command adminctl performs operator tasks against the admin API's
// document store: creating users, hashing passwords, generating secrets
// and seeding the dashboard.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/app"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

type readyWaiter interface {
	WaitReady(ctx context.Context) error
}

func main() {
	cfg, err := app.LoadConfig()
	errAndDie(err)

	logger := slogx.New(slogx.Config{
		Service: "adminctl",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   "warn",
		Format:  "text",
		Output:  os.Stderr,
	})

	st, err := app.OpenStore(cfg, logger)
	errAndDie(err)
	defer st.Close()

	if w, ok := st.(readyWaiter); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := w.WaitReady(ctx)
		cancel()
		errAndDie(err)
	}

	reg := store.NewRegistry(st, cfg.Collections.Names())
	cli := commandLine{
		registry:   reg,
		users:      cfg.Collections.Users,
		dashboards: &service.DashboardService{Dashboards: reg.Dashboards()},
		out:        os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			log.Printf("error: %s", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
