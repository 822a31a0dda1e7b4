package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
)

// seedDashboard replaces the stored dashboard aggregate with the file's
// contents.
func (cli *commandLine) seedDashboard(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var d domain.Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cli.dashboards.Put(context.Background(), d); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "dashboard seeded from %s\n", path)
	return nil
}
