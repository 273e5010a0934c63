package main

import (
	"fmt"

	"github.com/fwojciec/httpstatus"
	"github.com/fwojciec/httpstatus/fs"
)

// DefaultDataPath is where update writes when no path is configured.
const DefaultDataPath = "status-codes.json"

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	url := c.URL
	if url == "" {
		url = httpstatus.DefaultDatasetURL
	}

	out := c.Out
	if out == "" {
		out = deps.DataPath
	}
	if out == "" {
		out = DefaultDataPath
	}

	data, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		return fmt.Errorf("failed to download dataset: %w", err)
	}

	store := fs.NewDatasetStore(out)
	n, err := store.Save(data)
	if err != nil {
		_ = store.Abort()
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	deps.Logger.Info("dataset updated", "url", url, "path", out, "count", n)
	fmt.Fprintf(deps.Stdout, "Updated %s with %d status codes\n", out, n)
	return nil
}
