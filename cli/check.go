package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/zzptools/grootboek/ledger"
	"github.com/zzptools/grootboek/output"
)

// CheckCmd verifies that a ledger file parses and that every transaction
// balances to zero.
type CheckCmd struct {
	File FileOrStdin `arg:"" help:"Ledger file to check, or - for stdin."`

	Watch bool `help:"Keep running and re-check whenever the file changes."`
}

func (c *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if c.Watch {
		if c.File.Filename == "<stdin>" {
			return fmt.Errorf("--watch requires a file, not stdin")
		}
		return c.watch(ctx)
	}

	return globals.withTelemetry(ctx.Stderr, func(runCtx context.Context) error {
		return c.checkOnce(ctx, runCtx)
	})
}

// checkOnce loads the file and reports parse errors and unbalanced
// transactions. Any failure is rendered to stderr and returned as a short
// error for the non-zero exit.
func (c *CheckCmd) checkOnce(ctx *kong.Context, runCtx context.Context) error {
	result, err := c.File.Load(runCtx)
	if err != nil {
		return renderLoadError(ctx, result, err)
	}

	unbalanced := ledger.FindUnbalanced(result.Transactions)
	if len(unbalanced) == 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("%s: %d transactions, all balanced", c.File.Filename, len(result.Transactions)))
		return nil
	}

	styles := output.NewStyles(ctx.Stderr)
	for _, u := range unbalanced {
		_, _ = fmt.Fprintf(ctx.Stderr, "%s %s %s (off by %s)\n",
			errorStyle.Render(errorSymbol),
			styles.Date(u.Transaction.Date.String()),
			u.Transaction.Description,
			styles.Cents(u.Residual),
		)
	}
	_, _ = fmt.Fprintln(ctx.Stderr)
	printError(ctx.Stderr, fmt.Sprintf("%d unbalanced transaction(s) found", len(unbalanced)))

	return fmt.Errorf("check failed")
}

// watch re-runs the check whenever the file changes, until interrupted.
func (c *CheckCmd) watch(ctx *kong.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself; editors that save
	// atomically replace the file and would drop a direct watch.
	dir := filepath.Dir(c.File.Filename)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	target, err := filepath.Abs(c.File.Filename)
	if err != nil {
		return err
	}

	runCheck := func() {
		_, _ = fmt.Fprintf(ctx.Stdout, "\n%s checking %s\n", time.Now().Format("15:04:05"), c.File.Filename)
		if err := c.checkOnce(ctx, watchCtx); err != nil {
			printError(ctx.Stderr, err.Error())
		}
	}
	runCheck()

	// Editors often write files in multiple steps; debounce the events.
	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-watchCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, runCheck)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}
