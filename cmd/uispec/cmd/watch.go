package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/uispec/pkg/errors"
)

var watchDebounce time.Duration

func init() {
	watchCmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Re-validate documents whenever they change",
		Long: `Check the given documents, then watch them and check again after every
save. Rapid successive writes are coalesced. Stop with Ctrl+C.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runWatch,
	}
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "quiet period before re-checking a changed file")
	RegisterCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFiles(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args, watchDebounce)
}

// watchFiles checks every path once, then again after each change until ctx
// is done. Directories are watched instead of files so editors that replace
// files on save keep triggering events.
func watchFiles(ctx context.Context, out, errOut io.Writer, paths []string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", zap.String("dir", dir))
	}

	fmt.Fprintln(out, projectHeader())
	check := func(path string) {
		defer errors.Recover("cmd.watch")
		if err := checkFile(out, path); err != nil {
			fmt.Fprintf(errOut, "FAIL %s: %v\n", path, err)
		}
	}
	for _, p := range paths {
		check(p)
	}

	if debounce < 10*time.Millisecond {
		debounce = 10 * time.Millisecond
	}
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, watched := targets[event.Name]
			if !watched || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("document changed", zap.String("path", path), zap.String("op", event.Op.String()))
			pending[path] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))

		case now := <-ticker.C:
			for path, changed := range pending {
				if now.Sub(changed) < debounce {
					continue
				}
				delete(pending, path)
				if _, err := os.Stat(path); err != nil {
					continue
				}
				check(path)
			}
		}
	}
}
