package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quarry-build/quarry/pkg/diag"
	"github.com/quarry-build/quarry/pkg/manifest"
	"github.com/quarry-build/quarry/pkg/model"
	"github.com/quarry-build/quarry/pkg/resolver"
	"github.com/quarry-build/quarry/pkg/telemetry"
	"github.com/quarry-build/quarry/pkg/vfs"
)

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve manifests into the generation graph",
		Long: `Resolve declarative manifests into the fully resolved graph the
project-file generator consumes.

Resolution anchors every manifest-relative path at the manifest's
directory, expands glob patterns against the filesystem, validates
mandatory assets, and reports non-fatal conditions (such as a glob
matching nothing) as warnings.`,
	}

	cmd.AddCommand(newResolveProjectCommand())
	cmd.AddCommand(newResolveWorkspaceCommand())

	return cmd
}

func newResolveProjectCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "project [dir]",
		Short: "Resolve a project manifest",
		Long: `Resolve the Project.yml in the given directory and print the
resolved project, including the synthesized manifest target appended
after the declared targets.`,
		Example: `  # Resolve the project in the current directory
  quarry resolve project

  # Resolve a specific project and print JSON
  quarry resolve project ./App --json

  # Re-resolve whenever the manifest changes
  quarry resolve project ./App --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDir(args)
			if err != nil {
				return err
			}

			run := func() error {
				collector := diag.NewCollector()
				project, err := newResolver(collector).LoadProject(dir)
				if err != nil {
					return err
				}
				reportWarnings(collector)
				return printResolved(project)
			}

			if watch {
				return watchAndResolve(cmd.Context(), dir, run)
			}
			return run()
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-resolve on manifest changes")

	return cmd
}

func newResolveWorkspaceCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "workspace [dir]",
		Short: "Resolve a workspace manifest",
		Long: `Resolve the Workspace.yml in the given directory and print the
resolved workspace together with each member project.

Workspace project patterns are expanded against the filesystem; only
directories confirmed to contain a project manifest become members, and
each member is then resolved as a whole project.`,
		Example: `  # Resolve the workspace in the current directory
  quarry resolve workspace

  # Resolve a specific workspace and print JSON
  quarry resolve workspace ./Monorepo --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDir(args)
			if err != nil {
				return err
			}

			run := func() error {
				collector := diag.NewCollector()
				r := newResolver(collector)

				workspace, err := r.LoadWorkspace(dir)
				if err != nil {
					return err
				}

				// Workspace members are re-resolved individually as
				// whole projects, manifest target included.
				projects := make([]model.Project, 0, len(workspace.Projects))
				for _, projectDir := range workspace.Projects {
					project, err := r.LoadProject(projectDir)
					if err != nil {
						return err
					}
					projects = append(projects, project)
				}

				reportWarnings(collector)
				return printResolved(resolvedWorkspace{
					Workspace: workspace,
					Projects:  projects,
				})
			}

			if watch {
				return watchAndResolve(cmd.Context(), dir, run)
			}
			return run()
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-resolve on manifest changes")

	return cmd
}

// resolvedWorkspace is the printed form of a resolved workspace: the
// workspace itself plus each member resolved as a whole project.
type resolvedWorkspace struct {
	Workspace model.Workspace `json:"workspace" yaml:"workspace"`
	Projects  []model.Project `json:"projects" yaml:"projects"`
}

func newResolver(sink diag.Sink) *resolver.Resolver {
	fs := vfs.NewOSFS()

	opts := []resolver.Option{resolver.WithSink(sink)}

	logCfg := telemetry.DefaultLoggingConfig()
	if verbose {
		logCfg.Level = "debug"
	}
	if tlog, err := telemetry.NewLogger(logCfg); err == nil {
		opts = append(opts, resolver.WithLogger(tlog))
	}

	return resolver.New(
		manifest.NewYAMLSource(fs),
		manifest.NewFSClassifier(fs),
		fs,
		opts...,
	)
}

func targetDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", dir, err)
	}
	return abs, nil
}

// reportWarnings replays collected warnings through the global logger
// once resolution is done, so they land after any fatal error output.
func reportWarnings(collector *diag.Collector) {
	sink := diag.NewLogSink(log.Logger)
	for _, w := range collector.Warnings() {
		sink.Warn(w)
	}
}

func printResolved(v interface{}) error {
	var out []byte
	var err error
	if jsonOutput {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode resolved graph: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// watchAndResolve runs once, then re-runs whenever a manifest file in
// dir changes, debounced so editor save bursts trigger one resolution.
func watchAndResolve(ctx context.Context, dir string, run func() error) error {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("Resolution failed")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	log.Info().Str("dir", dir).Msg("Watching for manifest changes")

	// Reruns are signalled back into the select loop so only one
	// resolution runs at a time; the timer goroutine never calls run.
	rerun := make(chan struct{}, 1)
	var rerunTimer *time.Timer
	rerunDelay := 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-rerun:
			if err := run(); err != nil {
				log.Error().Err(err).Msg("Resolution failed")
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".yml") && !strings.HasSuffix(event.Name, ".yaml") {
				continue
			}

			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Manifest changed")

			if rerunTimer != nil {
				rerunTimer.Stop()
			}
			rerunTimer = time.AfterFunc(rerunDelay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")
		}
	}
}
