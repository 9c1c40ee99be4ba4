// Package launch starts an application's configured command.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

var (
	ErrNoSpawn       = errors.New("no spawn or spawn-sh command specified")
	ErrEmptySpawn    = errors.New("spawn command is empty")
	ErrSpawnConflict = errors.New("both spawn and spawn-sh specified")
	ErrStart         = errors.New("failed to spawn process")
	ErrWait          = errors.New("failed to wait for spawned process")
)

// Command is a resolved program and its arguments.
type Command struct {
	Path string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Runner starts an application and returns once it has exited.
type Runner interface {
	Run(ctx context.Context, app *model.Application) error
}

// Resolve turns the application's spawn setting into a command. An argv
// has a leading ~ in its program expanded to the home directory; a shell
// string runs through sh -c.
func Resolve(app *model.Application) (Command, error) {
	switch {
	case app.Spawn != nil && app.SpawnSh != nil:
		return Command{}, fmt.Errorf("application %s: %w", app.Name, ErrSpawnConflict)
	case app.Spawn != nil:
		if len(app.Spawn) == 0 || app.Spawn[0] == "" {
			return Command{}, fmt.Errorf("application %s: %w", app.Name, ErrEmptySpawn)
		}
		return Command{
			Path: ExpandHome(app.Spawn[0]),
			Args: append([]string(nil), app.Spawn[1:]...),
		}, nil
	case app.SpawnSh != nil:
		return Command{Path: "sh", Args: []string{"-c", *app.SpawnSh}}, nil
	default:
		return Command{}, fmt.Errorf("application %s: %w", app.Name, ErrNoSpawn)
	}
}

// ExpandHome replaces a leading ~ path component with the user's home
// directory. Paths such as ~user/bin are left alone.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// Launcher runs applications with no standard streams attached.
type Launcher struct {
	log *logger.Logger
}

// New returns a launcher.
func New(log *logger.Logger) *Launcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Launcher{log: log}
}

// Run starts the application and blocks until the process exits. A non-zero
// exit status is logged, not returned.
func (l *Launcher) Run(ctx context.Context, app *model.Application) error {
	command, err := Resolve(app)
	if err != nil {
		return err
	}

	// Nil Stdin/Stdout/Stderr are connected to the null device.
	cmd := exec.CommandContext(ctx, command.Path, command.Args...)
	l.log.Info("launching application", "app", app.Name, "command", command.String())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrStart, command.Path, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.log.Warn("application exited with non-zero status", "app", app.Name, "code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("%w: %w", ErrWait, err)
	}
	l.log.Debug("application exited", "app", app.Name)
	return nil
}

var _ Runner = (*Launcher)(nil)
