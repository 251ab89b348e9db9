// Package listing obtains the raw GC root listing, either by running the
// root-listing command or by reading a previously saved listing.
package listing

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/logging"
)

// Default listing command
const (
	DefaultCommand = "nix-store"
)

// DefaultArgs are passed to DefaultCommand
var DefaultArgs = []string{"--gc", "--print-roots"}

// Source returns the raw `<path> -> <target>` listing
type Source interface {
	List(ctx context.Context) ([]byte, error)
}

// Command runs an external program and returns its standard output
type Command struct {
	Name string
	Args []string
}

// NewCommand creates a command source
func NewCommand(name string, args ...string) *Command {
	return &Command{Name: name, Args: args}
}

// NewDefaultCommand returns the `nix-store --gc --print-roots` source
func NewDefaultCommand() *Command {
	return NewCommand(DefaultCommand, DefaultArgs...)
}

// String renders the command line
func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// List runs the command. A failure to start or a non-zero exit status is
// returned as ErrListingCommand; nothing it printed is used in that case.
func (c *Command) List(ctx context.Context) ([]byte, error) {
	logger := logging.GetLogger("listing.command")
	logging.LogCommand(c.Name, c.Args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			e := errors.Newf(errors.ErrListingCommand, "%q exited with %s", c.String(), exitErr.ProcessState.String()).
				WithDetail("command", c.String()).
				WithDetail("status", exitErr.ExitCode())
			if msg != "" {
				e.Message += ": " + msg
				e.WithDetail("stderr", msg)
			}
			return nil, e
		}
		return nil, errors.Wrapf(err, errors.ErrListingCommand, "failed to run %q", c.String()).
			WithDetail("command", c.String())
	}

	logger.Debug().Int("bytes", stdout.Len()).Msg("Listing command finished")
	return stdout.Bytes(), nil
}

// File reads a saved listing. Path "-" reads from Stdin.
type File struct {
	Path  string
	Stdin io.Reader
}

// NewFile creates a file source reading "-" from os.Stdin
func NewFile(path string) *File {
	return &File{Path: path, Stdin: os.Stdin}
}

func (f *File) List(ctx context.Context) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if f.Path == "-" {
		data, err = io.ReadAll(f.Stdin)
	} else {
		data, err = os.ReadFile(f.Path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListingRead, "failed to read listing from %s", f.Path).
			WithDetail("path", f.Path)
	}
	return data, nil
}

// Static is a fixed listing, used when the listing is already in memory
type Static []byte

func (s Static) List(ctx context.Context) ([]byte, error) {
	return s, nil
}
