package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/bnema/droidctl/internal/logger"
)

// Runner executes one command in the device shell and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// localRunner runs commands directly, for when droidctl itself runs on the
// device (e.g. from Termux).
type localRunner struct{}

func (localRunner) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("empty command")
	}
	// #nosec G204 - args are built by this package, never taken from a shell line
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	return run(cmd, strings.Join(args, " "))
}

// IsLocal reports whether r runs commands on this machine rather than
// through adb.
func IsLocal(r Runner) bool {
	_, ok := r.(localRunner)
	return ok
}

// adbRunner forwards commands through "adb shell".
type adbRunner struct {
	adb    string
	serial string
}

func (r *adbRunner) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("empty command")
	}

	line := quoteArgs(args)
	adbArgs := make([]string, 0, 4)
	if r.serial != "" {
		adbArgs = append(adbArgs, "-s", r.serial)
	}
	adbArgs = append(adbArgs, "shell", line)

	// #nosec G204 - adb path comes from the config file
	cmd := exec.CommandContext(ctx, r.adb, adbArgs...)
	return run(cmd, line)
}

func run(cmd *exec.Cmd, line string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := logger.With("cmd", line)
	log.Debug("shell")
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			log.Debug("shell failed", "stderr", strings.TrimSpace(stderr.String()))
		}
		return stdout.String(), fmt.Errorf("%w: %s: %v", ErrCommandFailed, line, err)
	}
	return stdout.String(), nil
}

// NewRunner picks how commands reach the device. With no serial and the
// device's getprop on PATH, commands run locally; otherwise they go through
// adb, pinned to serial when one is given.
func NewRunner(adbPath, serial string) (Runner, error) {
	if serial == "" {
		if _, err := exec.LookPath("getprop"); err == nil {
			logger.Debug("Running device commands locally")
			return localRunner{}, nil
		}
	}

	if adbPath == "" {
		adbPath = "adb"
	}
	path, err := exec.LookPath(adbPath)
	if err != nil {
		return nil, fmt.Errorf("adb not found (%s): install platform-tools or set device.adb_path", adbPath)
	}

	logger.Debug("Running device commands through adb", "adb", path, "serial", serial)
	return &adbRunner{adb: path, serial: serial}, nil
}

var safeArg = regexp.MustCompile(`^[\w@%+=:,./-]+$`)

// quoteArgs joins args into one line for the remote sh, single-quoting any
// argument that carries shell metacharacters.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if safeArg.MatchString(arg) {
			quoted[i] = arg
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}
