// Package subprocess launches child processes whose standard streams
// satisfy the vio capabilities: a piped stdin is a [vio.Writable] and
// piped stdout/stderr are [vio.Readable], so child I/O composes with
// everything else in the library.
//
//	child := subprocess.New("sort").
//	    Stdin(subprocess.Piped).
//	    Stdout(subprocess.Piped).
//	    Spawn().Value()
//
//	vio.WriteAll(child.Stdin().Value(), []byte("b\na\n"))
//	child.CloseStdin()
//	out := vio.ReadAll(child.Stdout().Value()).Value()
//	status := child.Wait().Value()
//
// Every fallible step returns a [result.Result] carrying a
// [vio.Error]; a non-zero exit is not an error but part of the
// [ExitStatus].
package subprocess

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/Noelware/violet-go/option"
	"github.com/Noelware/violet-go/result"
	"github.com/Noelware/violet-go/vio"
)

// Stdio is the disposition of one standard stream of the child.
type Stdio uint8

const (
	// Inherit connects the stream to the parent's own stream.
	Inherit Stdio = iota
	// Piped connects the stream to a pipe owned by the parent.
	Piped
	// Null connects the stream to the null device.
	Null
)

// Command describes a child process to spawn. The builder methods
// mutate and return the same Command for chaining.
type Command struct {
	program string
	args    []string
	env     []string
	dir     string
	stdin   Stdio
	stdout  Stdio
	stderr  Stdio
}

// New returns a Command running program with args. All three standard
// streams default to [Inherit].
func New(program string, args ...string) *Command {
	return &Command{program: program, args: args}
}

// Args appends more arguments.
func (c *Command) Args(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// Env sets the child's environment to exactly the given "key=value"
// entries, replacing the inherited one.
func (c *Command) Env(env ...string) *Command {
	c.env = env
	return c
}

// Dir sets the child's working directory.
func (c *Command) Dir(dir string) *Command {
	c.dir = dir
	return c
}

// Stdin sets the stdin disposition.
func (c *Command) Stdin(d Stdio) *Command {
	c.stdin = d
	return c
}

// Stdout sets the stdout disposition.
func (c *Command) Stdout(d Stdio) *Command {
	c.stdout = d
	return c
}

// Stderr sets the stderr disposition.
func (c *Command) Stderr(d Stdio) *Command {
	c.stderr = d
	return c
}

// Spawn starts the child process. The returned [Child] owns the pipe
// ends for every stream configured as [Piped].
func (c *Command) Spawn() result.Result[*Child, *vio.Error] {
	cmd := exec.Command(c.program, c.args...)
	cmd.Env = c.env
	cmd.Dir = c.dir

	child := &Child{cmd: cmd}

	switch c.stdin {
	case Inherit:
		cmd.Stdin = os.Stdin
	case Piped:
		pipe, err := cmd.StdinPipe()
		if err != nil {
			return result.Err[*Child](vio.FromOS(err))
		}
		child.stdinCloser = pipe
		child.stdin = option.Some(vio.FromWriter(pipe))
	case Null:
		// exec treats a nil Stdin as the null device.
	}

	switch c.stdout {
	case Inherit:
		cmd.Stdout = os.Stdout
	case Piped:
		pipe, err := cmd.StdoutPipe()
		if err != nil {
			return result.Err[*Child](vio.FromOS(err))
		}
		child.stdout = option.Some(vio.FromReader(pipe))
	case Null:
	}

	switch c.stderr {
	case Inherit:
		cmd.Stderr = os.Stderr
	case Piped:
		pipe, err := cmd.StderrPipe()
		if err != nil {
			return result.Err[*Child](vio.FromOS(err))
		}
		child.stderr = option.Some(vio.FromReader(pipe))
	case Null:
	}

	if err := cmd.Start(); err != nil {
		return result.Err[*Child](vio.FromOS(err))
	}
	return result.Ok[*Child, *vio.Error](child)
}

// Output spawns the child with stdout piped, drains it, and waits. It
// fails when spawning fails, when reading fails, or when the child
// exits unsuccessfully.
func (c *Command) Output() result.Result[[]byte, *vio.Error] {
	child, e, ok := c.Stdout(Piped).Spawn().Get()
	if !ok {
		return result.Err[[]byte](e)
	}
	out, e, ok := vio.ReadAll(child.Stdout().Value()).Get()
	if !ok {
		child.Wait()
		return result.Err[[]byte](e)
	}
	status, e, ok := child.Wait().Get()
	if !ok {
		return result.Err[[]byte](e)
	}
	if !status.Success() {
		return result.Err[[]byte](vio.Newf(vio.KindOther, "%s exited with %s", c.program, status))
	}
	return result.Ok[[]byte, *vio.Error](out)
}

// Child is a spawned process. Its piped streams are available until
// [Child.Wait] returns.
type Child struct {
	cmd         *exec.Cmd
	stdinCloser interface{ Close() error }
	stdin       option.Option[vio.Writable]
	stdout      option.Option[vio.Readable]
	stderr      option.Option[vio.Readable]
}

// PID returns the child's process id.
func (ch *Child) PID() int {
	return ch.cmd.Process.Pid
}

// Stdin returns the child's stdin when it was configured as [Piped].
func (ch *Child) Stdin() option.Option[vio.Writable] {
	return ch.stdin
}

// Stdout returns the child's stdout when it was configured as [Piped].
func (ch *Child) Stdout() option.Option[vio.Readable] {
	return ch.stdout
}

// Stderr returns the child's stderr when it was configured as [Piped].
func (ch *Child) Stderr() option.Option[vio.Readable] {
	return ch.stderr
}

// CloseStdin closes the write end of a piped stdin, signalling
// end-of-input to the child. It is a no-op when stdin is not piped.
func (ch *Child) CloseStdin() result.Result[result.Unit, *vio.Error] {
	if ch.stdinCloser != nil {
		closer := ch.stdinCloser
		ch.stdinCloser = nil
		ch.stdin = option.None[vio.Writable]()
		if err := closer.Close(); err != nil {
			return result.Err[result.Unit](vio.FromOS(err))
		}
	}
	return result.OkUnit[*vio.Error]()
}

// Wait blocks until the child exits and returns how it went. Piped
// streams must be drained before calling Wait; they are invalid
// afterwards. A non-zero exit is a successful Wait with an
// unsuccessful [ExitStatus].
func (ch *Child) Wait() result.Result[ExitStatus, *vio.Error] {
	err := ch.cmd.Wait()
	if err == nil {
		return result.Ok[ExitStatus, *vio.Error](ExitStatus{code: option.Some(0)})
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		code := option.None[int]()
		if exit.ExitCode() >= 0 {
			code = option.Some(exit.ExitCode())
		}
		return result.Ok[ExitStatus, *vio.Error](ExitStatus{code: code})
	}
	return result.Err[ExitStatus](vio.FromOS(err))
}

// Kill forcibly terminates the child. The child must still be reaped
// with [Child.Wait].
func (ch *Child) Kill() result.Result[result.Unit, *vio.Error] {
	if err := ch.cmd.Process.Kill(); err != nil {
		return result.Err[result.Unit](vio.FromOS(err))
	}
	return result.OkUnit[*vio.Error]()
}

// ExitStatus describes how a child exited.
type ExitStatus struct {
	code option.Option[int]
}

// Success reports whether the child exited with code zero.
func (s ExitStatus) Success() bool {
	return option.Contains(s.code, 0)
}

// Code returns the exit code, or None when the child was terminated by
// a signal.
func (s ExitStatus) Code() option.Option[int] {
	return s.code
}

// String implements [fmt.Stringer].
func (s ExitStatus) String() string {
	if code, ok := s.code.Get(); ok {
		return "exit code " + strconv.Itoa(code)
	}
	return "terminated by signal"
}
