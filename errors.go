package sierpinski

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against a *ShaderError of the same kind.
var (
	ErrShaderNotFound = errors.New("shader not found")
	ErrShaderCompile  = errors.New("shader failed to compile")
	ErrProgramLink    = errors.New("program failed to link")
)

// ErrorKind classifies a shader pipeline failure.
type ErrorKind int

const (
	ErrKindNotFound ErrorKind = iota
	ErrKindCompile
	ErrKindLink
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not found"
	case ErrKindCompile:
		return "compile"
	case ErrKindLink:
		return "link"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrKindNotFound:
		return ErrShaderNotFound
	case ErrKindCompile:
		return ErrShaderCompile
	case ErrKindLink:
		return ErrProgramLink
	default:
		return nil
	}
}

// ShaderError describes a failure while loading, compiling or linking shaders.
type ShaderError struct {
	Kind  ErrorKind
	Stage Stage  // unset for link errors
	Path  string // source file, if any
	Log   string // driver info log for compile and link errors
	Err   error  // underlying error, e.g. from os.ReadFile
}

func (e *ShaderError) Error() string {
	switch e.Kind {
	case ErrKindNotFound:
		return fmt.Sprintf("shader (%s) not found: %v", e.Path, e.Err)
	case ErrKindCompile:
		return fmt.Sprintf("%s shader (%s) failed to compile: %s", e.Stage, e.Path, e.Log)
	case ErrKindLink:
		return fmt.Sprintf("program failed to link: %s", e.Log)
	default:
		return fmt.Sprintf("shader error (%s)", e.Kind)
	}
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the error's kind.
func (e *ShaderError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Policy decides what happens after a shader pipeline error.
type Policy int

const (
	// FailSoft logs the error and continues with the invalid handle.
	FailSoft Policy = iota
	// FailFast returns the first error to the caller.
	FailFast
)

func (p Policy) String() string {
	switch p {
	case FailSoft:
		return "fail-soft"
	case FailFast:
		return "fail-fast"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Handle applies the policy to err. Under FailSoft the error is logged and
// nil is returned; under FailFast err is returned unchanged.
func (p Policy) Handle(err error) error {
	if err == nil {
		return nil
	}
	if p == FailFast {
		return err
	}
	logger.Error("shader pipeline error, continuing", "err", err, "policy", p.String())
	return nil
}
