package sierpinski

import (
	"fmt"
	"os"
	"path/filepath"
)

// Stage is a shader pipeline stage.
type Stage int

const (
	StageVertex Stage = iota + 1
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Extension returns the file extension required for the stage, or "" for an
// unsupported stage.
func (s Stage) Extension() string {
	switch s {
	case StageVertex:
		return ".vert"
	case StageFragment:
		return ".frag"
	default:
		return ""
	}
}

// Source is shader text read from disk for a given stage.
type Source struct {
	Stage Stage
	Path  string
	Text  string
}

// CheckStage panics if path's extension does not match stage or if stage is
// not a supported value. Both are programming errors.
func CheckStage(path string, stage Stage) {
	want := stage.Extension()
	if want == "" {
		panic(fmt.Sprintf("sierpinski: invalid shader stage %s", stage))
	}
	if ext := filepath.Ext(path); ext != want {
		panic(fmt.Sprintf("sierpinski: %s shader %q must have extension %s, got %q", stage, path, want, ext))
	}
}

// ReadSource reads the shader file at path for stage.
// A missing or unreadable file returns a *ShaderError of kind ErrKindNotFound.
// A path whose extension does not match stage panics (see CheckStage).
func ReadSource(path string, stage Stage) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &ShaderError{Kind: ErrKindNotFound, Stage: stage, Path: path, Err: err}
	}

	CheckStage(path, stage)

	return Source{Stage: stage, Path: path, Text: string(b)}, nil
}

// CString returns the source text null-terminated for the GL driver.
func (s Source) CString() string {
	if n := len(s.Text); n > 0 && s.Text[n-1] == 0 {
		return s.Text
	}
	return s.Text + "\x00"
}
