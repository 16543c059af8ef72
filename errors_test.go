package sierpinski_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/sierpinski"
)

func TestShaderErrorIs(t *testing.T) {
	tests := []struct {
		kind sierpinski.ErrorKind
		want error
	}{
		{sierpinski.ErrKindNotFound, sierpinski.ErrShaderNotFound},
		{sierpinski.ErrKindCompile, sierpinski.ErrShaderCompile},
		{sierpinski.ErrKindLink, sierpinski.ErrProgramLink},
	}

	all := []error{sierpinski.ErrShaderNotFound, sierpinski.ErrShaderCompile, sierpinski.ErrProgramLink}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &sierpinski.ShaderError{Kind: tt.kind})
			for _, sentinel := range all {
				assert.Equal(t, sentinel == tt.want, errors.Is(err, sentinel), "sentinel %v", sentinel)
			}
		})
	}
}

func TestShaderErrorMessage(t *testing.T) {
	compile := &sierpinski.ShaderError{
		Kind:  sierpinski.ErrKindCompile,
		Stage: sierpinski.StageFragment,
		Path:  "Default.frag",
		Log:   "0:3: syntax error",
	}
	assert.Equal(t, "fragment shader (Default.frag) failed to compile: 0:3: syntax error", compile.Error())

	link := &sierpinski.ShaderError{Kind: sierpinski.ErrKindLink, Log: "no main"}
	assert.Equal(t, "program failed to link: no main", link.Error())
}

func TestPolicyHandle(t *testing.T) {
	err := &sierpinski.ShaderError{Kind: sierpinski.ErrKindLink, Log: "boom"}

	assert.NoError(t, sierpinski.FailSoft.Handle(err))
	assert.Same(t, err, sierpinski.FailFast.Handle(err))

	assert.NoError(t, sierpinski.FailSoft.Handle(nil))
	assert.NoError(t, sierpinski.FailFast.Handle(nil))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "fail-soft", sierpinski.FailSoft.String())
	assert.Equal(t, "fail-fast", sierpinski.FailFast.String())
}
