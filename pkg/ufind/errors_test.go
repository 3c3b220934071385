package ufind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/budymann/OODesign/pkg/ufind"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ufind.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), ufind.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), ufind.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), ufind.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--color\""), ufind.ExitUsageError},
		{"general error", errors.New("something went wrong"), ufind.ExitGeneralError},
		{"path not found", ufind.ErrPathNotFound, ufind.ExitPathNotFound},
		{"wrapped path not found", fmt.Errorf("find: %w: /nope", ufind.ErrPathNotFound), ufind.ExitPathNotFound},
		{"invalid tree", fmt.Errorf("line 3: %w", ufind.ErrInvalidTree), ufind.ExitInvalidTree},
		{"invalid config", fmt.Errorf("%w: operator", ufind.ErrInvalidConfig), ufind.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ufind.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
