package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad descriptor"),
			want: 2,
		},
		{
			name: "failed precondition",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("snapshot guard"),
			want: 3,
		},
		{
			name: "not found",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("no descriptor"),
			want: 4,
		},
		{
			name: "internal",
			err:  errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("write failed"),
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	require.Contains(t, names, "generate")
	require.Contains(t, names, "validate")
}
