package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/query"
)

func TestListCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.ListArgs
	}{
		{
			name: "cases",
			args: []string{"list", "webgpu:api,*", "buffer"},
			want: domain.ListArgs{
				Queries: []query.Query{query.MustParse("webgpu:api,*")},
				Filters: []string{"buffer"},
			},
		},
		{
			name: "tree",
			args: []string{"list", "--tree", "webgpu:api,*"},
			want: domain.ListArgs{
				Queries: []query.Query{query.MustParse("webgpu:api,*")},
				Tree:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow, _ := newTestCommand(t, newListCmd())

			mockWorkflow.EXPECT().List(mock.Anything, tt.want).Return(nil).Once()

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestListCmd_Error(t *testing.T) {
	cmd, mockWorkflow, _ := newTestCommand(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(domain.ErrSpecNotFound).Once()

	cmd.SetArgs([]string{"list", "webgpu:nope,*"})
	assert.ErrorIs(t, cmd.Execute(), domain.ErrSpecNotFound)
}
