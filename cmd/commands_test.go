package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/annogen/internal/domain"
	m "github.com/mouse-blink/annogen/internal/model"
)

func TestRunCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestCmd(t)

	mockWorkflow.On("Run", mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 2 && args.Reports == m.Path("out/reports") &&
			assert.ObjectsAreEqual([]m.Path{"./..."}, args.Paths)
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--parallel", "2", "--reports", "out/reports", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestCmd(t)

	mockWorkflow.On("Estimate", mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.FileList == m.Path("files.txt") && len(args.Paths) == 0 &&
			assert.ObjectsAreEqual([]string{".h"}, args.Extensions)
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--file-list", "files.txt", "--extensions", ".h"})
	require.NoError(t, cmd.Execute())
}

func TestDiffCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestCmd(t)

	mockWorkflow.On("Diff", mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.OutputPrefix == "gen_" && assert.ObjectsAreEqual([]m.Path{"widget.h"}, args.Paths)
	})).Return(nil)

	cmd.SetArgs([]string{"diff", "--output-prefix", "gen_", "widget.h"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestCmd(t)

	mockWorkflow.On("View", domain.ViewArgs{Reports: m.Path(".annogen")}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RejectsArguments(t *testing.T) {
	cmd, _, _ := newTestCmd(t)

	cmd.SetArgs([]string{"view", "extra"})
	require.Error(t, cmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	cmd, _, out := newTestCmd(t)

	cmd.SetArgs([]string{"version", "--parallel", "0"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "annogen dev\n", out.String())
}
