package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dupescan/internal/adapter"
	domainmocks "github.com/mouse-blink/dupescan/internal/domain/mocks"
	m "github.com/mouse-blink/dupescan/internal/model"
)

func TestDeleteCmd_ForceSkipsConfirmation(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	mockApplier := domainmocks.NewMockApplier(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.AddCommand(newDeleteCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	originalEngine := engine
	originalApplier := applier
	engine = mockEngine
	applier = mockApplier
	defer func() {
		engine = originalEngine
		applier = originalApplier
	}()

	result := scanFixture()
	mockEngine.On("Scan", mock.Anything, mock.Anything).Return(result, nil)
	mockApplier.On("Delete", result, adapter.AllowAll{}).
		Return(m.ActionReport{Processed: 2, Bytes: 1024})

	cmd.SetArgs([]string{"delete", "--force", "/data"})
	err := cmd.Execute()
	require.NoError(t, err)

	if !strings.Contains(buf.String(), "Deleted 2 file(s)") {
		t.Fatalf("output missing action summary\noutput:\n%s", buf.String())
	}
}

func TestDeleteCmd_GateDeclined(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	mockApplier := domainmocks.NewMockApplier(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.AddCommand(newDeleteCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader("n\n"))

	originalEngine := engine
	originalApplier := applier
	engine = mockEngine
	applier = mockApplier
	defer func() {
		engine = originalEngine
		applier = originalApplier
	}()

	mockEngine.On("Scan", mock.Anything, mock.Anything).Return(scanFixture(), nil)

	cmd.SetArgs([]string{"delete", "/data"})
	err := cmd.Execute()
	require.NoError(t, err)

	if !strings.Contains(buf.String(), "Aborted.") {
		t.Fatalf("output missing abort message\noutput:\n%s", buf.String())
	}

	mockApplier.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCmd_GateAccepted(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	mockApplier := domainmocks.NewMockApplier(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.AddCommand(newDeleteCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader("y\n"))

	originalEngine := engine
	originalApplier := applier
	engine = mockEngine
	applier = mockApplier
	defer func() {
		engine = originalEngine
		applier = originalApplier
	}()

	result := scanFixture()
	mockEngine.On("Scan", mock.Anything, mock.Anything).Return(result, nil)
	mockApplier.On("Delete", result, adapter.AllowAll{}).
		Return(m.ActionReport{Processed: 2, Bytes: 1024})

	cmd.SetArgs([]string{"delete", "/data"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestDeleteCmd_InteractiveConfirmsEachFile(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	mockApplier := domainmocks.NewMockApplier(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.AddCommand(newDeleteCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader("y\nn\n"))

	originalEngine := engine
	originalApplier := applier
	engine = mockEngine
	applier = mockApplier
	defer func() {
		engine = originalEngine
		applier = originalApplier
	}()

	result := scanFixture()
	mockEngine.On("Scan", mock.Anything, mock.Anything).Return(result, nil)
	mockApplier.On("Delete", result, mock.MatchedBy(func(confirm adapter.Confirmer) bool {
		_, ok := confirm.(*adapter.TerminalConfirmer)
		return ok
	})).Return(m.ActionReport{Processed: 1, Skipped: 1, Bytes: 512})

	cmd.SetArgs([]string{"delete", "-i", "/data"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestDeleteCmd_NoDuplicates(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	mockApplier := domainmocks.NewMockApplier(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.AddCommand(newDeleteCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	originalEngine := engine
	originalApplier := applier
	engine = mockEngine
	applier = mockApplier
	defer func() {
		engine = originalEngine
		applier = originalApplier
	}()

	mockEngine.On("Scan", mock.Anything, mock.Anything).
		Return(&m.ScanResult{FilesScanned: 4}, nil)

	cmd.SetArgs([]string{"delete", "--force", "/data"})
	err := cmd.Execute()
	require.NoError(t, err)

	if !strings.Contains(buf.String(), "No duplicate files found.") {
		t.Fatalf("output missing empty-result message\noutput:\n%s", buf.String())
	}

	mockApplier.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNewDeleteCmd(t *testing.T) {
	cmd := newDeleteCmd()

	require.Equal(t, "delete [directory]", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotEmpty(t, cmd.Long)

	require.NotNil(t, cmd.Flags().Lookup("interactive"))
	require.NotNil(t, cmd.Flags().Lookup("force"))
}
