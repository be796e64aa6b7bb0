package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/persistence"
	"github.com/weftlabs/weft/pkg/testutil"
)

func TestNewPersistence_StripsScheme(t *testing.T) {
	root := t.TempDir()

	store := NewPersistence("file://" + root)

	workflow := testutil.CreateTestWorkflow()
	require.NoError(t, store.SaveWorkflow(t.Context(), workflow))

	_, err := os.Stat(filepath.Join(root, workflow.ID+".json"))
	assert.NoError(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	store := NewPersistence(t.TempDir())

	workflow := testutil.CreateTestWorkflow()
	require.NoError(t, store.SaveWorkflow(t.Context(), workflow))

	loaded, err := store.WorkflowByID(t.Context(), workflow.ID)
	require.NoError(t, err)

	assert.Equal(t, workflow.Name, loaded.Name)
	assert.Len(t, loaded.Nodes, 2)
	require.Contains(t, loaded.Connections, "Webhook")
	assert.Equal(t, "Set", loaded.Connections["Webhook"].Main[0][0].Node)
}

func TestSaveWithoutID(t *testing.T) {
	store := NewPersistence(t.TempDir())

	err := store.SaveWorkflow(t.Context(), testutil.CreateTestWorkflow(testutil.WithWorkflowID("")))
	assert.Error(t, err)
}

func TestSaveReplacesWholeObject(t *testing.T) {
	store := NewPersistence(t.TempDir())

	workflow := testutil.CreateTestWorkflow()
	require.NoError(t, store.SaveWorkflow(t.Context(), workflow))

	replacement := testutil.CreateTestWorkflow(
		testutil.WithWorkflowID(workflow.ID),
		testutil.WithWorkflowName("replaced"),
	)
	replacement.Nodes = replacement.Nodes[:1]
	replacement.Connections = nil

	require.NoError(t, store.SaveWorkflow(t.Context(), replacement))

	loaded, err := store.WorkflowByID(t.Context(), workflow.ID)
	require.NoError(t, err)

	assert.Equal(t, "replaced", loaded.Name)
	assert.Len(t, loaded.Nodes, 1)
	assert.Empty(t, loaded.Connections)
}

func TestWorkflowByID_NotFound(t *testing.T) {
	store := NewPersistence(t.TempDir())

	_, err := store.WorkflowByID(t.Context(), "missing")
	assert.True(t, persistence.IsWorkflowNotFound(err))
}

func TestWorkflows(t *testing.T) {
	store := NewPersistence(t.TempDir())

	for range 3 {
		require.NoError(t, store.SaveWorkflow(t.Context(), testutil.CreateTestWorkflow()))
	}

	workflows, err := store.Workflows(t.Context())
	require.NoError(t, err)
	assert.Len(t, workflows, 3)
}

func TestDeleteWorkflow(t *testing.T) {
	store := NewPersistence(t.TempDir())

	workflow := testutil.CreateTestWorkflow()
	require.NoError(t, store.SaveWorkflow(t.Context(), workflow))
	require.NoError(t, store.DeleteWorkflow(t.Context(), workflow.ID))

	err := store.DeleteWorkflow(t.Context(), workflow.ID)
	assert.True(t, persistence.IsWorkflowNotFound(err))
}

func TestHealthCheck(t *testing.T) {
	store := NewPersistence(t.TempDir())

	assert.NoError(t, store.HealthCheck(t.Context()))
	assert.NoError(t, store.Close(t.Context()))
}
