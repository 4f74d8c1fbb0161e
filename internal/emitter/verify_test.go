package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("reports duplicate handles", func(t *testing.T) {
		doc := Header +
			"--- !u!1 &100\nGameObject:\n  m_Name: a\n" +
			"--- !u!1 &100\nGameObject:\n  m_Name: b\n"
		report := Verify(doc)
		assert.Equal(t, []int64{100}, report.DuplicateHandles)
		assert.False(t, report.Valid())
	})

	t.Run("reports unresolved local references", func(t *testing.T) {
		doc := Header +
			"--- !u!1 &100\nGameObject:\n  m_Component:\n  - component: {fileID: 101}\n  - component: {fileID: 555}\n" +
			"--- !u!4 &101\nTransform:\n  m_GameObject: {fileID: 100}\n  m_Father: {fileID: 0}\n"
		report := Verify(doc)
		assert.Equal(t, []int64{555}, report.UnresolvedRefs)
	})

	t.Run("skips references into other assets", func(t *testing.T) {
		doc := "--- !u!33 &100\nMeshFilter:\n  m_Mesh: {fileID: 10202, guid: 0000000000000000e000000000000000, type: 0}\n"
		report := Verify(doc)
		assert.False(t, report.HasHeader)
		assert.True(t, report.Valid())
	})

	t.Run("reports invalid block bodies", func(t *testing.T) {
		doc := Header + "--- !u!1 &100\nGameObject:\n  m_Name: [unclosed\n"
		report := Verify(doc)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "&100")
	})

	t.Run("reports content outside blocks", func(t *testing.T) {
		report := Verify(Header + "stray: value\n--- !u!1 &100\nGameObject:\n  m_Name: a\n")
		assert.Len(t, report.Errors, 1)
	})

	t.Run("records block types", func(t *testing.T) {
		report := Verify(Header + "--- !u!4 &7\nTransform:\n  m_Father: {fileID: 0}\n")
		require.Len(t, report.Blocks, 1)
		assert.Equal(t, "Transform", report.Blocks[0].Type)
		assert.Equal(t, 4, report.Blocks[0].ClassID)
		assert.Equal(t, int64(7), report.MaxHandle)
	})
}
