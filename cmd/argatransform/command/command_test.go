package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitListsEmbeddedSchemas(t *testing.T) {
	cmd := NewInitCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "tissues.trig")
}

func TestLoadReportsQuadCountForSchemaAndSourceFlags(t *testing.T) {
	dir := t.TempDir()
	schema := writeTempFile(t, dir, "custom.trig", `@prefix fields: <http://arga.org.au/schemas/fields/> .
@prefix mapping: <http://arga.org.au/schemas/mapping/> .
@prefix source: <http://arga.org.au/schemas/source/> .

<http://arga.org.au/schemas/mapping/tissues> {
  fields:tissue_id mapping:same source:tissue_id .
}
`)
	csvPath := writeTempFile(t, dir, "tissues.csv", "tissue_id\nT1\nT2\n")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"load",
		"--schema", schema,
		"--source", "tissues=" + csvPath,
	})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "quads in store")
}

func TestResolveRequiresModelFlag(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"resolve"})
	require.Error(t, cmd.Execute())
}

func TestVersionPrintsDev(t *testing.T) {
	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "argatransform dev")
}
