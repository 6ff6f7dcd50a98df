package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberviz/internal/app"
	"cyberviz/internal/plot"
)

const eventsCSV = `Timestamp,Protocol,Traffic Type
2023-05-30 06:33:58,ICMP,Data
2023-05-30 07:10:01,UDP,Data
2023-05-31 11:02:15,UDP,HTTP
2023-05-31 12:40:00,TCP,DNS
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_WritesCharts(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "render", csvPath, "--out", outDir, "--log_level", "error")
	require.NoError(t, err)

	for _, name := range []string{plot.TimelineFile, plot.ProtocolsFile, plot.TrafficTypesFile, plot.IndexFile} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}

func TestSummary_PrintsTables(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)

	out, err := execute(t, "summary", csvPath, "--log_level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Cyber Events Over Time by Protocol (4 rows)")
	assert.Contains(t, out, "Distribution of Cyber Events by Protocol")
	assert.Contains(t, out, "Proportion of Traffic Types")
	assert.Contains(t, out, "UDP")
	assert.Contains(t, out, "2023-05-31")
}

func TestConfigFile_FlagsTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)
	yamlOut := filepath.Join(dir, "from-yaml")
	flagOut := filepath.Join(dir, "from-flag")
	cfgPath := writeFile(t, dir, "cyberviz.yaml", "input: "+csvPath+"\nout_dir: "+yamlOut+"\nlog_level: error\n")

	_, err := execute(t, "render", "--config", cfgPath, "--out", flagOut)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(flagOut, plot.TimelineFile))
	assert.NoDirExists(t, yamlOut)
}

func TestConfigFile_ProvidesInput(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)
	cfgPath := writeFile(t, dir, "cyberviz.yaml", "input: "+csvPath+"\nlog_level: error\n")

	out, err := execute(t, "summary", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "(4 rows)")
}

func TestConfigFile_UnknownField(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cyberviz.yaml", "outdir: charts\n")

	_, err := execute(t, "summary", "--config", cfgPath)
	assert.Error(t, err)
}

func TestMissingSource(t *testing.T) {
	_, err := execute(t, "summary", "--log_level", "error")
	assert.ErrorIs(t, err, app.ErrNoSource)
}

func TestInvalidLogFormat(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)

	_, err := execute(t, "summary", csvPath, "--log_format", "xml")
	assert.Error(t, err)
}

func TestImport_ThenRenderFromDatabase(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)
	dbPath := filepath.Join(dir, "events.db")

	out, err := execute(t, "import", csvPath, "--db", dbPath, "--log_level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 4 events")

	out, err = execute(t, "summary", "--db", dbPath, "--log_level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "(4 rows)")
}

func TestImport_RequiresDatabase(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "events.csv", eventsCSV)

	_, err := execute(t, "import", csvPath, "--log_level", "error")
	assert.ErrorIs(t, err, app.ErrNoDatabase)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8050", baseURL(":8050"))
	assert.Equal(t, "http://127.0.0.1:8050", baseURL("127.0.0.1:8050"))
}
