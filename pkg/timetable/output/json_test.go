package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() *models.ProcessedData {
	sheet := models.NewSheetResult()
	sheet.Set("1A1", models.ClassTimetable{
		{
			{Course: "Timings", Color: models.ColorDark},
			{Course: "Monday", Color: models.ColorDark},
			{Course: "Tuesday", Color: models.ColorDark},
			{Course: "Wednesday", Color: models.ColorDark},
			{Course: "Thursday", Color: models.ColorDark},
			{Course: "Friday", Color: models.ColorDark},
		},
	})
	data := models.NewProcessedData()
	data.Set("R&D", sheet)
	return data
}

func TestToJSONPretty(t *testing.T) {
	out, err := ToJSON(sampleData(), true)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "{\n  \"R&D\": {\n    \"1A1\": [\n"), s)
	assert.False(t, strings.HasSuffix(s, "\n"))
	assert.Contains(t, s, "        {\n          \"course\": \"Timings\",\n          \"color\": \"dark\"\n        },")
}

func TestToJSONCompact(t *testing.T) {
	out, err := ToJSON(sampleData(), false)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\n")
	assert.True(t, strings.HasPrefix(string(out), `{"R&D":{"1A1":[[{"course":"Timings","color":"dark"}`))
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "data")

	path, err := WriteFile(dir, "timetable.json", sampleData(), true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "timetable.json"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := ToJSON(sampleData(), true)
	require.NoError(t, err)
	assert.Equal(t, expected, written)
}
