package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCourseNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.yaml")
	content := `
courses:
  CSE101: Introduction to Programming
  ECE202: Signals and Systems
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	names, err := LoadCourseNames(path)
	require.NoError(t, err)
	assert.Len(t, names, 2)

	name, ok := names.Lookup("CSE101")
	assert.True(t, ok)
	assert.Equal(t, "Introduction to Programming", name)

	_, ok = names.Lookup("MTH201")
	assert.False(t, ok)
}

func TestLoadCourseNamesErrors(t *testing.T) {
	_, err := LoadCourseNames(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: [unclosed"), 0644))
	_, err = LoadCourseNames(path)
	assert.Error(t, err)
}

func TestCourseMapMerge(t *testing.T) {
	base := CourseMap{"A": "a", "B": "b"}
	merged := base.Merge(CourseMap{"B": "override", "C": "c"})

	assert.Equal(t, CourseMap{"A": "a", "B": "override", "C": "c"}, merged)
	assert.Equal(t, "b", base["B"])

	var nilMap CourseMap
	assert.Equal(t, CourseMap{"X": "x"}, nilMap.Merge(CourseMap{"X": "x"}))
}
