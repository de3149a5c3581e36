package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CourseNames resolves a cleaned course code to a full course name.
type CourseNames interface {
	Lookup(code string) (string, bool)
}

// CourseMap is a CourseNames backed by a plain map.
type CourseMap map[string]string

// Lookup implements CourseNames.
func (m CourseMap) Lookup(code string) (string, bool) {
	name, ok := m[code]
	return name, ok
}

// Merge returns a new map with the entries of m overridden by other.
func (m CourseMap) Merge(other CourseMap) CourseMap {
	out := make(CourseMap, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

type courseNamesFile struct {
	Courses map[string]string `yaml:"courses"`
}

// LoadCourseNames reads a YAML course-name file of the form
//
//	courses:
//	  CSE101: Introduction to Programming
func LoadCourseNames(path string) (CourseMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course names: %w", err)
	}
	var f courseNamesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse course names yaml: %w", err)
	}
	return CourseMap(f.Courses), nil
}
