// Package timetable converts department timetable workbooks into the JSON
// document consumed by the timetable front end.
package timetable

import (
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/parser"
	"github.com/rs/zerolog"
)

// Options configures conversion behavior.
type Options struct {
	// Layout locates classes and time slots on each sheet.
	// If nil, parser.DefaultLayout() is used.
	Layout *parser.Layout
	// CourseNames maps cleaned course codes to display names (optional).
	CourseNames parser.CourseNames
	// Logger receives progress and warning events. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) layout() parser.Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return parser.DefaultLayout()
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}

func (o Options) transformer() *parser.Transformer {
	return &parser.Transformer{
		Layout: o.layout(),
		Names:  o.CourseNames,
		Logger: o.logger(),
	}
}
