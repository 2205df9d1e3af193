package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/tessro/mocnotify/internal/core"
)

// Formatter renders the summary and body of a track notification.
type Formatter struct {
	summary *template.Template
	body    *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithSummaryTemplate sets a custom summary template. Invalid templates are
// ignored.
func WithSummaryTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if t := parse("summary", tmpl); t != nil {
			f.summary = t
		}
	}
}

// WithBodyTemplate sets a custom body template. Invalid templates are
// ignored.
func WithBodyTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if t := parse("body", tmpl); t != nil {
			f.body = t
		}
	}
}

func parse(name, tmpl string) *template.Template {
	if tmpl == "" {
		return nil
	}
	t, err := template.New(name).Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return nil
	}
	return t
}

// ValidateTemplate reports whether tmpl parses.
func ValidateTemplate(tmpl string) error {
	if tmpl == "" {
		return nil
	}
	_, err := template.New("check").Parse(tmpl)
	return err
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Summary returns the notification title.
func (f *Formatter) Summary(t core.Track) string {
	if f.summary != nil {
		if s, ok := execute(f.summary, t); ok {
			return s
		}
	}
	return t.Title
}

// Body returns the notification text: artist and album on separate lines.
func (f *Formatter) Body(t core.Track) string {
	if f.body != nil {
		if s, ok := execute(f.body, t); ok {
			return s
		}
	}
	return fmt.Sprintf("%s\n%s", t.Artist, t.Album)
}

type templateData struct {
	Artist   string
	Title    string
	Album    string
	Position int
	Length   int
	Elapsed  string
	Duration string
}

func execute(t *template.Template, track core.Track) (string, bool) {
	data := templateData{
		Artist:   track.Artist,
		Title:    track.Title,
		Album:    track.Album,
		Position: track.Position,
		Length:   track.Length,
		Elapsed:  clock(track.Position),
		Duration: clock(track.Length),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", false
	}
	return buf.String(), true
}

// clock formats seconds as m:ss or h:mm:ss.
func clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
