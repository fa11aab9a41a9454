package officeparser

import "log/slog"

// Config controls how text is assembled from a document. The zero value is
// ready to use: fragments are joined with "\n" and notes content is kept in
// document order.
type Config struct {
	// NewlineDelimiter is placed between extracted fragments. Empty means "\n".
	NewlineDelimiter string `yaml:"newline_delimiter"`

	// IgnoreNotes drops speaker-note and annotation content entirely. For
	// presentation files the notes entries are never read at all.
	IgnoreNotes bool `yaml:"ignore_notes"`

	// PutNotesAtLast moves all notes content after the body text instead of
	// keeping it in document order. Has no effect when IgnoreNotes is set.
	PutNotesAtLast bool `yaml:"put_notes_at_last"`

	// Logger for debug messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.NewlineDelimiter == "" {
		c.NewlineDelimiter = "\n"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

func (c *Config) delimiter() string {
	if c.NewlineDelimiter == "" {
		return "\n"
	}
	return c.NewlineDelimiter
}
