// Package logging builds the logrus logger used by the esglob shell. Timestamps are
// rendered with C strftime layouts.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lestrrat-go/strftime"
	"github.com/sirupsen/logrus"
)

// Formatter is a logrus formatter printing one line per entry:
//
//	<time> <LEVEL> <message> key=value...
type Formatter struct {
	strf *strftime.Strftime
}

// NewFormatter creates a formatter with the strftime layout timefmt.
func NewFormatter(timefmt string) (*Formatter, error) {
	strf, err := strftime.New(timefmt)
	if err != nil {
		return nil, fmt.Errorf("invalid time format %q: %w", timefmt, err)
	}
	return &Formatter{strf: strf}, nil
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(f.strf.FormatString(entry.Time))
	buf.WriteByte(' ')
	buf.WriteString(strings.ToUpper(entry.Level.String()))
	buf.WriteByte(' ')
	buf.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&buf, " %s=%v", key, entry.Data[key])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// New creates a logger writing to out. Debug output is only enabled when debug is set.
func New(out io.Writer, debug bool, timefmt string) (*logrus.Logger, error) {
	formatter, err := NewFormatter(timefmt)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(formatter)
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log, nil
}
