package reaction

import (
	"fmt"
	"regexp"
	"time"
)

// ReactionProvenance records who ran the reaction and how the record entered
// the database.
type ReactionProvenance struct {
	Experimenter    *Person        `ord:"experimenter"`
	City            string         `ord:"city"`
	ExperimentStart *DateTime      `ord:"experiment_start"`
	DOI             string         `ord:"doi"`
	Patent          string         `ord:"patent"`
	PublicationURL  string         `ord:"publication_url"`
	RecordCreated   *RecordEvent   `ord:"record_created"`
	RecordModified  []*RecordEvent `ord:"record_modified"`
}

// RecordEvent is one change to the record: creation or a modification.
type RecordEvent struct {
	Time    *DateTime `ord:"time"`
	Person  *Person   `ord:"person"`
	Details string    `ord:"details"`
}

// Person identifies a contributor.
type Person struct {
	Username     string `ord:"username"`
	Name         string `ord:"name"`
	ORCID        string `ord:"orcid"`
	Organization string `ord:"organization"`
	Email        string `ord:"email"`
}

var orcidRe = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// ValidORCID reports whether s has the standard ORCID shape
// ("0000-0002-1825-0097"; final character may be X).
func ValidORCID(s string) bool { return orcidRe.MatchString(s) }

// DateTime wraps a human-entered timestamp string.
type DateTime struct {
	Value string `ord:"value"`
}

// dateTimeLayouts are the accepted input formats, tried in order.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// Parse interprets the wrapped value, accepting a small set of common
// layouts. The zero DateTime and an empty value are errors.
func (d *DateTime) Parse() (time.Time, error) {
	if d == nil || d.Value == "" {
		return time.Time{}, fmt.Errorf("reaction: empty DateTime")
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, d.Value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("reaction: unparseable DateTime %q", d.Value)
}

// Normalize rewrites the wrapped value into RFC 3339 form. It is a no-op on
// values that do not parse; validation reports those separately.
func (d *DateTime) Normalize() {
	t, err := d.Parse()
	if err != nil {
		return
	}
	d.Value = t.Format(time.RFC3339)
}
