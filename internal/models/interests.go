package models

import "strings"

// Interest tags offered by the signup form.
var InterestTags = []string{"research", "innovation", "tech-transfer", "funding", "events", "partnerships"}

// Interests is an insertion-ordered set of interest tags.
type Interests struct {
	tags []string
}

// NewInterests builds a set from tags, dropping duplicates.
func NewInterests(tags ...string) Interests {
	var in Interests
	for _, t := range tags {
		if !in.Contains(t) {
			in.tags = append(in.tags, t)
		}
	}
	return in
}

func (in *Interests) Contains(tag string) bool {
	for _, t := range in.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Toggle removes tag when present and appends it otherwise. It returns
// whether tag is selected afterwards.
func (in *Interests) Toggle(tag string) bool {
	for i, t := range in.tags {
		if t == tag {
			in.tags = append(in.tags[:i:i], in.tags[i+1:]...)
			return false
		}
	}
	in.tags = append(in.tags, tag)
	return true
}

// Tags returns a copy of the selected tags in selection order.
func (in *Interests) Tags() []string {
	return append([]string(nil), in.tags...)
}

func (in *Interests) Len() int { return len(in.tags) }

// Join renders the set as the single comma-delimited string stored in the
// profile row.
func (in *Interests) Join() string {
	return strings.Join(in.tags, ",")
}
