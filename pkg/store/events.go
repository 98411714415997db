package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/temporal"
)

// Span selects how far a mutation of a recurring event reaches.
type Span int

const (
	// SpanThisOnly touches a single occurrence.
	SpanThisOnly Span = iota
	// SpanThisAndFuture touches the series from here on.
	SpanThisAndFuture
)

// ParseSpan maps the --span flag value.
func ParseSpan(text string) (Span, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "this", "this-only":
		return SpanThisOnly, nil
	case "future", "this-and-future", "all":
		return SpanThisAndFuture, nil
	}
	return 0, fmt.Errorf("unknown span %q", text)
}

// EventFilter narrows a List call. Zero time bounds are unbounded. A
// recurring series matches a date range when any part of it could fall
// inside; occurrence-level clipping happens at expansion time.
type EventFilter struct {
	Calendar string
	From     time.Time
	To       time.Time
	Search   string
}

// EventPatch carries partial updates; nil fields are left untouched.
type EventPatch struct {
	Title    *string
	Location *string
	Notes    *string
	Start    *time.Time
	End      *time.Time
	AllDay   *bool
	Alarms   []temporal.AlarmTrigger
	Repeat   *recurrence.Rule
}

func (p EventPatch) apply(e *event.Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Start != nil {
		e.Start = temporal.Timestamp{Time: *p.Start}
	}
	if p.End != nil {
		e.End = temporal.Timestamp{Time: *p.End}
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	if p.Alarms != nil {
		e.Alarms = p.Alarms
	}
	if p.Repeat != nil {
		e.Recurrence = p.Repeat
	}
}

// EventStore is the calendar half of the database.
type EventStore struct {
	d        *diskv.Diskv
	basePath string
}

func (s *EventStore) key(e *event.Event) string {
	return recordKey(domainEvents, e.Calendar, e.Start.Format(layoutISO), e.ID)
}

func (s *EventStore) read(key string) (*event.Event, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &event.Event{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = keyToPathTransform(key).FileName
	}
	return e, nil
}

func (s *EventStore) write(e *event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.d.Write(s.key(e), data)
}

// findKey locates the storage key for an event id.
func (s *EventStore) findKey(ctx context.Context, id string) (string, error) {
	for key := range s.d.Keys(ctx.Done()) {
		if pk, ok := parseKey(key); ok && pk.domain == domainEvents && pk.id == id {
			return key, nil
		}
	}
	return "", fmt.Errorf("event %q: %w", id, ErrNotFound)
}

func (s *EventStore) checkWritable(name string) error {
	index, err := loadCalendarIndex(s.basePath)
	if err != nil {
		return err
	}
	if meta, ok := index[name]; ok && meta.Protected {
		return fmt.Errorf("calendar %q: %w", name, ErrImmutable)
	}
	return nil
}

// Create persists a new event and assigns its id.
func (s *EventStore) Create(ctx context.Context, e *event.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title required")
	}
	if e.End.Before(e.Start.Time) {
		return fmt.Errorf("event ends before it starts")
	}
	if e.Calendar == "" {
		e.Calendar = "default"
	}
	if err := s.checkWritable(e.Calendar); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.Created.IsZero() {
		e.Created = temporal.Timestamp{Time: time.Now()}
	}
	if err := s.EnsureCalendar(e.Calendar); err != nil {
		return err
	}
	return s.write(e)
}

// Get loads one event by id.
func (s *EventStore) Get(ctx context.Context, id string) (*event.Event, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.read(key)
}

// List returns events matching the filter, ordered by start time. A
// malformed record is skipped with a note to stderr.
func (s *EventStore) List(ctx context.Context, f EventFilter) ([]*event.Event, error) {
	all := make([]*event.Event, 0)
	for key := range s.d.Keys(ctx.Done()) {
		pk, ok := parseKey(key)
		if !ok || pk.domain != domainEvents {
			continue
		}
		if f.Calendar != "" && pk.group != f.Calendar {
			continue
		}
		e, err := s.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if !matchEvent(e, f) {
			continue
		}
		all = append(all, e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start.Equal(all[j].Start.Time) {
			return all[i].ID < all[j].ID
		}
		return all[i].Start.Before(all[j].Start.Time)
	})
	return all, nil
}

func matchEvent(e *event.Event, f EventFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hay := strings.ToLower(e.Title + " " + e.Location + " " + e.Notes)
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	if f.From.IsZero() && f.To.IsZero() {
		return true
	}
	if e.Recurrence == nil {
		if !f.From.IsZero() && e.Start.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && !e.Start.Before(f.To) {
			return false
		}
		return true
	}
	// A series matches when it could produce an occurrence in range.
	if !f.To.IsZero() && !e.Start.Before(f.To) {
		return false
	}
	until := e.Recurrence.Until
	if until != nil && !f.From.IsZero() && until.Before(f.From) {
		return false
	}
	return true
}

// Update applies a partial patch. For a recurring event SpanThisOnly
// detaches the next upcoming occurrence instead of touching the series.
func (s *EventStore) Update(ctx context.Context, id string, patch EventPatch, span Span) (*event.Event, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := s.read(key)
	if err != nil {
		return nil, err
	}
	if err := s.checkWritable(e.Calendar); err != nil {
		return nil, err
	}

	if e.Recurrence != nil && span == SpanThisOnly {
		next, err := recurrence.Next(e.Recurrence, e.Start.Time, time.Now())
		if err != nil {
			return nil, err
		}
		if next.IsZero() {
			return nil, fmt.Errorf("event %q: series has no upcoming occurrence", id)
		}
		return s.ModifyOccurrence(ctx, id, next, patch)
	}

	patch.apply(e)
	if e.End.Before(e.Start.Time) {
		return nil, fmt.Errorf("event ends before it starts")
	}
	if newKey := s.key(e); newKey != key {
		if err := s.d.Erase(key); err != nil {
			return nil, err
		}
	}
	if err := s.write(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an event and returns its title. For a recurring event
// SpanThisOnly skips only the next upcoming occurrence.
func (s *EventStore) Delete(ctx context.Context, id string, span Span) (string, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return "", err
	}
	e, err := s.read(key)
	if err != nil {
		return "", err
	}
	if err := s.checkWritable(e.Calendar); err != nil {
		return "", err
	}

	if e.Recurrence != nil && span == SpanThisOnly {
		next, err := recurrence.Next(e.Recurrence, e.Start.Time, time.Now())
		if err != nil {
			return "", err
		}
		if next.IsZero() {
			return "", fmt.Errorf("event %q: series has no upcoming occurrence", id)
		}
		if err := s.SkipOccurrence(ctx, id, next); err != nil {
			return "", err
		}
		return e.Title, nil
	}

	if err := s.d.Erase(key); err != nil {
		return "", err
	}
	return e.Title, nil
}

// Copy duplicates an event into a target calendar, optionally shifting it
// to a new start while preserving its duration.
func (s *EventStore) Copy(ctx context.Context, id, targetCalendar string, newStart *time.Time) (*event.Event, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if targetCalendar == "" {
		targetCalendar = src.Calendar
	}

	dup := *src
	dup.ID = ""
	dup.Calendar = targetCalendar
	dup.Created = temporal.Timestamp{Time: time.Now()}
	if newStart != nil {
		span := src.Duration()
		dup.Start = temporal.Timestamp{Time: *newStart}
		dup.End = temporal.Timestamp{Time: newStart.Add(span)}
	}
	if err := s.Create(ctx, &dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

// SkipOccurrence removes a single occurrence date from a series.
func (s *EventStore) SkipOccurrence(ctx context.Context, id string, date time.Time) error {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return err
	}
	e, err := s.read(key)
	if err != nil {
		return err
	}
	if e.Recurrence == nil {
		return fmt.Errorf("event %q: %w", id, ErrNotRecurring)
	}
	if err := s.checkWritable(e.Calendar); err != nil {
		return err
	}
	if e.Skipped(date) {
		return nil
	}
	e.SkipDates = append(e.SkipDates, temporal.Timestamp{Time: temporal.StartOfDay(date)})
	return s.write(e)
}

// ModifyOccurrence detaches one occurrence with its own fields.
func (s *EventStore) ModifyOccurrence(ctx context.Context, id string, date time.Time, patch EventPatch) (*event.Event, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := s.read(key)
	if err != nil {
		return nil, err
	}
	if e.Recurrence == nil {
		return nil, fmt.Errorf("event %q: %w", id, ErrNotRecurring)
	}
	if err := s.checkWritable(e.Calendar); err != nil {
		return nil, err
	}

	o := event.Override{Date: temporal.Timestamp{Time: temporal.StartOfDay(date)}}
	if existing, ok := e.OverrideFor(date); ok {
		o = existing
	}
	if patch.Title != nil {
		o.Title = patch.Title
	}
	if patch.Start != nil {
		o.Start = &temporal.Timestamp{Time: *patch.Start}
	}
	if patch.End != nil {
		o.End = &temporal.Timestamp{Time: *patch.End}
	}
	if patch.Notes != nil {
		o.Notes = patch.Notes
	}

	kept := e.Overrides[:0]
	for _, existing := range e.Overrides {
		if !existing.Date.SameDay(date) {
			kept = append(kept, existing)
		}
	}
	e.Overrides = append(kept, o)
	if err := s.write(e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListOccurrences materializes a series inside the window, honoring skips
// and detached instances. A one-off event yields its single occurrence.
func (s *EventStore) ListOccurrences(ctx context.Context, id string, from, to time.Time, limit int) ([]event.Occurrence, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return event.Occurrences(e, from, to, limit)
}

// Calendars returns all known calendar names.
func (s *EventStore) Calendars(ctx context.Context) ([]Calendar, error) {
	index, err := loadCalendarIndex(s.basePath)
	if err != nil {
		return nil, err
	}
	for key := range s.d.Keys(ctx.Done()) {
		if pk, ok := parseKey(key); ok && pk.domain == domainEvents {
			if _, seen := index[pk.group]; !seen {
				index[pk.group] = Calendar{Name: pk.group}
			}
		}
	}
	list := make([]Calendar, 0, len(index))
	for _, meta := range index {
		list = append(list, meta)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// EnsureCalendar records a calendar name in the index.
func (s *EventStore) EnsureCalendar(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("store: calendar name required")
	}
	index, err := loadCalendarIndex(s.basePath)
	if err != nil {
		return err
	}
	if _, ok := index[name]; ok {
		return nil
	}
	index[name] = Calendar{Name: name}
	return saveCalendarIndex(s.basePath, index)
}

// RemoveCalendar drops a calendar and every event in it.
func (s *EventStore) RemoveCalendar(ctx context.Context, name string) error {
	index, err := loadCalendarIndex(s.basePath)
	if err != nil {
		return err
	}
	meta, ok := index[name]
	if !ok {
		return fmt.Errorf("calendar %q: %w", name, ErrNotFound)
	}
	if meta.Protected {
		return fmt.Errorf("calendar %q: %w", name, ErrImmutable)
	}
	for key := range s.d.Keys(ctx.Done()) {
		if pk, pok := parseKey(key); pok && pk.domain == domainEvents && pk.group == name {
			if err := s.d.Erase(key); err != nil {
				return err
			}
		}
	}
	delete(index, name)
	return saveCalendarIndex(s.basePath, index)
}

// SetProtected toggles the read-only flag on a calendar.
func (s *EventStore) SetProtected(name string, protected bool) error {
	index, err := loadCalendarIndex(s.basePath)
	if err != nil {
		return err
	}
	meta, ok := index[name]
	if !ok {
		return fmt.Errorf("calendar %q: %w", name, ErrNotFound)
	}
	meta.Protected = protected
	index[name] = meta
	return saveCalendarIndex(s.basePath, index)
}
