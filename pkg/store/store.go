package store

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

const (
	layoutISO = "2006-01-02"

	domainEvents    = "ev"
	domainReminders = "rm"

	calendarsIndexFile = ".calendars.json"
)

// Store is the local calendar and task database. Events and Reminders
// share one diskv tree, segmented by a domain prefix in the key.
type Store struct {
	Events    *EventStore
	Reminders *ReminderStore
}

// Load opens the store at the configured base path. A nil cfg falls back
// to LoadConfig.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	d := diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})
	return &Store{
		Events:    &EventStore{d: d, basePath: basePath},
		Reminders: &ReminderStore{d: d, basePath: basePath},
	}, nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// recordKey makes `domain-group-date-id` where group is the Base64-encoded
// calendar or list name, keeping arbitrary names filesystem safe.
func recordKey(domain, group, date, id string) string {
	return fmt.Sprintf("%s-%s-%s-%s", domain, toGroup(group), date, id)
}

type parsedKey struct {
	domain string
	group  string
	id     string
}

func parseKey(key string) (parsedKey, bool) {
	pk := keyToPathTransform(key)
	// domain, group, year, month, day
	if len(pk.Path) != 5 {
		return parsedKey{}, false
	}
	return parsedKey{
		domain: pk.Path[0],
		group:  fromGroup(pk.Path[1]),
		id:     pk.FileName,
	}, true
}

func toGroup(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func fromGroup(s string) string {
	group, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromGroup: %s", err)
	}
	return string(group)
}

func newID() string {
	return uuid.NewString()[:8]
}

// Calendar is one logical calendar and its per-calendar settings, as
// recorded in the index file.
type Calendar struct {
	Name      string `json:"name"`
	Protected bool   `json:"protected,omitempty"`
}

func loadCalendarIndex(basePath string) (map[string]Calendar, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(basePath, calendarsIndexFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]Calendar), nil
		}
		return nil, err
	}
	var list []Calendar
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	index := make(map[string]Calendar, len(list))
	for _, meta := range list {
		if meta.Name == "" {
			continue
		}
		index[meta.Name] = meta
	}
	return index, nil
}

func saveCalendarIndex(basePath string, index map[string]Calendar) error {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return err
	}
	list := make([]Calendar, 0, len(index))
	for _, meta := range index {
		list = append(list, meta)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(basePath, calendarsIndexFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
