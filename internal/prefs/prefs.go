// Package prefs persists per-user UI preferences as YAML files.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLinesSortBy   = "description"
	DefaultOutcomeFilter = "lost"
	DefaultPhonebookSort = "name"
	DefaultPhonebookKind = "all"
	maxReadNotifications = 500
)

type Preferences struct {
	LinesSortBy         string   `yaml:"telephoneLinesSortBy,omitempty"`
	AnnouncementSortBy  string   `yaml:"telephoneAnnouncementSortBy,omitempty"`
	QueuesOutcomeFilter string   `yaml:"queuesOutcomeFilter,omitempty"`
	PhonebookSortBy     string   `yaml:"phonebookSortBy,omitempty"`
	PhonebookKind       string   `yaml:"phonebookContactType,omitempty"`
	ExpandedQueues      []string `yaml:"expandedQueues,omitempty"`
	ReadNotifications   []string `yaml:"readNotifications,omitempty"`
}

// Defaults returns the preferences of a user who never saved any.
func Defaults() Preferences {
	return Preferences{
		LinesSortBy:         DefaultLinesSortBy,
		AnnouncementSortBy:  DefaultLinesSortBy,
		QueuesOutcomeFilter: DefaultOutcomeFilter,
		PhonebookSortBy:     DefaultPhonebookSort,
		PhonebookKind:       DefaultPhonebookKind,
	}
}

func (p *Preferences) fillDefaults() {
	d := Defaults()
	if p.LinesSortBy == "" {
		p.LinesSortBy = d.LinesSortBy
	}
	if p.AnnouncementSortBy == "" {
		p.AnnouncementSortBy = d.AnnouncementSortBy
	}
	if p.QueuesOutcomeFilter == "" {
		p.QueuesOutcomeFilter = d.QueuesOutcomeFilter
	}
	if p.PhonebookSortBy == "" {
		p.PhonebookSortBy = d.PhonebookSortBy
	}
	if p.PhonebookKind == "" {
		p.PhonebookKind = d.PhonebookKind
	}
}

// IsRead reports whether notification id was marked read locally.
func (p Preferences) IsRead(id string) bool {
	for _, r := range p.ReadNotifications {
		if r == id {
			return true
		}
	}
	return false
}

// SetRead records or clears the read flag of notification id.
func (p *Preferences) SetRead(id string, read bool) {
	out := p.ReadNotifications[:0]
	for _, r := range p.ReadNotifications {
		if r != id {
			out = append(out, r)
		}
	}
	if read {
		out = append(out, id)
	}
	if len(out) > maxReadNotifications {
		out = out[len(out)-maxReadNotifications:]
	}
	p.ReadNotifications = out
}

// Store reads and writes one YAML file per user under dir.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func (s *Store) path(user string) string {
	name := unsafeChars.ReplaceAllString(user, "_")
	if name == "" {
		name = "default"
	}
	return filepath.Join(s.dir, "prefs-"+name+".yaml")
}

// Load returns the user's preferences. A missing file yields Defaults.
func (s *Store) Load(user string) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(user)
}

func (s *Store) load(user string) (Preferences, error) {
	data, err := os.ReadFile(s.path(user))
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}
	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs %s: %w", s.path(user), err)
	}
	p.fillDefaults()
	return p, nil
}

func (s *Store) Save(user string, p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(user, p)
}

func (s *Store) save(user string, p Preferences) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	path := s.path(user)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Update loads, mutates and saves the user's preferences atomically with
// respect to other Store calls.
func (s *Store) Update(user string, fn func(*Preferences)) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(user)
	if err != nil {
		return p, err
	}
	fn(&p)
	return p, s.save(user, p)
}
