// Package prompts manages the LLM prompt templates. Templates live in a
// YAML file keyed by prompt kind and subscription tier and can be edited
// without restarting the bot; compiled-in defaults cover every kind so a
// missing or broken file never breaks a flow.
package prompts

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Prompt kinds. Each maps to one bot flow.
const (
	KindHealthAnalysis = "health_analysis"
	KindChatGeneral    = "chat_general"
	KindChatNutrition  = "chat_nutrition"
	KindChatBehavior   = "chat_behavior"
	KindChatEmergency  = "chat_emergency"
)

// Template is one prompt configuration. User may contain {placeholders}
// filled via Render.
type Template struct {
	System      string  `yaml:"system"`
	User        string  `yaml:"user"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

// Render substitutes {name} placeholders in the user template.
func (t Template) Render(vars map[string]string) string {
	out := t.User
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

type promptFile struct {
	Version string                         `yaml:"version"`
	Prompts map[string]map[string]Template `yaml:"prompts"`
}

// Status describes the manager for the admin API.
type Status struct {
	Version   string    `json:"version"`
	Path      string    `json:"path"`
	LoadedAt  time.Time `json:"loaded_at"`
	Templates int       `json:"templates"`
	Watching  bool      `json:"watching"`
	FromFile  bool      `json:"from_file"`
}

// Manager holds the current template set and swaps it atomically on reload.
type Manager struct {
	path string

	mu        sync.RWMutex
	version   string
	templates map[string]map[string]Template
	loadedAt  time.Time
	fromFile  bool
	watching  bool

	now func() time.Time
}

// NewManager loads the file at path on top of the compiled-in defaults.
// An empty path or a missing file leaves the defaults active.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path, now: time.Now}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns the template for a prompt kind and tier. Tier falls back to
// "free", and unknown kinds fall back to the compiled-in default for the
// tier, so callers always get something usable.
func (m *Manager) Get(kind, tier string) Template {
	if tier == "" {
		tier = "free"
	}

	m.mu.RLock()
	byTier, ok := m.templates[kind]
	m.mu.RUnlock()

	if ok {
		if t, ok := byTier[tier]; ok {
			return t
		}
		if t, ok := byTier["free"]; ok {
			return t
		}
	}
	return fallbackTemplate(tier)
}

// Reload re-reads the file and swaps the template set. A missing file is
// not an error; a malformed one is, and the previous set stays active.
func (m *Manager) Reload() error {
	version := defaultVersion
	templates := defaultTemplates()
	fromFile := false

	if m.path != "" {
		raw, err := os.ReadFile(m.path)
		switch {
		case err == nil:
			var pf promptFile
			if err := yaml.Unmarshal(raw, &pf); err != nil {
				return fmt.Errorf("parse prompts file %s: %w", m.path, err)
			}
			for kind, byTier := range pf.Prompts {
				if templates[kind] == nil {
					templates[kind] = map[string]Template{}
				}
				for tier, t := range byTier {
					templates[kind][tier] = t
				}
			}
			if pf.Version != "" {
				version = pf.Version
			}
			fromFile = true
		case os.IsNotExist(err):
			// defaults stay active
		default:
			return fmt.Errorf("read prompts file %s: %w", m.path, err)
		}
	}

	m.mu.Lock()
	m.version = version
	m.templates = templates
	m.loadedAt = m.now()
	m.fromFile = fromFile
	m.mu.Unlock()
	return nil
}

// Status reports the current manager state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, byTier := range m.templates {
		n += len(byTier)
	}
	return Status{
		Version:   m.version,
		Path:      m.path,
		LoadedAt:  m.loadedAt,
		Templates: n,
		Watching:  m.watching,
		FromFile:  m.fromFile,
	}
}
