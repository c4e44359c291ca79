package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// saveFileName is the document written inside each slot directory.
const saveFileName = "game_save.json"

// formatVersion is stamped into every written document.
const formatVersion = "2.0"

var (
	ErrSaveNotFound = errors.New("save not found")
	ErrCorruptSave  = errors.New("corrupted save file")
	ErrMissingKey   = errors.New("encoded save is missing its key")
)

// Document is the on-disk save format. Key is present iff Encoded is true.
type Document struct {
	Version string         `json:"version"`
	SavedAt string         `json:"saved_at"`
	Encoded bool           `json:"encoded"`
	Key     int64          `json:"key,omitempty"`
	Data    map[string]any `json:"data"`
}

// Info describes a save slot for listing.
type Info struct {
	Name    string
	SavedAt string
	Version string
}

// Manager reads and writes save slots under a root directory. Each slot is a
// directory named after the game holding a single document.
type Manager struct {
	root string
	rng  *rand.Rand
}

// NewManager creates a manager, ensuring the save root exists.
func NewManager(root string, rng *rand.Rand) (*Manager, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	return &Manager{root: root, rng: rng}, nil
}

// SaveGame writes the game tree to the named slot. When encode is true every
// numeric leaf is scrambled with a fresh key stored alongside the payload.
// The write goes through a temporary file and a rename so an interrupted
// save never leaves a torn document behind.
func (m *Manager) SaveGame(name string, data map[string]any, encode bool) error {
	slotDir := filepath.Join(m.root, name)
	if err := os.MkdirAll(slotDir, 0o755); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}

	doc := Document{
		Version: formatVersion,
		SavedAt: time.Now().Format(time.RFC3339),
		Encoded: encode,
		Data:    data,
	}
	if encode {
		doc.Key = GenerateKey(m.rng)
		doc.Data = Encode(data, doc.Key).(map[string]any)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}

	tmp, err := os.CreateTemp(slotDir, "save-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(slotDir, saveFileName)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// LoadGame reads and decodes the named slot. The in-memory state of the
// caller is never touched on failure.
func (m *Manager) LoadGame(name string) (map[string]any, error) {
	path := filepath.Join(m.root, name, saveFileName)

	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSaveNotFound
		}
		return nil, fmt.Errorf("read save: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if doc.Data == nil {
		return nil, ErrCorruptSave
	}

	if !doc.Encoded {
		return doc.Data, nil
	}
	if doc.Key == 0 {
		return nil, ErrMissingKey
	}
	return Decode(doc.Data, doc.Key).(map[string]any), nil
}

// ListSaves returns every slot holding a readable document.
func (m *Manager) ListSaves() []Info {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil
	}

	var saves []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		payload, err := os.ReadFile(filepath.Join(m.root, entry.Name(), saveFileName))
		if err != nil {
			continue
		}
		var doc Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			continue
		}
		saves = append(saves, Info{
			Name:    entry.Name(),
			SavedAt: doc.SavedAt,
			Version: doc.Version,
		})
	}
	return saves
}

// DeleteSave removes a slot and everything in it.
func (m *Manager) DeleteSave(name string) error {
	slotDir := filepath.Join(m.root, name)
	if _, err := os.Stat(slotDir); os.IsNotExist(err) {
		return ErrSaveNotFound
	}
	return os.RemoveAll(slotDir)
}

// MostRecentSave returns the slot with the newest timestamp, or "" when no
// saves exist.
func (m *Manager) MostRecentSave() string {
	saves := m.ListSaves()
	if len(saves) == 0 {
		return ""
	}
	sort.Slice(saves, func(i, j int) bool {
		return saves[i].SavedAt > saves[j].SavedAt
	})
	return saves[0].Name
}
