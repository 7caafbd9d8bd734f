package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mars-rover/game/engine"
	"github.com/wricardo/mars-rover/game/service"
)

var (
	ErrScenarioNotFound = service.ErrScenarioNotFound
	ErrInvalidScenario  = service.ErrInvalidScenario
)

// DefaultScenarioName is loaded as the default when present
const DefaultScenarioName = "classic"

// Supported scenario file extensions, in lookup order
var scenarioExts = []string{".json", ".hcl"}

// Manager handles scenario loading and caching
type Manager struct {
	scenarioDir     string
	defaultScenario *engine.SimulationConfig
	scenarios       map[string]*engine.SimulationConfig
	mu              sync.RWMutex
}

// NewManager creates a new scenario manager
func NewManager(scenarioDir string) (*Manager, error) {
	// Ensure scenario directory exists
	info, err := os.Stat(scenarioDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario directory does not exist: %s", scenarioDir)
		}
		return nil, fmt.Errorf("failed to stat scenario directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scenario path is not a directory: %s", scenarioDir)
	}

	m := &Manager{
		scenarioDir: scenarioDir,
		scenarios:   make(map[string]*engine.SimulationConfig),
	}
	m.defaultScenario = m.findDefault()

	return m, nil
}

// Dir returns the scenario directory
func (m *Manager) Dir() string {
	return m.scenarioDir
}

// LoadScenario loads a scenario by name. The name may carry a .json or .hcl
// extension; without one, JSON is tried before HCL.
func (m *Manager) LoadScenario(name string) (*engine.SimulationConfig, error) {
	m.mu.RLock()
	// Check cache first
	if config, exists := m.scenarios[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(name)
}

func (m *Manager) loadLocked(name string) (*engine.SimulationConfig, error) {
	// Double-check after acquiring write lock
	if config, exists := m.scenarios[name]; exists {
		return config, nil
	}

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	config, err := decodeScenario(path, data)
	if err != nil {
		return nil, err
	}
	if config.Name == "" {
		config.Name = scenarioID(path)
	}

	if err := engine.ValidateSimulationConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	m.scenarios[name] = config
	return config, nil
}

// resolve maps a scenario name to a file in the scenario directory
func (m *Manager) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: invalid scenario name %q", ErrScenarioNotFound, name)
	}

	candidates := []string{name}
	if !isScenarioFile(name) {
		candidates = candidates[:0]
		for _, ext := range scenarioExts {
			candidates = append(candidates, name+ext)
		}
	}

	for _, filename := range candidates {
		path := filepath.Join(m.scenarioDir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrScenarioNotFound
}

// decodeScenario parses scenario data by file extension
func decodeScenario(path string, data []byte) (*engine.SimulationConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		config, err := ParseHCLScenario(path, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
		return config, nil
	default:
		var config engine.SimulationConfig
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse scenario: %w", err)
		}
		return &config, nil
	}
}

// ListScenarios returns information about all loadable scenarios
func (m *Manager) ListScenarios() ([]*service.ScenarioInfo, error) {
	entries, err := os.ReadDir(m.scenarioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var scenarios []*service.ScenarioInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !isScenarioFile(entry.Name()) {
			continue
		}

		id := scenarioID(entry.Name())
		if seen[id] {
			// Listed once even when both formats exist
			continue
		}

		config, err := m.LoadScenario(entry.Name())
		if err != nil {
			// Skip invalid scenarios
			continue
		}
		seen[id] = true

		scenarios = append(scenarios, &service.ScenarioInfo{
			Filename:    entry.Name(),
			ScenarioID:  id,
			Format:      strings.TrimPrefix(filepath.Ext(entry.Name()), "."),
			Name:        config.Name,
			Description: config.Description,
			Width:       config.Width,
			Height:      config.Height,
			Obstacles:   engine.NewObstacleField(config.Obstacles...).Len(),
			Commands:    len(engine.FilterCommands(config.Commands)),
		})
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].ScenarioID < scenarios[j].ScenarioID
	})
	return scenarios, nil
}

// GetDefault returns the default scenario
func (m *Manager) GetDefault() *engine.SimulationConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultScenario
}

// SetDefault sets the default scenario by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadScenario(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultScenario = config
	return nil
}

// RefreshCache drops cached scenarios and re-resolves the default
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.scenarios = make(map[string]*engine.SimulationConfig)
	m.mu.Unlock()

	def := m.findDefault()

	m.mu.Lock()
	m.defaultScenario = def
	m.mu.Unlock()
}

// findDefault picks classic, then the first valid scenario, then the
// built-in reference run
func (m *Manager) findDefault() *engine.SimulationConfig {
	if config, err := m.LoadScenario(DefaultScenarioName); err == nil {
		return config
	}
	if scenarios, err := m.ListScenarios(); err == nil && len(scenarios) > 0 {
		if config, err := m.LoadScenario(scenarios[0].Filename); err == nil {
			return config
		}
	}
	return engine.DefaultSimulationConfig()
}

// SaveScenario saves a scenario to disk as JSON
func (m *Manager) SaveScenario(name string, config *engine.SimulationConfig) error {
	// Validate before saving
	if err := engine.ValidateSimulationConfig(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid scenario name %q", ErrInvalidScenario, name)
	}

	id := scenarioID(name)
	path := filepath.Join(m.scenarioDir, id+".json")

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	// Update cache under every name that resolves to this file
	m.mu.Lock()
	m.scenarios[id] = config
	m.scenarios[id+".json"] = config
	m.mu.Unlock()

	return nil
}

func isScenarioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range scenarioExts {
		if ext == e {
			return true
		}
	}
	return false
}

func scenarioID(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsNotFound reports whether err means a scenario does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrScenarioNotFound)
}
