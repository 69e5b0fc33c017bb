package ui

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

const (
	statusSimulationRunning = "Simulation Running"
	statusSimulationStopped = "Simulation Stopped"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Status     string
	LastError  error
	Simulating bool

	ScenePath  string
	Properties scene.Properties

	LeftPanelVisible  bool
	RightPanelVisible bool
	DarkMode          bool
	ShowGrid          bool
	AppVersion        string

	Logs []string

	LastUpdated time.Time
}

// SimulationStatus returns the label shown next to the Run/Stop button.
func (s StateSnapshot) SimulationStatus() string {
	if s.Simulating {
		return statusSimulationRunning
	}
	return statusSimulationStopped
}

// AppState tracks the mutable UI state shared between the Gio event loop and
// background goroutines such as the file picker and the file watcher. Scene
// data itself lives in scene.Store.
type AppState struct {
	mu sync.RWMutex

	status     string
	lastError  error
	simulating bool

	scenePath  string
	sceneID    uuid.UUID
	properties scene.Properties

	leftPanelVisible  bool
	rightPanelVisible bool
	darkMode          bool
	showGrid          bool
	appVersion        string

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	return &AppState{
		logLimit:          200,
		status:            "Ready",
		leftPanelVisible:  true,
		rightPanelVisible: true,
		showGrid:          true,
		appVersion:        "dev",
		lastUpdated:       time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Status:            s.status,
		LastError:         s.lastError,
		Simulating:        s.simulating,
		ScenePath:         s.scenePath,
		Properties:        s.properties,
		LeftPanelVisible:  s.leftPanelVisible,
		RightPanelVisible: s.rightPanelVisible,
		DarkMode:          s.darkMode,
		ShowGrid:          s.showGrid,
		AppVersion:        s.appVersion,
		Logs:              logCopy,
		LastUpdated:       s.lastUpdated,
	}
}

// SetStatus updates the user-facing status message.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastUpdated = time.Now()
}

// SetError stores the latest error surfaced to the UI and mirrors it in the
// status line. A nil error only clears the stored error.
func (s *AppState) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	if err != nil {
		s.status = err.Error()
	}
	s.lastUpdated = time.Now()
}

// ToggleSimulation flips the run flag and returns the new value.
func (s *AppState) ToggleSimulation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulating = !s.simulating
	s.lastUpdated = time.Now()
	return s.simulating
}

// SetScene records the file the scene was last loaded from or saved to,
// along with its document id.
func (s *AppState) SetScene(path string, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenePath = path
	s.sceneID = id
	s.lastUpdated = time.Now()
}

// Scene returns the current scene file and document id. The path is empty
// for a scene that was never saved.
func (s *AppState) Scene() (string, uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scenePath, s.sceneID
}

// SetProperties stores the report for the properties panel.
func (s *AppState) SetProperties(p scene.Properties) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.properties == p {
		return
	}
	s.properties = p
	s.lastUpdated = time.Now()
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = time.Now()
}

// SetAppVersion records the running application version string.
func (s *AppState) SetAppVersion(version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version == "" {
		version = "dev"
	}
	s.appVersion = version
	s.lastUpdated = time.Now()
}

// SetLeftPanelVisible toggles the component palette.
func (s *AppState) SetLeftPanelVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leftPanelVisible == visible {
		return
	}
	s.leftPanelVisible = visible
	s.lastUpdated = time.Now()
}

// SetRightPanelVisible toggles the properties panel.
func (s *AppState) SetRightPanelVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rightPanelVisible == visible {
		return
	}
	s.rightPanelVisible = visible
	s.lastUpdated = time.Now()
}

// SetDarkMode switches between the light and dark palettes.
func (s *AppState) SetDarkMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.darkMode == enabled {
		return
	}
	s.darkMode = enabled
	s.lastUpdated = time.Now()
}

// SetShowGrid toggles the canvas grid.
func (s *AppState) SetShowGrid(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.showGrid == show {
		return
	}
	s.showGrid = show
	s.lastUpdated = time.Now()
}
