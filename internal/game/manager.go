package game

import (
	"fmt"
	"image/color"
	"reflect"

	"chosenoffset.com/vspaces/internal/logger"
	"chosenoffset.com/vspaces/internal/render"
	"chosenoffset.com/vspaces/internal/space"
)

// Manager owns the open space and implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Catalog      *space.Catalog
	Session      *Session

	opts      SessionOptions
	spacesDir string
	changes   <-chan struct{}
}

// NewManager creates a manager with no space open.
func NewManager(r render.Renderer, input render.InputManager, catalog *space.Catalog, width, height int, opts SessionOptions) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Renderer:     r,
		InputMgr:     input,
		Catalog:      catalog,
		opts:         opts,
	}
}

// WatchCatalog makes the manager reload the catalog from dir whenever
// changes delivers a value.
func (m *Manager) WatchCatalog(dir string, changes <-chan struct{}) {
	m.spacesDir = dir
	m.changes = changes
}

// Open closes the current space, if any, and opens the space with the given id.
func (m *Manager) Open(id string) error {
	def, err := m.Catalog.Get(id)
	if err != nil {
		return err
	}
	m.open(def)
	return nil
}

func (m *Manager) open(def space.Definition) {
	m.Close()
	m.Session = NewSession(def, m.InputMgr, m.opts)
	logger.L().Info("space opened",
		"id", def.ID,
		"view", string(def.View),
		"speed", def.Movement.Speed,
		"obstacles", len(def.Obstacles))
}

// Close closes the open space.
func (m *Manager) Close() {
	if m.Session == nil {
		return
	}
	m.Session.Close()
	logger.L().Info("space closed", "id", m.Session.Def.ID)
	m.Session = nil
}

// Update implements render.Game.
func (m *Manager) Update() error {
	if m.InputMgr != nil && m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		m.Close()
		return render.ErrQuit
	}

	select {
	case <-m.changes:
		m.reload()
	default:
	}

	if m.Session != nil {
		m.Session.Update()
	}
	return nil
}

// reload rebuilds the catalog and reopens the current space if its
// definition changed. Files that fail to load are reported and skipped.
func (m *Manager) reload() {
	catalog, err := space.LoadCatalog(m.spacesDir)
	if err != nil {
		logger.L().Warn("some space definitions were not loaded", "error", err)
	}
	m.Catalog = catalog
	logger.L().Info("space catalog reloaded", "spaces", catalog.Len())

	if m.Session == nil {
		return
	}
	current := m.Session.Def
	def, err := catalog.Get(current.ID)
	if err != nil {
		logger.L().Warn("open space no longer defined, keeping it", "id", current.ID)
		return
	}
	if !reflect.DeepEqual(def, current) {
		// Keys held now will not be pressed again, so the new tracker
		// starts from the old one's state.
		intent, facing := m.Session.Tracker.Intent(), m.Session.Facing()
		m.open(def)
		m.Session.Tracker.Restore(intent, facing)
	}
}

// Draw implements render.Game.
func (m *Manager) Draw(screen render.Image) {
	if m.Session == nil {
		screen.Fill(color.RGBA{20, 20, 30, 255})
		m.Renderer.DrawText(screen, "No space open", 20, 20, color.RGBA{255, 100, 100, 255}, 1.0)
		return
	}
	m.Session.Draw(screen, m.Renderer)
}

// Layout implements render.Game.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Describe lists the catalog for the command line.
func Describe(c *space.Catalog) []string {
	lines := make([]string, 0, c.Len())
	for _, d := range c.All() {
		lines = append(lines, fmt.Sprintf("%-16s %-13s %s", d.ID, d.View, d.Description))
	}
	return lines
}
