package preview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key presses and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(msg.Width-4, 10)
	case frameMsg:
		m.paint()
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "d":
			m.painter.AddDensity(densityStep)
			m.paused = false
			m.status = fmt.Sprintf("density: %v", m.painter.Stats().Density)
		case "f":
			m.painter.SetFrame(!m.painter.Frame())
			m.status = fmt.Sprintf("frame: %v", m.painter.Frame())
		case "n":
			m.grain = min(m.grain+noiseStep, 1)
			m.status = fmt.Sprintf("grain: %.2f", m.grain)
		case "b":
			m.grain = max(m.grain-noiseStep, 0)
			m.status = fmt.Sprintf("grain: %.2f", m.grain)
		case "up":
			m.resize(sizeStep)
		case "down":
			m.resize(-sizeStep)
		case "p":
			m.paused = !m.paused
			m.status = fmt.Sprintf("paused: %v", m.paused)
		case "s":
			m.save()
		case "i":
			m.showInfo = !m.showInfo
		}
	}
	return m, nil
}
