package preview

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/regions/internal/painter"
)

const (
	headerHeight = 1
	footerHeight = 2
	infoWidth    = 36
)

// View draws the painting, the optional info panel and the status lines.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" regions ─ " + m.painter.Params().Palette.Name + " ")

	contentWidth := max(m.width, 10)
	contentHeight := max(m.height-headerHeight-footerHeight, 2)

	canvasWidth := contentWidth
	var info string
	if m.showInfo {
		stats := m.painter.Stats()
		stats.Paused = m.paused
		info = boxStyle.Width(infoWidth).Render(strings.Join(stats.Lines(), "\n"))
		canvasWidth = max(contentWidth-lipgloss.Width(info)-1, 4)
	}

	pixels := renderHalfBlocks(m.canvasImage(canvasWidth, contentHeight), canvasWidth, contentHeight)
	body := lipgloss.NewStyle().Width(canvasWidth).Height(contentHeight).Render(strings.Join(pixels, "\n"))
	if info != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", info)
	}

	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.bar.ViewAs(m.painter.Progress()),
		lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+m.status+" "), m.renderHelp()),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Render(ui)
}

// canvasImage returns the painting at terminal resolution with the current
// grain applied.
func (m Model) canvasImage(cols, rows int) image.Image {
	pix := m.painter.Pixmap()
	w, h := fitCells(pix.Bounds(), cols, rows)
	if w == 0 {
		return pix
	}
	return m.painter.Image(painter.ImageOptions{Width: w, Height: h, Grain: m.grain})
}

func (m Model) renderHelp() string {
	keys := []string{
		"d density",
		"f frame",
		"n/b grain",
		"↑↓ size",
		"p pause",
		"s save",
		"i info",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
