package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// glyphs are the board characters for each tile.
var glyphs = map[sokoban.Tile]rune{
	sokoban.TileNone:           ' ',
	sokoban.TileWall:           '#',
	sokoban.TileFloor:          ' ',
	sokoban.TileCrate:          '$',
	sokoban.TileDiamond:        '.',
	sokoban.TileKeeper:         '@',
	sokoban.TileCrateOnDiamond: '*',
}

// Palette assigns screen colors to tiles and the HUD.
type Palette struct {
	tiles map[sokoban.Tile]core.Color
	HUD   core.Color
}

// NewPalette builds a palette from theme color names.
// Unknown names fall back to the terminal default color.
func NewPalette(theme config.ThemeConfig) Palette {
	color := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}
	return Palette{
		tiles: map[sokoban.Tile]core.Color{
			sokoban.TileWall:           color(theme.Wall),
			sokoban.TileFloor:          color(theme.Floor),
			sokoban.TileCrate:          color(theme.Crate),
			sokoban.TileDiamond:        color(theme.Diamond),
			sokoban.TileKeeper:         color(theme.Keeper),
			sokoban.TileCrateOnDiamond: color(theme.CrateOnDiamond),
		},
		HUD: color(theme.HUD),
	}
}

// Glyph returns the character and color a tile is drawn with.
func (p Palette) Glyph(t sokoban.Tile) (rune, core.Color) {
	return glyphs[t], p.tiles[t]
}

// DrawBoard draws the merged view of level with its top-left corner at (x0, y0).
func DrawBoard(dst *core.Screen, level *sokoban.Level, p Palette, x0, y0 int) {
	for pt, t := range level.Tiles() {
		r, c := p.Glyph(t)
		dst.SetColored(x0+pt.X, y0+pt.Y, r, c)
	}
}
