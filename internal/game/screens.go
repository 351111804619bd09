package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	screenBackground = color.RGBA{16, 16, 24, 255}
	panelColor       = color.RGBA{0, 0, 0, 180}
	titleColor       = color.RGBA{255, 220, 80, 255}
	bodyColor        = color.RGBA{220, 220, 220, 255}
)

var welcomeLines = []string{
	"MAZECASTER",
	"",
	"Find the key, then reach the goal.",
	"W/S or arrows: move   A/D: turn",
	"M: minimap   +/-: volume   Esc: quit",
	"",
	"Press Enter to start",
}

func (g *Game) drawWelcome(screen *ebiten.Image) {
	screen.Fill(screenBackground)
	drawCenteredLines(screen, welcomeLines)
}

func (g *Game) drawWin(screen *ebiten.Image) {
	w, h := g.config.GetScreenWidth(), g.config.GetScreenHeight()
	vector.DrawFilledRect(screen, 0, float32(h)/3, float32(w), float32(h)/3, panelColor, false)
	drawCenteredLines(screen, []string{
		"YOU ESCAPED!",
		"",
		fmt.Sprintf("Time: %.1fs", g.ctx.Elapsed),
		"Press Enter to play again",
	})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	key := "missing"
	if g.session.Key.Collected {
		key = "found"
	}
	h := g.config.GetScreenHeight()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Key: %s  Volume: %d%%", key, int(g.ctx.Volume*100+0.5)), 8, h-20)
}

func (g *Game) drawFPS(screen *ebiten.Image) {
	metrics := g.threading.GetPerformanceMetrics()
	msg := fmt.Sprintf("FPS: %.0f  TPS: %.0f  cast: %.2fms", ebiten.ActualFPS(), ebiten.ActualTPS(),
		float64(metrics.AverageRaycast.Microseconds())/1000)
	ebitenutil.DebugPrintAt(screen, msg, g.config.GetScreenWidth()-len(msg)*6-8, 4)
}

// drawCenteredLines draws lines centered on the screen with the 7x13 bitmap
// font; the first line uses the title color.
func drawCenteredLines(screen *ebiten.Image, lines []string) {
	face := basicfont.Face7x13
	bounds := screen.Bounds()
	lineHeight := face.Metrics().Height.Ceil() + 4
	y := bounds.Dy()/2 - len(lines)*lineHeight/2 + face.Ascent

	for i, line := range lines {
		c := bodyColor
		if i == 0 {
			c = titleColor
		}
		x := (bounds.Dx() - font.MeasureString(face, line).Round()) / 2
		ebitext.Draw(screen, line, face, x, y, c)
		y += lineHeight
	}
}
