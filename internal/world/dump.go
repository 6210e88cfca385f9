package world

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"
)

var (
	dumpWall  = color.Style{color.FgDarkGray}
	dumpFloor = color.Style{color.FgGray}
	dumpDoor  = color.Style{color.FgYellow, color.OpBold}
	dumpItem  = color.Style{color.FgGreen, color.OpBold}
	dumpEnemy = color.Style{color.FgRed, color.OpBold}
	dumpHero  = color.Style{color.FgLightYellow, color.OpBold}
)

// Dump writes the map as text, one row per line, covering the region and its
// wall border. The topmost layer wins per cell: hero, enemy, item, door,
// floor, wall. Empty cells print as a space.
func Dump(w io.Writer, m *Map, hero Pos, colored bool) error {
	bw := bufio.NewWriter(w)
	for y := -1; y < m.size+1; y++ {
		for x := -1; x < m.size+1; x++ {
			glyph, style := dumpCell(m, Pos{X: x, Y: y}, hero)
			s := string(glyph)
			if colored {
				s = style.Sprint(s)
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func dumpCell(m *Map, p, hero Pos) (rune, color.Style) {
	if p == hero {
		return '@', dumpHero
	}
	if t, ok := m.At(LayerEnemy, p); ok {
		return t.Glyph(), dumpEnemy
	}
	if t, ok := m.At(LayerItem, p); ok {
		return t.Glyph(), dumpItem
	}
	if _, ok := m.At(LayerDoor, p); ok {
		return '>', dumpDoor
	}
	if _, ok := m.At(LayerFloor, p); ok {
		return '.', dumpFloor
	}
	if _, ok := m.At(LayerWall, p); ok {
		return '#', dumpWall
	}
	return ' ', nil
}

// Legend writes a one-line key for Dump output.
func Legend(w io.Writer) error {
	_, err := fmt.Fprintln(w, "@ hero  > door  # wall  . floor  lowercase enemy  symbols item")
	return err
}
