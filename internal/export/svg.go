package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/odelab/internal/dynamo"
)

const (
	NumericColor  = "#1f77b4"
	AnalyticColor = "#d62728"
)

type bounds struct {
	minX, maxX, minY, maxY float64
}

func trajectoryBounds(trajs ...dynamo.Trajectory) (bounds, bool) {
	var b bounds
	found := false
	for _, traj := range trajs {
		for _, p := range traj {
			if !p.IsFinite() {
				continue
			}
			if !found {
				b = bounds{p.X, p.X, p.Y, p.Y}
				found = true
				continue
			}
			b.minX = min(b.minX, p.X)
			b.maxX = max(b.maxX, p.X)
			b.minY = min(b.minY, p.Y)
			b.maxY = max(b.maxY, p.Y)
		}
	}
	if !found {
		return b, false
	}

	// 10% padding
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.1
	b.maxX += rangeX * 0.1
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	return b, true
}

func (b bounds) project(p dynamo.Sample, width, height int) (float64, float64) {
	x := (p.X - b.minX) / (b.maxX - b.minX) * float64(width)
	y := float64(height) - (p.Y-b.minY)/(b.maxY-b.minY)*float64(height)
	return x, y
}

// SVG draws the analytic curve as a path and the numeric samples as markers on
// shared axes. Non-finite samples are skipped. It returns "" when neither
// trajectory has a finite sample.
func SVG(numeric, analytic dynamo.Trajectory, width, height int) string {
	b, ok := trajectoryBounds(numeric, analytic)
	if !ok {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	started := false
	for _, p := range analytic {
		if !p.IsFinite() {
			continue
		}
		x, y := b.project(p, width, height)
		if !started {
			sb.WriteString(fmt.Sprintf(`<path class="analytic" fill="none" stroke="%s" stroke-width="2" d="M%.1f,%.1f`, AnalyticColor, x, y))
			started = true
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	if started {
		sb.WriteString("\"/>\n")
	}

	sb.WriteString(fmt.Sprintf(`<g class="numeric" fill="%s">
`, NumericColor))
	for _, p := range numeric {
		if !p.IsFinite() {
			continue
		}
		x, y := b.project(p, width, height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3"/>
`, x, y))
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}
