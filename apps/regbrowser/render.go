// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/regbrowser/render.go
// Summary: Cell-buffer rendering for the registry browser.

package regbrowser

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelreg/catalog"
	"github.com/framegrace/texelreg/internal/theming"
	"github.com/framegrace/texelreg/texel"
)

const highlightStyleName = "catppuccin-mocha"

// minimum and maximum width of the component list column
const (
	minListWidth = 20
	maxListWidth = 40
)

func (b *Browser) Render() [][]texel.Cell {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.width <= 0 || b.height <= 0 {
		return [][]texel.Cell{}
	}

	tm := theming.ForApp("regbrowser")
	bg := tm.GetSemanticColor("bg.base")
	base := tcell.StyleDefault.Background(bg).Foreground(tm.GetSemanticColor("text.primary"))
	muted := base.Foreground(tm.GetSemanticColor("text.muted"))
	accent := base.Foreground(tm.GetSemanticColor("accent.primary")).Bold(true)
	selected := tcell.StyleDefault.
		Background(tm.GetSemanticColor("accent.primary")).
		Foreground(tm.GetSemanticColor("text.inverse"))
	errStyle := base.Foreground(tm.GetSemanticColor("status.error"))
	okStyle := base.Foreground(tm.GetSemanticColor("status.success"))

	buf := texel.NewBuffer(b.width, b.height, base)

	switch b.state {
	case stateUnselected:
		b.renderSources(buf, base, muted, accent, selected)
		b.renderFooter(buf, muted, errStyle, okStyle, "↑/↓ select · Enter open · Esc quit")
	case stateFetching:
		src := b.sources[b.selectedSource]
		drawText(buf, 2, 0, accent, "Registry Browser")
		drawCentered(buf, b.height/2, muted, "Fetching "+src.Name+"…")
		b.renderFooter(buf, muted, errStyle, okStyle, "Esc back")
	case stateErrored:
		b.renderError(buf, accent, errStyle, muted)
		b.renderFooter(buf, muted, errStyle, okStyle, "Esc back")
	case stateLoaded:
		b.renderComponents(buf, base, muted, accent, selected, bg)
		b.renderFooter(buf, muted, errStyle, okStyle,
			"Enter copy install · y copy URL · p copy & close · Esc back")
	}

	return buf
}

// renderSources draws the registry list, launcher-style: icon, name,
// description.
func (b *Browser) renderSources(buf [][]texel.Cell, base, muted, accent, selected tcell.Style) {
	drawText(buf, 2, 0, accent, "Registry Browser")
	drawText(buf, 2, 1, muted, "Select a registry")

	for i, src := range b.sources {
		y := 3 + i
		if y >= len(buf) {
			break
		}

		text := src.Icon + "  " + src.Name
		if src.Description != "" {
			text += " - " + src.Description
		}
		text = runewidth.Truncate(text, b.width-4, "…")

		style := base
		if i == b.selectedSource {
			style = selected
			fillRow(buf, y, 2, b.width-2, selected)
		}
		drawText(buf, 2, y, style, text)
	}
}

func (b *Browser) renderError(buf [][]texel.Cell, accent, errStyle, muted tcell.Style) {
	src := b.sources[b.selectedSource]
	drawText(buf, 2, 0, accent, "Registry Browser")
	drawText(buf, 2, 2, errStyle, "Failed to load "+src.Name)

	if b.fetchErr != nil {
		y := 4
		for _, line := range wrapText(b.fetchErr.Error(), b.width-4) {
			if y >= b.height-1 {
				break
			}
			drawText(buf, 2, y, muted, line)
			y++
		}
	}
}

// renderComponents draws the component list on the left and the markdown
// detail panel on the right.
func (b *Browser) renderComponents(buf [][]texel.Cell, base, muted, accent, selected tcell.Style, bg tcell.Color) {
	src := b.sources[b.selectedSource]
	drawText(buf, 2, 0, accent, src.Name)

	listWidth := b.width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > maxListWidth {
		listWidth = maxListWidth
	}
	if listWidth > b.width-2 {
		listWidth = b.width - 2
	}

	listTop := 2
	listHeight := b.height - listTop - 1
	if listHeight < 1 {
		return
	}

	if len(b.components) == 0 {
		drawText(buf, 2, listTop, muted, "No components")
		return
	}

	// Keep the selection visible.
	start := 0
	if b.selectedComp >= listHeight {
		start = b.selectedComp - listHeight + 1
	}

	for i := start; i < len(b.components) && i-start < listHeight; i++ {
		y := listTop + i - start
		name := runewidth.Truncate(b.components[i].Name, listWidth-3, "…")
		style := base
		if i == b.selectedComp {
			style = selected
			fillRow(buf, y, 1, listWidth, selected)
		}
		drawText(buf, 2, y, style, name)
	}

	// Vertical separator
	for y := listTop; y < b.height-1; y++ {
		setCell(buf, listWidth, y, texel.Cell{Ch: '│', Style: muted})
	}

	detailX := listWidth + 2
	detailWidth := b.width - detailX - 1
	if detailWidth < 8 {
		return
	}
	comp := b.components[b.selectedComp]
	b.renderDetail(buf, detailX, listTop, detailWidth, src, comp, base, muted, accent, bg)
}

// renderDetail lays out the generated markdown: headings styled, bullets
// indented, fenced code highlighted.
func (b *Browser) renderDetail(buf [][]texel.Cell, x, y, width int, src catalog.Source, comp catalog.Component, base, muted, accent tcell.Style, bg tcell.Color) {
	md := catalog.Detail(src, comp)
	inFence := false
	fenceLang := "bash"

	for _, line := range strings.Split(md, "\n") {
		if y >= b.height-1 {
			return
		}

		switch {
		case strings.HasPrefix(line, "```"):
			if !inFence {
				if lang := strings.TrimPrefix(line, "```"); lang != "" {
					fenceLang = lang
				}
			}
			inFence = !inFence

		case inFence:
			cells := highlightLine(line, fenceLang, base, bg)
			placeCells(buf, x+2, y, width-2, cells)
			y++

		case strings.HasPrefix(line, "## "):
			drawText(buf, x, y, accent, strings.TrimPrefix(line, "## "))
			y++

		case strings.HasPrefix(line, "# "):
			drawText(buf, x, y, accent, strings.TrimPrefix(line, "# "))
			y++

		case strings.HasPrefix(line, "- "):
			text := runewidth.Truncate(line, width, "…")
			drawText(buf, x, y, base, text)
			y++

		case strings.HasPrefix(line, "Manifest: "):
			drawText(buf, x, y, muted, runewidth.Truncate(line, width, "…"))
			y++

		case line == "":
			y++

		default:
			for _, wrapped := range wrapText(line, width) {
				if y >= b.height-1 {
					return
				}
				drawText(buf, x, y, base, wrapped)
				y++
			}
		}
	}
}

// renderFooter draws the hint line, replaced by the active toast if any.
func (b *Browser) renderFooter(buf [][]texel.Cell, muted, errStyle, okStyle tcell.Style, hint string) {
	y := b.height - 1
	if y < 0 {
		return
	}

	if b.toast != "" {
		style := okStyle
		if b.toastKind == toastError {
			style = errStyle
		}
		drawText(buf, 2, y, style, runewidth.Truncate(b.toast, b.width-4, "…"))
		return
	}
	drawText(buf, 2, y, muted, runewidth.Truncate(hint, b.width-4, "…"))
}

// highlightLine tokenizes one line with chroma and maps token colors onto
// cells. Unstyleable tokens keep the fallback style.
func highlightLine(line, lexerName string, fallback tcell.Style, bg tcell.Color) []texel.Cell {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyleName)
	tokens, err := chroma.Tokenise(lexer, nil, line)
	if err != nil {
		return textCells(line, fallback)
	}

	var cells []texel.Cell
	for _, token := range tokens {
		entry := style.Get(token.Type)
		tokenStyle := fallback
		if entry.Colour.IsSet() {
			tokenStyle = tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(
				int32(entry.Colour.Red()),
				int32(entry.Colour.Green()),
				int32(entry.Colour.Blue()),
			))
		}
		if entry.Bold == chroma.Yes {
			tokenStyle = tokenStyle.Bold(true)
		}
		for _, r := range token.Value {
			if r == '\n' {
				continue
			}
			cells = append(cells, texel.Cell{Ch: r, Style: tokenStyle})
		}
	}
	return cells
}

func textCells(text string, style tcell.Style) []texel.Cell {
	cells := make([]texel.Cell, 0, len(text))
	for _, r := range text {
		cells = append(cells, texel.Cell{Ch: r, Style: style})
	}
	return cells
}

// drawText writes a string at (x, y), clipping at the row edge. Wide runes
// advance by their display width.
func drawText(buf [][]texel.Cell, x, y int, style tcell.Style, text string) {
	if y < 0 || y >= len(buf) {
		return
	}
	row := buf[y]
	for _, r := range text {
		if x >= len(row) {
			return
		}
		row[x] = texel.Cell{Ch: r, Style: style}
		x += runewidth.RuneWidth(r)
	}
}

func drawCentered(buf [][]texel.Cell, y int, style tcell.Style, text string) {
	if y < 0 || y >= len(buf) {
		return
	}
	x := (len(buf[y]) - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(buf, x, y, style, text)
}

func placeCells(buf [][]texel.Cell, x, y, width int, cells []texel.Cell) {
	if y < 0 || y >= len(buf) {
		return
	}
	row := buf[y]
	for i, cell := range cells {
		if i >= width || x+i >= len(row) {
			return
		}
		row[x+i] = cell
	}
}

func fillRow(buf [][]texel.Cell, y, from, to int, style tcell.Style) {
	if y < 0 || y >= len(buf) {
		return
	}
	row := buf[y]
	for x := from; x < to && x < len(row); x++ {
		row[x] = texel.Cell{Ch: ' ', Style: style}
	}
}

func setCell(buf [][]texel.Cell, x, y int, cell texel.Cell) {
	if y < 0 || y >= len(buf) {
		return
	}
	if x < 0 || x >= len(buf[y]) {
		return
	}
	buf[y][x] = cell
}

// wrapText breaks text into lines no wider than width, splitting on spaces.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
