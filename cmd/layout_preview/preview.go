package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/systems"
	"github.com/gonewx/stateicons/pkg/utils"
)

// Styles 预览输出的样式
type Styles struct {
	Border lipgloss.Style
	Title  lipgloss.Style
	Cell   lipgloss.Style
	First  lipgloss.Style
	Empty  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles 返回默认样式
func DefaultStyles() Styles {
	primaryColor := lipgloss.Color("86")
	secondaryColor := lipgloss.Color("239")

	return Styles{
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		Cell: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("255")),
		First: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(primaryColor),
		Empty: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("241")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// SimulatePages 用分页行为模拟 iconCount 个图标在网格中的全部页面
//
// 图标依次编号为 1..iconCount。返回每页各格子显示的编号，0 表示该格子为空。
// 页数为 0 时返回空切片。
func SimulatePages(layout *config.StateIconLayout, iconCount int) [][]int {
	maxIcons := layout.MaxIcons()
	pageCount := systems.PageCount(iconCount, maxIcons)
	if pageCount == 0 {
		return [][]int{}
	}

	icons := make([]int, iconCount)
	for i := range icons {
		icons[i] = i + 1
	}

	sprites := make([]*components.StateIconComponent, maxIcons)
	behaviors := make([]*systems.PagedStateIconBehavior, maxIcons)
	for i := 0; i < maxIcons; i++ {
		sprites[i] = &components.StateIconComponent{Opacity: layout.DefaultOpacity, Visible: true}
		behaviors[i] = systems.NewPagedStateIconBehavior(layout, &components.PagedStateIconComponent{SlotIndex: i})
	}

	pages := make([][]int, pageCount)
	for p := range pages {
		pages[p] = make([]int, maxIcons)
		for i, b := range behaviors {
			b.UpdateIcon(sprites[i], icons)
			if sprites[i].Opacity > 0 {
				pages[p][i] = sprites[i].IconIndex
			}
		}
	}
	return pages
}

// gridCell 格子在屏幕上的行列（按坐标从左上开始排序）
type gridCell struct {
	row, col int
}

// screenGrid 把格子坐标换算成屏幕上的行列
func screenGrid(slots []utils.StateIconSlot) (cells []gridCell, rows, cols int) {
	xs := rankOf(slots, func(s utils.StateIconSlot) float64 { return s.X })
	ys := rankOf(slots, func(s utils.StateIconSlot) float64 { return s.Y })

	cells = make([]gridCell, len(slots))
	for i, s := range slots {
		cells[i] = gridCell{row: ys[s.Y], col: xs[s.X]}
	}
	return cells, len(ys), len(xs)
}

func rankOf(slots []utils.StateIconSlot, key func(utils.StateIconSlot) float64) map[float64]int {
	values := make([]float64, 0, len(slots))
	seen := make(map[float64]bool)
	for _, s := range slots {
		v := key(s)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Float64s(values)

	rank := make(map[float64]int, len(values))
	for i, v := range values {
		rank[v] = i
	}
	return rank
}

// RenderPage 按屏幕位置渲染一页
func RenderPage(styles Styles, slots []utils.StateIconSlot, page []int, title string) string {
	cells, rows, cols := screenGrid(slots)

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = styles.Empty.Render(" ")
		}
	}
	for i, cell := range cells {
		switch {
		case i >= len(page) || page[i] == 0:
			grid[cell.row][cell.col] = styles.Empty.Render("··")
		case i == 0:
			grid[cell.row][cell.col] = styles.First.Render(fmt.Sprintf("%d", page[i]))
		default:
			grid[cell.row][cell.col] = styles.Cell.Render(fmt.Sprintf("%d", page[i]))
		}
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = lipgloss.JoinHorizontal(lipgloss.Top, row...)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(title), styles.Border.Render(body))
}

// RenderPages 渲染全部页面
func RenderPages(styles Styles, layout *config.StateIconLayout, iconCount int) string {
	slots := utils.CalculateStateIconSlots(0, 0, layout, config.IconWidth, config.IconHeight)
	pages := SimulatePages(layout, iconCount)
	if len(pages) == 0 {
		return styles.Muted.Render("no icons to display")
	}

	rendered := make([]string, len(pages))
	for p, page := range pages {
		title := fmt.Sprintf("Page %d/%d", p+1, len(pages))
		rendered[p] = RenderPage(styles, slots, page, title)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced(rendered)...)
}

// spaced 在各页之间插入间隔
func spaced(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, b)
	}
	return out
}

// FormatSlots 输出格子坐标表
func FormatSlots(layout *config.StateIconLayout, anchorX, anchorY float64) string {
	slots := utils.CalculateStateIconSlots(anchorX, anchorY, layout, config.IconWidth, config.IconHeight)

	var sb strings.Builder
	fmt.Fprintf(&sb, "anchor (%.0f, %.0f)  grid %dx%d  rows %s  columns %s  fill %s\n",
		anchorX, anchorY, layout.RowMax, layout.ColumnMax, layout.RowAlign, layout.ColumnAlign, layout.IconsAlign)
	fmt.Fprintf(&sb, "%-5s %-4s %-6s %8s %8s\n", "slot", "row", "column", "x", "y")
	for _, s := range slots {
		fmt.Fprintf(&sb, "%-5d %-4d %-6d %8.0f %8.0f\n", s.Index, s.Row, s.Column, s.X, s.Y)
	}
	return sb.String()
}
