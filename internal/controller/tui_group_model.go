package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// Simple delegate for duplicate group rows.
type groupDelegate struct {
	offset int
}

func (d groupDelegate) Height() int  { return 1 }
func (d groupDelegate) Spacing() int { return 0 }
func (d groupDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d groupDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(groupRow)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	status := "DUPLICATE"
	if row.keep {
		status = "KEEP"
	}

	// Reserve space for group (5), status (10), size (10) and spacing.
	width := lm.Width() - 29

	var groupStyle, statusStyle, sizeStyle, pathStyle lipgloss.Style

	var displayPath string

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		groupStyle = selected.Width(5).Align(lipgloss.Right)
		statusStyle = selected.Width(10).Align(lipgloss.Left)
		sizeStyle = selected.Width(10).Align(lipgloss.Right)
		pathStyle = selected

		displayPath = animateScroll(row.path, width, d.offset)
	} else {
		statusColor := lipgloss.Color("1") // Red for duplicates
		if row.keep {
			statusColor = lipgloss.Color("2") // Green for the kept copy
		}

		groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(5).
			Align(lipgloss.Right)
		statusStyle = lipgloss.NewStyle().
			Foreground(statusColor).
			Bold(true).
			Width(10).
			Align(lipgloss.Left)
		sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(10).
			Align(lipgloss.Right)
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayPath = truncateToWidth(row.path, width)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		groupStyle.Render(fmt.Sprintf("%d", row.group)),
		statusStyle.Render(status),
		sizeStyle.Render(humanize.IBytes(uint64(row.size))),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// groupModel lists every member of every duplicate group.
type groupModel struct {
	width        int
	height       int
	rows         list.Model
	delegate     groupDelegate
	groups       int
	duplicates   int64
	wasted       int64
	animOffset   int
	lastSelected int
}

func newGroupModel(result *m.ScanResult) groupModel {
	delegate := groupDelegate{}
	rows := list.New(groupItems(result), delegate, 80, 20)
	rows.SetShowPagination(false)
	rows.SetShowFilter(true)
	rows.SetShowHelp(false)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.FilterInput.Placeholder = "Filter by path…"

	// Sane defaults so View renders paths before the first
	// tea.WindowSizeMsg, or when the listing is printed without running
	// the program at all.
	return groupModel{
		width:        80,
		height:       24,
		rows:         rows,
		delegate:     delegate,
		groups:       result.GroupsFound,
		duplicates:   result.DuplicateCount,
		wasted:       result.WastedBytes,
		lastSelected: -1,
	}
}

func groupItems(result *m.ScanResult) []list.Item {
	var items []list.Item

	for i, group := range result.Groups {
		for j, file := range group.Files {
			items = append(items, groupRow{
				group:  i + 1,
				keep:   j == 0,
				size:   group.Size,
				path:   string(file.Path),
				wasted: group.WastedBytes(),
			})
		}
	}

	return items
}

// needsPagination reports whether the row count exceeds a conservative
// screen estimate; short listings are printed directly.
func (gm groupModel) needsPagination() bool {
	return len(gm.rows.Items()) > 20
}

func (gm groupModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (gm groupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		gm.width = msg.Width
		gm.height = msg.Height
		gm.rows.SetWidth(gm.width)

	case tickMsg:
		if gm.rows.FilterState() != list.Filtering {
			gm.animOffset++
			gm.delegate.offset = gm.animOffset
			gm.rows.SetDelegate(gm.delegate)

			return gm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return gm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return gm, tea.Quit
		default:
			var newList list.Model

			newList, cmd = gm.rows.Update(msg)
			gm.rows = newList

			// Detect selection change to reset animation
			if gm.rows.Index() != gm.lastSelected {
				gm.lastSelected = gm.rows.Index()
				gm.animOffset = 0
				gm.delegate.offset = 0
				gm.rows.SetDelegate(gm.delegate)
			}

			return gm, cmd
		}
	}

	return gm, cmd
}

func (gm groupModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("Dupescan Duplicate Groups")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Groups: %s   Duplicates: %s   Wasted: %s",
		accentStyle.Render(fmt.Sprintf("%d", gm.groups)),
		accentStyle.Render(fmt.Sprintf("%d", gm.duplicates)),
		accentStyle.Render(humanize.IBytes(uint64(gm.wasted))),
	))

	table := gm.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(gm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (gm groupModel) renderTable() string {
	// Screen height minus title, summary, footer, border and padding.
	listHeight := gm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := gm.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	gm.rows.SetHeight(listHeight)
	gm.rows.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%5s  %-10s  %10s  %s", "Group", "Status", "Size", "Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			gm.rows.View(),
		),
	)
}
