package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/Flyrell/runlog/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var footerStyle = lipgloss.NewStyle().Faint(true)

var dashboardCmd = LeafCommand{
	Use:   "dashboard",
	Short: "Interactive overview of stats, heatmap and history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		return runDashboard(cmd, env.store, env.today())
	},
}.Build()

type dashboardModel struct {
	summary    stats.Summary
	history    []stats.HistoryItem // every run, newest first
	scrollY    int                 // first visible history row
	termWidth  int
	termHeight int
}

func newDashboardModel(records []run.Record, today calendar.Day) dashboardModel {
	sorted := run.SortByDate(records)
	return dashboardModel{
		summary:    stats.Aggregate(records, today),
		history:    stats.History(sorted, len(sorted)),
		termWidth:  100,
		termHeight: 40,
	}
}

// header is everything above the history list.
func (m dashboardModel) header() string {
	left := renderStats(m.summary)
	right := Header("Last 6 weeks") + "\n" + renderHeatmap(m.summary.Heatmap, m.summary.Today)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m dashboardModel) visibleRows() int {
	// history title(1) + footer(2)
	reserved := lipgloss.Height(m.header()) + 3
	available := m.termHeight - reserved
	if available < 1 {
		return 1
	}
	if available > len(m.history) {
		return len(m.history)
	}
	return available
}

func (m dashboardModel) maxScrollY() int {
	max := len(m.history) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.scrollY > m.maxScrollY() {
			m.scrollY = m.maxScrollY()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.scrollY < m.maxScrollY() {
				m.scrollY++
			}
		case "up", "k":
			if m.scrollY > 0 {
				m.scrollY--
			}
		case "g", "home":
			m.scrollY = 0
		case "G", "end":
			m.scrollY = m.maxScrollY()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	end := m.scrollY + m.visibleRows()
	if end > len(m.history) {
		end = len(m.history)
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("History (%d runs)", len(m.history))))
	b.WriteString("\n")
	b.WriteString(renderHistory(m.history[m.scrollY:end]))
	b.WriteString(footerStyle.Render("↑/k ↓/j scroll · g/G top/bottom · q quit"))
	b.WriteString("\n")
	return b.String()
}

func runDashboard(cmd *cobra.Command, st *store.Store, today calendar.Day) error {
	records, err := st.LoadAll()
	if err != nil {
		return err
	}

	m := newDashboardModel(records, today)

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticDashboard(out, m)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

func printStaticDashboard(w io.Writer, m dashboardModel) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s",
		m.header(),
		Header(fmt.Sprintf("History (%d runs)", len(m.history))),
		renderHistory(m.history),
	)
	return err
}
