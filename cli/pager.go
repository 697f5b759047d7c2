package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/webzeppelin/rusty-sharutils/log"
)

// pageHelp displays the extended help text through a pager. Preference
// order: the user's $PAGER, then less, then the built-in pager when
// standard output is a terminal, then a plain dump.
func pageHelp(ctx context.Context, stdout io.Writer, text string) error {
	for _, pager := range pagerCommands() {
		if runPager(ctx, pager, text) {
			return nil
		}
	}

	if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return runBuiltinPager(text)
	}

	_, err := fmt.Fprint(stdout, text)

	return err
}

// pagerCommands returns the external pager command lines to try in order.
func pagerCommands() [][]string {
	var cmds [][]string

	if pager := strings.Fields(os.Getenv("PAGER")); len(pager) > 0 {
		cmds = append(cmds, pager)
	}

	// -F exits if the content fits on one screen, -R passes color through.
	return append(cmds, []string{"less", "-F", "-R"})
}

func runPager(ctx context.Context, argv []string, text string) bool {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return false
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Debug("external pager failed", errAttr(err))

		return false
	}

	return true
}

// Styles for the built-in pager chrome.
//
//nolint:gochecknoglobals
var (
	pagerTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	pagerFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8"))
)

// pagerModel is a minimal scrolling viewer used when no external pager
// is available.
type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// One line each for title and footer.
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		m.viewport.SetContent(m.content)
		m.ready = true
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}

	return pagerTitleStyle.Render("Help") + "\n" +
		m.viewport.View() + "\n" +
		pagerFooterStyle.Render("q to quit")
}

func runBuiltinPager(text string) error {
	_, err := tea.NewProgram(
		pagerModel{content: text},
		tea.WithAltScreen(),
	).Run()

	return err
}
