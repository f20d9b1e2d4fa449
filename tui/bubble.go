package tui

import (
	"github.com/biiclasses/bii/color"
	"github.com/biiclasses/bii/harness"
	"github.com/biiclasses/bii/internal/ui"
	"github.com/biiclasses/bii/stack"
	"github.com/biiclasses/bii/style"
	"github.com/biiclasses/bii/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// statefulBubble holds the component models and the navigation state.
type statefulBubble struct {
	state         state
	statesHistory *stack.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	progressC progress.Model
	sectionsC list.Model
	checksC   list.Model
	helpC     help.Model

	resultChannel chan *harness.Result

	// progress while running
	totalSections int
	seenSections  map[string]struct{}
	checked       int
	lastResult    *harness.Result

	report     *harness.Report
	summaries  []*sectionSummary
	selected   *sectionSummary
	failedOnly bool
	lastError  error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState switches state without recording history.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers where it came from, except for the transient running state.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != runningState && b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState returns to the state recorded last, if any.
func (b *statefulBubble) previousState() bool {
	s, err := b.statesHistory.Pull()
	if err != nil {
		return false
	}

	b.setState(s)
	return true
}

// resize propagates terminal dimension changes to the child components.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.sectionsC.SetSize(listWidth, listHeight)
	b.sectionsC.Help.Width = listWidth

	b.checksC.SetSize(listWidth, listHeight)
	b.checksC.Help.Width = listWidth

	b.progressC.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: stack.New[state](),
		keymap:        newStatefulKeymap(),
		resultChannel: make(chan *harness.Result),
		seenSections:  make(map[string]struct{}),
		notifier:      &ui.Model{},
		options:       options,
	}

	if options.Harness.Vector {
		bubble.totalSections += len(options.Harness.VectorSections)
	}
	if options.Harness.Stack {
		bubble.totalSections += len(options.Harness.StackSections)
	}

	makeList := func(title string, background lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.HiBlue).
			Foreground(color.HiBlue).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = style.Colored(color.New("230"), background).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Cyan)

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	bubble.sectionsC = makeList("Sections", color.Blue)
	bubble.sectionsC.SetStatusBarItemName("section", "sections")

	bubble.checksC = makeList("Checks", color.Purple)
	bubble.checksC.SetStatusBarItemName("check", "checks")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
