package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/gityard/internal/branchname"
	"github.com/mikanfactory/gityard/internal/model"
	"github.com/mikanfactory/gityard/internal/pathcomplete"
	"github.com/mikanfactory/gityard/internal/rows"
	"github.com/mikanfactory/gityard/internal/worktree"
)

// State is the step the interactive view is in.
type State int

const (
	StateLoading State = iota
	StateSelect
	StatePath
	StateBranch
	StateCreating
	StateSwitching
	StateMerge
	StateMerging
	StateDelete
	StateDeleting
	StateDone
	StateError
)

var stateNames = [...]string{
	"loading", "select", "path", "branch", "creating", "switching",
	"merge", "merging", "delete", "deleting", "done", "error",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) busy() bool {
	switch s {
	case StateLoading, StateCreating, StateSwitching, StateMerging, StateDeleting:
		return true
	}
	return false
}

// Outcome is how the interactive session ended.
type Outcome struct {
	// Message is the success text to print.
	Message string
	// Path is the worktree switched into, if any.
	Path      string
	Err       error
	Cancelled bool
}

// LoadedMsg is sent when the worktree rows have been derived.
type LoadedMsg struct {
	Snapshot rows.Snapshot
}

// LoadErrMsg is sent when the worktree list cannot be loaded.
type LoadErrMsg struct {
	Err error
}

// EnteredMsg is sent when a switch or create has finished.
type EnteredMsg struct {
	Result worktree.EnterResult
}

// MergedMsg is sent when a merge has finished.
type MergedMsg struct {
	Result worktree.MergeResult
}

// RemovedMsg is sent when a worktree has been removed.
type RemovedMsg struct {
	Name string
}

// BranchDeletedMsg is sent when a worktree and its branch have been deleted.
type BranchDeletedMsg struct {
	Result worktree.DeleteResult
}

// OperationErrMsg is sent when a worktree operation fails.
type OperationErrMsg struct {
	Err error
}

type menuChoice int

const (
	choiceSquash menuChoice = iota
	choiceNoFF
	choiceRemoveOnly
	choiceDeleteSafe
	choiceDeleteForce
	choiceBack
)

type menuItem struct {
	label  string
	choice menuChoice
}

// Model is the BubbleTea model for the worktree picker.
type Model struct {
	state   State
	backend Backend

	items      []model.Row
	root       string
	baseBranch string
	cursor     int

	menu       []menuItem
	menuCursor int
	target     model.Row

	pathInput     textinput.Model
	branchInput   textinput.Model
	newPath       string
	defaultBranch string
	completer     pathcomplete.Completer

	spinner spinner.Model
	outcome Outcome
}

// NewModel creates the picker. completer provides path suggestions.
func NewModel(backend Backend, completer pathcomplete.Completer) Model {
	pi := textinput.New()
	pi.Placeholder = "./my-feature"
	pi.CharLimit = 256
	pi.Width = 50
	pi.ShowSuggestions = true

	bi := textinput.New()
	bi.Placeholder = "branch-name"
	bi.CharLimit = 256
	bi.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		state:       StateLoading,
		backend:     backend,
		pathInput:   pi,
		branchInput: bi,
		completer:   completer,
		spinner:     sp,
	}
}

// State returns the current step.
func (m Model) State() State {
	return m.state
}

// Outcome returns how the session ended. It is meaningful once the program has quit.
func (m Model) Outcome() Outcome {
	return m.outcome
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.backend), m.spinner.Tick)
}

func (m *Model) setState(s State) {
	if m.state != s {
		log.Printf("[tui] %s -> %s", m.state, s)
	}
	m.state = s
}

func (m Model) finish(o Outcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	if o.Err != nil {
		m.setState(StateError)
	} else {
		m.setState(StateDone)
	}
	return m, tea.Quit
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	return m.finish(Outcome{Err: err})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.state.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		m.root = msg.Snapshot.Root
		m.baseBranch = msg.Snapshot.BaseBranch
		m.items = rows.WithCreateRow(msg.Snapshot.Rows)
		m.cursor = 0
		m.setState(StateSelect)
		return m, nil

	case LoadErrMsg:
		return m.fail(msg.Err)

	case EnteredMsg:
		text := "Switched to worktree: " + msg.Result.Path
		if msg.Result.Created {
			text = "Created and switched to worktree: " + msg.Result.Path
		}
		return m.finish(Outcome{Message: text, Path: msg.Result.Path})

	case MergedMsg:
		return m.finish(Outcome{Message: fmt.Sprintf("Merged %s into %s.", msg.Result.MergedBranch, msg.Result.BaseBranch)})

	case RemovedMsg:
		return m.finish(Outcome{Message: fmt.Sprintf("Removed worktree: %s.", msg.Name)})

	case BranchDeletedMsg:
		return m.finish(Outcome{Message: fmt.Sprintf("Removed worktree and deleted branch: %s.", msg.Result.Branch)})

	case OperationErrMsg:
		return m.fail(msg.Err)
	}

	switch m.state {
	case StateSelect:
		return m.updateSelect(msg)
	case StatePath:
		return m.updatePath(msg)
	case StateBranch:
		return m.updateBranch(msg)
	case StateMerge, StateDelete:
		return m.updateMenu(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Interrupt) {
		return m.finish(Outcome{Cancelled: true})
	}
	return m, nil
}

func (m Model) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := range m.items {
				if zone.Get(ZoneID(i)).InBounds(msg) {
					m.cursor = i
					return m.activate()
				}
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m.finish(Outcome{Cancelled: true})
		case key.Matches(msg, keys.Up):
			m.cursor = Wrap(m.cursor, -1, len(m.items))
		case key.Matches(msg, keys.Down):
			m.cursor = Wrap(m.cursor, 1, len(m.items))
		case key.Matches(msg, keys.Enter):
			return m.activate()
		case key.Matches(msg, keys.Merge):
			return m.openMenu(StateMerge)
		case key.Matches(msg, keys.Delete):
			return m.openMenu(StateDelete)
		}
	}
	return m, nil
}

// activate acts on the highlighted row.
func (m Model) activate() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.items) {
		return m, nil
	}
	row := m.items[m.cursor]
	if row.IsCreate {
		m.setState(StatePath)
		m.pathInput.SetValue("")
		return m, m.pathInput.Focus()
	}
	m.setState(StateSwitching)
	return m, tea.Batch(enterCmd(m.backend, row.Path, ""), m.spinner.Tick)
}

func (m Model) openMenu(s State) (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.items) || m.items[m.cursor].IsCreate {
		return m, nil
	}
	m.target = m.items[m.cursor]
	m.menuCursor = 0
	if s == StateMerge {
		m.menu = mergeMenu(m.baseBranch)
	} else {
		m.menu = deleteMenu()
	}
	m.setState(s)
	return m, nil
}

func mergeMenu(base string) []menuItem {
	if base == "" {
		base = "master"
	}
	return []menuItem{
		{label: fmt.Sprintf("Merge into %s (squash)", base), choice: choiceSquash},
		{label: fmt.Sprintf("Merge into %s (no-ff)", base), choice: choiceNoFF},
		{label: "Back", choice: choiceBack},
	}
}

func deleteMenu() []menuItem {
	return []menuItem{
		{label: "Remove worktree only", choice: choiceRemoveOnly},
		{label: "Remove worktree + delete branch (safe)", choice: choiceDeleteSafe},
		{label: "Remove worktree + delete branch (force)", choice: choiceDeleteForce},
		{label: "Back", choice: choiceBack},
	}
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.Interrupt):
		return m.finish(Outcome{Cancelled: true})
	case key.Matches(k, keys.Back):
		m.setState(StateSelect)
	case key.Matches(k, keys.Up):
		m.menuCursor = Wrap(m.menuCursor, -1, len(m.menu))
	case key.Matches(k, keys.Down):
		m.menuCursor = Wrap(m.menuCursor, 1, len(m.menu))
	case key.Matches(k, keys.Enter):
		return m.choose(m.menu[m.menuCursor].choice)
	}
	return m, nil
}

func (m Model) choose(c menuChoice) (tea.Model, tea.Cmd) {
	path := m.target.Path
	var cmd tea.Cmd

	switch c {
	case choiceBack:
		m.setState(StateSelect)
		return m, nil
	case choiceSquash:
		m.setState(StateMerging)
		cmd = mergeCmd(m.backend, path, worktree.MergeOptions{Squash: true, BaseBranch: m.baseBranch})
	case choiceNoFF:
		m.setState(StateMerging)
		cmd = mergeCmd(m.backend, path, worktree.MergeOptions{NoFF: true, BaseBranch: m.baseBranch})
	case choiceRemoveOnly:
		m.setState(StateDeleting)
		cmd = removeCmd(m.backend, path, m.target.Name)
	case choiceDeleteSafe:
		m.setState(StateDeleting)
		cmd = deleteBranchCmd(m.backend, path, worktree.DeleteOptions{BaseBranch: m.baseBranch})
	case choiceDeleteForce:
		m.setState(StateDeleting)
		cmd = deleteBranchCmd(m.backend, path, worktree.DeleteOptions{ForceBranch: true, BaseBranch: m.baseBranch})
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Interrupt):
			return m.finish(Outcome{Cancelled: true})
		case key.Matches(k, keys.Back):
			m.pathInput.Blur()
			m.setState(StateSelect)
			return m, nil
		case key.Matches(k, keys.Enter):
			value := strings.TrimSpace(m.pathInput.Value())
			if !worktree.IsValidWorktreePath(value) {
				return m.fail(&worktree.InvalidPathError{Path: value})
			}
			m.newPath = value
			m.defaultBranch = branchname.FromPath(value)
			m.pathInput.Blur()
			m.branchInput.Placeholder = m.defaultBranch
			m.branchInput.SetValue(m.defaultBranch)
			m.branchInput.CursorEnd()
			m.setState(StateBranch)
			return m, m.branchInput.Focus()
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	m.pathInput.SetSuggestions(m.completer.Suggest(m.pathInput.Value()))
	return m, cmd
}

func (m Model) updateBranch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Interrupt):
			return m.finish(Outcome{Cancelled: true})
		case key.Matches(k, keys.Back):
			m.branchInput.Blur()
			m.setState(StateSelect)
			return m, nil
		case key.Matches(k, keys.Enter):
			branch := strings.TrimSpace(m.branchInput.Value())
			if branch == "" {
				branch = m.defaultBranch
			}
			m.branchInput.Blur()
			m.setState(StateCreating)
			return m, tea.Batch(enterCmd(m.backend, m.newPath, branch), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.branchInput, cmd = m.branchInput.Update(msg)
	return m, cmd
}

// ZoneID returns the bubblezone ID for the row at the given index.
func ZoneID(index int) string {
	return fmt.Sprintf("row-%d", index)
}

func loadCmd(b Backend) tea.Cmd {
	return func() tea.Msg {
		snap, err := b.Load()
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		return LoadedMsg{Snapshot: snap}
	}
}

func enterCmd(b Backend, nameOrPath, branch string) tea.Cmd {
	return func() tea.Msg {
		res, err := b.EnsureAndEnter(nameOrPath, branch)
		if err != nil {
			return OperationErrMsg{Err: err}
		}
		return EnteredMsg{Result: res}
	}
}

func mergeCmd(b Backend, path string, opts worktree.MergeOptions) tea.Cmd {
	return func() tea.Msg {
		res, err := b.Merge(path, opts)
		if err != nil {
			return OperationErrMsg{Err: err}
		}
		return MergedMsg{Result: res}
	}
}

func removeCmd(b Backend, path, name string) tea.Cmd {
	return func() tea.Msg {
		if err := b.Remove(path, false); err != nil {
			return OperationErrMsg{Err: err}
		}
		return RemovedMsg{Name: name}
	}
}

func deleteBranchCmd(b Backend, path string, opts worktree.DeleteOptions) tea.Cmd {
	return func() tea.Msg {
		res, err := b.DeleteBranch(path, opts)
		if err != nil {
			return OperationErrMsg{Err: err}
		}
		return BranchDeletedMsg{Result: res}
	}
}
