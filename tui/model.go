// Package tui is the interactive terminal binary calculator.
//
// The model runs on the bubbletea update loop; it must not be shared
// between goroutines.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/calculator"
	"github.com/ezrec/abacus/export"
	"github.com/ezrec/abacus/theme"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

// Model of the terminal calculator.
type Model struct {
	Calc   *calculator.Calculator
	Pref   *theme.Preference // Optional; theme changes are not saved when nil.
	Export *export.Exporter  // Optional; 'e' is disabled when nil.
	Log    *zap.Logger

	Theme     theme.Theme
	Row       calculator.Input // Selected operand abacus.
	Rod       int              // Selected rod, 0 is the least significant.
	ShowSteps bool
	Status    string

	palette theme.Palette
}

// New creates the model, reading the saved theme when pref is set.
func New(calc *calculator.Calculator, pref *theme.Preference, ex *export.Exporter, log *zap.Logger) (m *Model) {
	if log == nil {
		log = zap.NewNop()
	}

	m = &Model{
		Calc:   calc,
		Pref:   pref,
		Export: ex,
		Log:    log,
		Theme:  theme.DEFAULT,
	}

	if pref != nil {
		t, err := pref.Load()
		if err != nil {
			m.Status = f("error: %v", err)
		} else {
			m.Theme = t
		}
	}

	m.palette = theme.PaletteFor(m.Theme)
	return
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.Status = ""

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.Rod < m.Calc.Width-1 {
			m.Rod++
		}
	case "right", "l":
		if m.Rod > 0 {
			m.Rod--
		}
	case "up", "down", "tab", "k", "j":
		if m.Row == calculator.INPUT_A {
			m.Row = calculator.INPUT_B
		} else {
			m.Row = calculator.INPUT_A
		}
	case " ", "enter":
		m.report(m.Calc.Toggle(m.Row, m.Rod))
	case "+", "-", "*", "x", "/":
		op, err := alu.ParseOp(key.String())
		if err == nil {
			err = m.Calc.SetOp(op)
		}
		m.report(err)
	case "o":
		m.report(m.Calc.SetOp(m.Calc.Op.Next()))
	case "c":
		m.Calc.A.Clear()
		m.Calc.B.Clear()
		m.Calc.Calculate()
	case "s":
		m.ShowSteps = !m.ShowSteps
	case "t":
		m.toggleTheme()
	case "e":
		m.save()
	}

	return m, nil
}

func (m *Model) report(err error) {
	if err != nil {
		m.Status = f("error: %v", err)
	}
}

func (m *Model) toggleTheme() {
	if m.Pref == nil {
		m.Theme = m.Theme.Toggle()
	} else {
		t, err := m.Pref.Toggle()
		if err != nil {
			m.report(err)
			return
		}
		m.Theme = t
	}

	m.palette = theme.PaletteFor(m.Theme)
	m.Log.Debug("theme", zap.Stringer("theme", m.Theme))
}

func (m *Model) save() {
	if m.Export == nil {
		m.Status = f("export is not configured")
		return
	}

	saved, err := m.Export.Calculation(m.Calc.Summary(), m.Calc.Last)
	if err != nil {
		m.report(err)
		return
	}

	m.Status = f("saved %v", saved)
}

// beads renders an abacus, most significant rod first. cursor is the
// highlighted rod, or -1.
func (m *Model) beads(ab *abacus.Binary, cursor int) string {
	var sb strings.Builder
	for rod := ab.Width() - 1; rod >= 0; rod-- {
		style, mark := m.palette.Bead, abacus.BEAD_INACTIVE
		if ab.Active(rod) {
			style, mark = m.palette.BeadActive, abacus.BEAD_ACTIVE
		}
		if rod == cursor {
			style = style.Inherit(m.palette.Cursor)
		}
		sb.WriteString(style.Render(mark))
		if rod > 0 && rod%4 == 0 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func (m *Model) View() string {
	p := m.palette

	cursorA, cursorB := -1, -1
	if m.Row == calculator.INPUT_A {
		cursorA = m.Rod
	} else {
		cursorB = m.Rod
	}

	rows := []string{
		p.Title.Render(f("Binary Abacus Calculator")),
		"",
		p.Text.Render("A  ") + m.beads(m.Calc.A, cursorA),
		p.Text.Render(m.Calc.Op.String() + "  "),
		p.Text.Render("B  ") + m.beads(m.Calc.B, cursorB),
		p.Text.Render("=  ") + m.beads(m.Calc.Result, -1),
		"",
	}

	for _, line := range m.Calc.Summary() {
		style := p.Text
		if m.Calc.Err != nil && strings.HasPrefix(line, f("error: %v", m.Calc.Err)) {
			style = p.Error
		}
		rows = append(rows, style.Render(line))
	}

	if m.ShowSteps && m.Calc.Last != nil {
		rows = append(rows, "")
		for line := range m.Calc.Last.Lines() {
			rows = append(rows, p.Muted.Render(line))
		}
	}

	if m.Status != "" {
		rows = append(rows, "", p.Text.Render(m.Status))
	}

	rows = append(rows, "", p.Muted.Render(f("←/→ rod  ↑/↓ abacus  space toggle  + - * / operation  s steps  t theme  e export  q quit")))

	return p.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Run the terminal calculator until the user quits.
func Run(m *Model, opts ...tea.ProgramOption) (err error) {
	_, err = tea.NewProgram(m, opts...).Run()
	return
}
