package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/calculator"
	"github.com/ezrec/abacus/export"
	"github.com/ezrec/abacus/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, pref *theme.Preference, ex *export.Exporter) *Model {
	calc, err := calculator.New(4, nil)
	assert.NoError(t, err)
	return New(calc, pref, ex, nil)
}

func send(m *Model, msgs ...tea.Msg) (cmd tea.Cmd) {
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return
}

func TestModel_Toggle(t *testing.T) {
	assert := assert.New(t)

	m := newModel(t, nil, nil)
	assert.Nil(m.Init())

	// A = 0011
	send(m,
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(alu.BitString("0011"), m.Calc.A.Value())

	// B = 0100
	send(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(calculator.INPUT_B, m.Row)
	assert.Equal(alu.BitString("0100"), m.Calc.B.Value())
	assert.Equal(alu.BitString("0111"), m.Calc.Result.Value())

	// Cursor stays on the abacus.
	send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(3, m.Rod)
	send(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(0, m.Rod)

	send(m, runes("c"))
	assert.Equal(alu.BitString("0000"), m.Calc.A.Value())
	assert.Equal(alu.BitString("0000"), m.Calc.B.Value())
}

func TestModel_Op(t *testing.T) {
	assert := assert.New(t)

	m := newModel(t, nil, nil)
	_, err := m.Calc.SetInput(calculator.INPUT_A, "1101")
	assert.NoError(err)
	_, err = m.Calc.SetInput(calculator.INPUT_B, "0011")
	assert.NoError(err)

	send(m, runes("/"))
	assert.Equal(alu.OP_DIV, m.Calc.Op)
	assert.Equal(alu.BitString("0100"), m.Calc.Result.Value())

	send(m, runes("o"))
	assert.Equal(alu.OP_ADD, m.Calc.Op)

	send(m, runes("*"))
	assert.Equal(alu.OP_MUL, m.Calc.Op)

	// Division by zero is shown, not fatal.
	_, err = m.Calc.SetInput(calculator.INPUT_B, "0")
	assert.NoError(err)
	send(m, runes("/"))
	assert.ErrorIs(m.Calc.Err, alu.ErrDivisionByZero)
	assert.Contains(m.View(), alu.ErrDivisionByZero.Error())
}

func TestModel_Steps(t *testing.T) {
	assert := assert.New(t)

	m := newModel(t, nil, nil)
	_, err := m.Calc.SetInput(calculator.INPUT_A, "0001")
	assert.NoError(err)

	step := m.Calc.Last.Steps[0]
	assert.NotContains(m.View(), step)

	send(m, runes("s"))
	assert.True(m.ShowSteps)
	assert.Contains(m.View(), step)
}

func TestModel_Theme(t *testing.T) {
	assert := assert.New(t)

	store, err := theme.OpenStore(theme.StoreConfig{InMemory: true})
	assert.NoError(err)
	t.Cleanup(func() { store.Close() })

	pref := &theme.Preference{Store: store}
	m := newModel(t, pref, nil)
	assert.Equal(theme.DARK, m.Theme)

	send(m, runes("t"))
	assert.Equal(theme.LIGHT, m.Theme)

	saved, err := pref.Load()
	assert.NoError(err)
	assert.Equal(theme.LIGHT, saved)

	// Without a store the theme still toggles.
	m = newModel(t, nil, nil)
	send(m, runes("t"), runes("t"))
	assert.Equal(theme.DARK, m.Theme)
}

func TestModel_Export(t *testing.T) {
	assert := assert.New(t)

	m := newModel(t, nil, nil)
	send(m, runes("e"))
	assert.Equal(f("export is not configured"), m.Status)

	mfs := export.NewMapFS()
	m = newModel(t, nil, &export.Exporter{FS: mfs})
	send(m, runes("e"))
	assert.Len(mfs.Names(), 1)
	assert.Equal(f("saved %v", mfs.Names()[0]), m.Status)
	assert.Contains(m.View(), m.Status)
}

func TestModel_Quit(t *testing.T) {
	assert := assert.New(t)

	m := newModel(t, nil, nil)
	cmd := send(m, runes("q"))
	if assert.NotNil(cmd) {
		assert.Equal(tea.Quit(), cmd())
	}

	// Other messages are ignored.
	assert.Nil(send(m, tea.WindowSizeMsg{Width: 80, Height: 24}))
}
