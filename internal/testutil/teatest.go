// Package testutil drives Bubble Tea models in tests through a real
// program with scripted input.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// settle is how long Send waits for a message to be processed
const settle = 50 * time.Millisecond

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	final   tea.Model
	t       *testing.T
}

// syncBuffer lets the test read output while the renderer writes it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idleInput never produces input; keys are delivered with Send
type idleInput struct{}

func (idleInput) Read(p []byte) (int, error) {
	time.Sleep(settle)
	return 0, io.EOF
}

// NewTestProgram starts model in the background with a fixed window size
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(idleInput{}),
		tea.WithOutput(output),
		tea.WithoutSignalHandler(),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		final, err := p.Run()
		if err != nil {
			t.Logf("Program error: %v", err)
		}
		tp.final = final
	}()
	t.Cleanup(tp.Quit)

	time.Sleep(settle)
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for text to appear in the output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// Quit stops the program and waits for it to exit
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(2 * time.Second):
		tp.t.Errorf("program did not exit")
	}
}

// FinalModel stops the program and returns the model it ended with
func (tp *TestProgram) FinalModel() tea.Model {
	tp.Quit()
	return tp.final
}
