package handler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"go.uber.org/multierr"
)

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(&buf)

	if err := h.Handle([]byte("\033[32mtest message\033[0m\n")); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if buf.String() != "\033[32mtest message\033[0m\n" {
		t.Errorf("Expected raw bytes in output, got: %q", buf.String())
	}
}

func TestConsoleHandler_DefaultsToStdout(t *testing.T) {
	if h := NewConsoleHandler(nil); h.Writer() != os.Stdout {
		t.Error("Expected nil writer to default to os.Stdout")
	}
}

func TestFileHandler_AppendsAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h := NewFileHandler(path)

	for _, line := range []string{"first\n", "second\n"} {
		if err := h.Handle([]byte(line)); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("Expected both lines in order, got %q", data)
	}
}

func TestFileHandler_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewFileHandler(path).Handle([]byte("new\n")); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "old\nnew\n" {
		t.Errorf("Expected append, got %q", data)
	}
}

func TestFileHandler_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "app.log")
	err := NewFileHandler(path).Handle([]byte("x\n"))
	if err == nil {
		t.Fatal("Expected error for a path in a missing directory")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name the path, got %v", err)
	}

	if err := NewFileHandler("").Handle([]byte("x\n")); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
}

type failingHandler struct{ calls int }

func (f *failingHandler) Handle([]byte) error {
	f.calls++
	return errors.New("sink down")
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	bad := &failingHandler{}

	multi := NewMultiHandler(NewConsoleHandler(&buf1), bad, NewConsoleHandler(&buf2), bad)
	if multi.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", multi.Len())
	}

	err := multi.Handle([]byte("multi test\n"))
	if err == nil {
		t.Fatal("Expected combined error")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("Expected 2 combined errors, got %d", n)
	}
	if bad.calls != 2 {
		t.Errorf("Expected failing handler to be called twice, got %d", bad.calls)
	}

	if buf1.String() != "multi test\n" {
		t.Error("First handler did not receive message")
	}
	if buf2.String() != "multi test\n" {
		t.Error("Handler after a failure did not receive message")
	}
}

func TestMultiHandler_Empty(t *testing.T) {
	if err := NewMultiHandler().Handle([]byte("x")); err != nil {
		t.Errorf("Expected nil error with no handlers, got %v", err)
	}
}

func TestStats(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncrementProcessed()
			s.IncrementFiltered()
			s.IncrementFormatFailed()
			s.AddSinkFailed(2)
			s.IncrementCallbackErrors()
		}()
	}
	wg.Wait()

	s.AddSinkFailed(0)
	s.AddSinkFailed(-3)

	want := Snapshot{Processed: 10, Filtered: 10, FormatFailed: 10, SinkFailed: 20, CallbackErrors: 10}
	if got := s.GetSnapshot(); got != want {
		t.Errorf("GetSnapshot() = %+v, want %+v", got, want)
	}

	s.Reset()
	if got := s.GetSnapshot(); got != (Snapshot{}) {
		t.Errorf("Expected zero snapshot after Reset, got %+v", got)
	}
}

func BenchmarkFileHandler(b *testing.B) {
	h := NewFileHandler(filepath.Join(b.TempDir(), "bench.log"))
	line := []byte("[17-Oct-2026•10:00:00] [INFO] benchmark message\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(line)
	}
}
