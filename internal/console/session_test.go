package console

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

// runSession runs a stream-mode session over input and returns its output.
func runSession(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer
	session := NewSession(strings.NewReader(input), &out)
	session.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := session.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestSessionLoadSaveExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.json")
	content := `{"name":"Square","width":4,"height":4}`
	writeFile(t, path, content)

	output := runSession(t, path+"\n\x1bOP\x1b")

	expected := strings.Join([]string{
		PromptPath,
		"Name: Square, Width: 4, Height: 4",
		"Press F1 to save the file, Escape to exit.",
		MessageSaved,
		"",
	}, "\n")
	if output != expected {
		t.Errorf("Expected output:\n%s\nGot:\n%s", expected, output)
	}

	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("Expected identical content after save, got %s", string(data))
	}
}

func TestSessionExitStopsReading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.txt")
	writeFile(t, path, "Circle\n5\n5\n")

	// The save after Escape must never run.
	output := runSession(t, path+"\n\x1b\x1bOP")

	if strings.Contains(output, MessageSaved) {
		t.Errorf("Expected no save after exit, got:\n%s", output)
	}
}

func TestSessionUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.dat")
	writeFile(t, path, "Circle\n5\n5\n")

	output := runSession(t, path+"\n\x1b[11~\x1b")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), output)
	}
	if lines[1] != MessageUnsupported {
		t.Errorf("Expected unsupported notice after load, got %q", lines[1])
	}
	if lines[3] != MessageUnsupported {
		t.Errorf("Expected unsupported notice after save, got %q", lines[3])
	}
}

func TestSessionLoadErrorThenSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	writeFile(t, path, "Circle\n5\n")

	output := runSession(t, path+"\n\x1bOP\x03")

	if !strings.Contains(output, "Error loading file: expected 3 lines, got 2") {
		t.Errorf("Expected load error, got:\n%s", output)
	}
	if !strings.Contains(output, "Error saving file: no figure loaded") {
		t.Errorf("Expected save error, got:\n%s", output)
	}
	if strings.Contains(output, "Name:") {
		t.Errorf("Expected no figure line, got:\n%s", output)
	}
}

func TestSessionMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xml")

	output := runSession(t, path+"\r\n\x1b")

	if !strings.Contains(output, "Error loading file: open "+path) {
		t.Errorf("Expected open error naming %s, got:\n%s", path, output)
	}
}

func TestSessionEndOfInputExits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.txt")
	writeFile(t, path, "Circle\n5\n5\n")

	output := runSession(t, path+"\nxyz")

	if !strings.Contains(output, "Name: Circle, Width: 5, Height: 5") {
		t.Errorf("Expected figure line, got:\n%s", output)
	}
}

func TestSessionEmptyInput(t *testing.T) {
	output := runSession(t, "")

	if !strings.HasPrefix(output, PromptPath+"\n"+MessageUnsupported+"\n") {
		t.Errorf("Unexpected output for empty input:\n%s", output)
	}
}

func TestSessionCustomKeymap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.xml")
	writeFile(t, path, "<Figure><Name>Kite</Name><Width>1</Width><Height>2</Height></Figure>")

	keymap, err := NewKeymap("s", "q")
	if err != nil {
		t.Fatalf("NewKeymap failed: %v", err)
	}

	var out bytes.Buffer
	session := NewSession(strings.NewReader(path+"\n\x1bOPsq"), &out)
	session.Keymap = keymap
	session.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := session.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.Count(out.String(), MessageSaved) != 1 {
		t.Errorf("Expected exactly one save, got:\n%s", out.String())
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "<Name>Kite</Name>") {
		t.Errorf("Expected rewritten XML, got %s", string(data))
	}
}

// fakeTerminal records raw mode transitions.
type fakeTerminal struct {
	entered  bool
	restored bool
	err      error
}

func (f *fakeTerminal) MakeRaw() (func() error, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.entered = true
	return func() error {
		f.restored = true
		return nil
	}, nil
}

func TestSessionRawModeRestoresAndUsesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.txt")
	writeFile(t, path, "Circle\n5\n5\n")

	terminal := &fakeTerminal{}
	var out bytes.Buffer
	session := NewSession(strings.NewReader(path+"\n\x1bOP\x1b"), &out)
	session.Terminal = terminal
	session.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := session.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !terminal.entered || !terminal.restored {
		t.Errorf("Expected raw mode to be entered and restored, got %+v", terminal)
	}
	if !strings.HasSuffix(out.String(), MessageSaved+"\r\n") {
		t.Errorf("Expected CRLF line endings in raw mode, got %q", out.String())
	}
}

func TestSessionRawModeFailure(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("shape.txt\n"), &out)
	session.Terminal = &fakeTerminal{err: errors.New("not a tty")}
	session.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := session.Run(); err == nil {
		t.Error("Expected raw mode failure to be returned")
	}
}

func TestSessionSequenceAcrossReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.txt")
	writeFile(t, path, "Circle\n5\n5\n")

	// The filler puts "\x1bO" at the end of the first key read and "P" at
	// the start of the second.
	filler := strings.Repeat("x", readBufferSize-2)
	output := runSession(t, path+"\n"+filler+"\x1bOP\x1b")

	if !strings.Contains(output, MessageSaved) {
		t.Errorf("Expected F1 split across reads to save, got:\n%s", output)
	}
}

func TestSessionOneByteReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.txt")
	writeFile(t, path, "Circle\n5\n5\n")

	var out bytes.Buffer
	input := iotest.OneByteReader(strings.NewReader(path + "\n\x1b[11~\x1bOP\x1b"))
	session := NewSession(input, &out)
	session.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := session.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.Count(out.String(), MessageSaved) != 2 {
		t.Errorf("Expected two saves, got:\n%s", out.String())
	}
}

func TestSessionCtrlDExits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.txt")
	writeFile(t, path, "Circle\n5\n5\n")

	output := runSession(t, path+"\n\x04\x1bOP")

	if strings.Contains(output, MessageSaved) {
		t.Errorf("Expected Ctrl+D to exit before the save, got:\n%s", output)
	}
}
