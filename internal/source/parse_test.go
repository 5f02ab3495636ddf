package source

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/splitfare/splitfare/internal/testutil"
)

func TestRead_Text(t *testing.T) {
	got, err := Read(strings.NewReader("Hallo https://www.bahn.de/buchung/start"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "Hallo https://www.bahn.de/buchung/start" {
		t.Errorf("Read() = %q", got)
	}
}

func TestRead_RejectsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"png", testutil.PNGHeader},
		{"pdf", []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj")},
		{"exe", []byte{'M', 'Z', 0x90, 0x00, 0x03, 0x00, 0x00, 0x00}},
		{"zip", []byte{'P', 'K', 0x03, 0x04, 0x14, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrBinaryInput) {
				t.Fatalf("Read() error = %v, want ErrBinaryInput", err)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error %q should name the detected type %q", err, tt.name)
			}
		})
	}
}

func TestRead_TextWithMagicPrefix(t *testing.T) {
	inputs := []string{
		"BMW-Fahrer, hier: https://www.bahn.de/buchung/start?a=1",
		"MZ: https://www.bahn.de/buchung/start?a=1",
		"%PDF-Export folgt, Link: https://www.bahn.de/buchung/start",
	}
	for _, in := range inputs {
		got, err := Read(strings.NewReader(in))
		if err != nil {
			t.Errorf("Read(%q) error = %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("Read(%q) = %q", in, got)
		}
	}
}

func TestRead_InvalidUTF8(t *testing.T) {
	got, err := Read(bytes.NewReader([]byte("M\xfcnchen https://www.bahn.de/buchung/start")))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "M�nchen https://www.bahn.de/buchung/start" {
		t.Errorf("Read() = %q", got)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "mail.eml", []byte("Subject: Reise\n\nhttps://www.bahn.de/buchung/start\n"))

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(got, "https://www.bahn.de/buchung/start") {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("ReadFile() on missing file should fail")
	}
}

func TestCollect(t *testing.T) {
	stdin := strings.NewReader("from stdin")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"args joined", []string{"schau", "https://www.bahn.de/buchung/start"}, "schau https://www.bahn.de/buchung/start"},
		{"single arg", []string{"text"}, "text"},
		{"dash reads stdin", []string{"-"}, "from stdin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdin.Reset("from stdin")
			got, err := Collect(tt.args, stdin)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Collect() = %q, want %q", got, tt.want)
			}
		})
	}

	got, err := Collect(nil, nil)
	if err != nil || got != "" {
		t.Errorf("Collect(nil, nil) = %q, %v", got, err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"", KindEmpty},
		{"   ", KindEmpty},
		{"https://www.bahn.de/buchung/start", KindText},
		{`<a href="https://www.bahn.de/buchung/start">x</a>`, KindHTML},
		{"<HTML><BODY>hi</BODY></HTML>", KindHTML},
	}
	for _, tt := range tests {
		if got := KindOf(tt.input); got != tt.want {
			t.Errorf("KindOf(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
