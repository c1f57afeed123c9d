package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/thaitok/internal/app"
	"github.com/chriscorrea/thaitok/internal/counter"
)

func TestRunLiteralText(t *testing.T) {
	tests := []struct {
		name string
		mode app.Mode
		cfg  app.Config
		want string
	}{
		{
			name: "word mode with default engine",
			mode: app.Words,
			cfg:  app.Config{Text: "ไปกินข้าว", Engine: "newmm", Separator: "|"},
			want: "ไป|กิน|ข้าว",
		},
		{
			name: "word mode with custom separator",
			mode: app.Words,
			cfg:  app.Config{Text: "ไปกินข้าว", Engine: "newmm", Separator: " "},
			want: "ไป กิน ข้าว",
		},
		{
			name: "word mode as JSON",
			mode: app.Words,
			cfg:  app.Config{Text: "ไปกินข้าว", Engine: "newmm", JSON: true},
			want: `["ไป","กิน","ข้าว"]`,
		},
		{
			name: "sentence mode",
			mode: app.Sentences,
			cfg:  app.Config{Text: "มา มาก", Engine: "whitespace+newline", Separator: "|"},
			want: "มา|มาก",
		},
		{
			name: "subword mode tcc",
			mode: app.Subwords,
			cfg:  app.Config{Text: "ความ", Engine: "tcc", Separator: "|"},
			want: "ค|วา|ม",
		},
		{
			name: "subword mode etcc",
			mode: app.Subwords,
			cfg:  app.Config{Text: "ความ", Engine: "etcc", Separator: "|"},
			want: "ค|วาม",
		},
		{
			name: "syllable mode",
			mode: app.Syllables,
			cfg:  app.Config{Text: "รถไฟ", Separator: "|"},
			want: "รถ|ไฟ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.Run(context.Background(), tt.mode, tt.cfg)
			if err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunFileSources(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("มา"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("มาก"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := app.Run(context.Background(), app.Words, app.Config{
		Sources:   []string{first, second},
		Engine:    "newmm",
		Separator: "|",
	})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// sources are joined with a blank line, which survives as a token
	want := "มา|\n\n|มาก"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestRunHTMLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	html := `<html><body><nav>เมนู</nav><p class="body">ไปกินข้าว</p></body></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := app.Run(context.Background(), app.Words, app.Config{
		Sources:   []string{path},
		HTML:      true,
		Selector:  "p.body",
		Engine:    "newmm",
		Separator: "|",
	})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got != "ไป|กิน|ข้าว" {
		t.Errorf("Run() = %q, want %q", got, "ไป|กิน|ข้าว")
	}
}

func TestRunCustomDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte("มากิน\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := app.Run(context.Background(), app.Words, app.Config{
		Text:      "มากิน",
		Engine:    "newmm",
		DictPath:  path,
		Separator: "|",
	})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got != "มากิน" {
		t.Errorf("Run() with custom dict = %q, want %q", got, "มากิน")
	}
}

func TestRunAllSourcesFail(t *testing.T) {
	_, err := app.Run(context.Background(), app.Words, app.Config{
		Sources: []string{filepath.Join(t.TempDir(), "absent.txt")},
		Engine:  "newmm",
		Quiet:   true,
	})
	if err == nil {
		t.Fatal("Run() expected error when no source yields content")
	}
	if !strings.Contains(err.Error(), "no content read from any source") {
		t.Errorf("Run() error = %v, want mention of empty result", err)
	}
}

func TestRunEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := app.Run(context.Background(), app.Words, app.Config{
		Sources: []string{path},
		Engine:  "newmm",
		JSON:    true,
	})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got != "[]" {
		t.Errorf("Run() on empty input = %q, want %q", got, "[]")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		method counter.CountingMethod
		cfg    app.Config
		want   string
	}{
		{
			name:   "word count",
			method: counter.Words,
			cfg:    app.Config{Text: "ไปกินข้าว"},
			want:   "3",
		},
		{
			name:   "character count",
			method: counter.Characters,
			cfg:    app.Config{Text: "ไปกินข้าว"},
			want:   "9",
		},
		{
			name:   "word count as JSON",
			method: counter.Words,
			cfg:    app.Config{Text: "ไปกินข้าว", JSON: true},
			want:   `{"count":3,"method":"words"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.Count(context.Background(), tt.method, tt.cfg)
			if err != nil {
				t.Fatalf("Count() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Count() = %q, want %q", got, tt.want)
			}
		})
	}
}
