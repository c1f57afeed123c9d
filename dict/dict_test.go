package dict

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuildFromSlice(t *testing.T) {
	trie, err := Build([]string{"ไป", "กิน", "ข้าว", "กิน"})
	if err != nil {
		t.Fatalf("Build([]string) unexpected error: %v", err)
	}

	if trie.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (duplicates must collapse)", trie.Len())
	}

	for _, w := range []string{"ไป", "กิน", "ข้าว"} {
		if !trie.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if trie.Contains("น้ำ") {
		t.Errorf("Contains(%q) = true, want false", "น้ำ")
	}
}

func TestBuildIdempotent(t *testing.T) {
	trie, err := Build([]string{"ไป", "กิน"})
	if err != nil {
		t.Fatalf("Build unexpected error: %v", err)
	}

	again, err := Build(trie)
	if err != nil {
		t.Fatalf("Build(*Trie) unexpected error: %v", err)
	}
	if again != trie {
		t.Errorf("Build(*Trie) returned a different trie, want the same instance")
	}
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "ไป\nกิน\r\nข้าว\n\nกิน\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	trie, err := Build(path)
	if err != nil {
		t.Fatalf("Build(path) unexpected error: %v", err)
	}
	if trie.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (blank lines and duplicates ignored)", trie.Len())
	}
	if !trie.Contains("กิน") {
		t.Errorf("Contains(%q) = false, want true (CRLF line should be trimmed)", "กิน")
	}
}

func TestBuildFromMissingFile(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if err == nil {
		t.Fatal("Build(missing path) expected error, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Build(missing path) error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestBuildFromMaps(t *testing.T) {
	trie, err := Build(map[string]struct{}{"ไป": {}, "กิน": {}})
	if err != nil {
		t.Fatalf("Build(map[string]struct{}) unexpected error: %v", err)
	}
	if trie.Len() != 2 {
		t.Errorf("Len() = %d, want 2", trie.Len())
	}

	trie, err = Build(map[string]bool{"ไป": true, "กิน": false})
	if err != nil {
		t.Fatalf("Build(map[string]bool) unexpected error: %v", err)
	}
	if trie.Contains("กิน") {
		t.Error("Contains(false-valued key) = true, want false")
	}
	if !trie.Contains("ไป") {
		t.Error("Contains(true-valued key) = false, want true")
	}
}

func TestBuildFromSeq(t *testing.T) {
	src := iter.Seq[string](func(yield func(string) bool) {
		for _, w := range []string{"ไป", "กิน"} {
			if !yield(w) {
				return
			}
		}
	})

	trie, err := Build(src)
	if err != nil {
		t.Fatalf("Build(iter.Seq) unexpected error: %v", err)
	}
	if !trie.Contains("กิน") {
		t.Error("Contains after Seq build = false, want true")
	}
}

func TestBuildUnsupportedSource(t *testing.T) {
	for _, source := range []any{42, 3.14, []int{1, 2}, nil} {
		_, err := Build(source)
		if err == nil {
			t.Errorf("Build(%T) expected error, got nil", source)
			continue
		}
		var unsupported *UnsupportedSourceError
		if !errors.As(err, &unsupported) {
			t.Errorf("Build(%T) error = %v, want *UnsupportedSourceError", source, err)
		}
	}
}

func TestPrefixMatches(t *testing.T) {
	trie := New([]string{"มา", "มาก", "มาตรา", "ตลาด"})

	tests := []struct {
		name string
		text string
		want []int
	}{
		{"nested prefixes", "มากมาย", []int{2, 3}},
		{"two of three", "มาตราสอง", []int{2, 5}},
		{"no match", "ไป", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trie.PrefixMatches([]rune(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PrefixMatches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	input := []string{"ข้าว", "ไป", "กิน", "กิน"}
	trie := New(input)

	words := trie.Words()
	want := []string{"กิน", "ข้าว", "ไป"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Words() = %v, want sorted %v", words, want)
	}

	// the returned slice is a copy; mutating it must not affect the trie
	words[0] = "mutated"
	if !trie.Contains("กิน") {
		t.Error("trie mutated through Words() result")
	}
}
