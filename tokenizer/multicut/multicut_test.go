package multicut

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chriscorrea/thaitok/dict"
)

func TestSegment(t *testing.T) {
	d := dict.New([]string{"มา", "มาก", "กิน", "ข้าว", "ไป"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"dictionary words", "ไปกินข้าว", []string{"ไป", "กิน", "ข้าว"}},
		// greedy longest would take "มาก" and strand "ิน"; the graph search
		// finds the two-token path instead
		{"fewest tokens beats greedy", "มากิน", []string{"มา", "กิน"}},
		{"tie prefers longer first token", "มาก", []string{"มาก"}},
		{"runs around unknowns", "ไป abc กิน", []string{"ไป", " ", "abc", " ", "กิน"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, d)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegmentReconstruction(t *testing.T) {
	d := dict.New([]string{"มา", "มาก", "กิน"})

	texts := []string{"มากินมาก", "มากxyzกิน", " มาก "}
	for _, text := range texts {
		if got := strings.Join(Segment(text, d), ""); got != text {
			t.Errorf("concatenated tokens = %q, want original %q", got, text)
		}
	}
}
