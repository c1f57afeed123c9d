package longest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chriscorrea/thaitok/dict"
)

func TestSegment(t *testing.T) {
	d := dict.New([]string{"ไป", "กิน", "ข้าว", "มา", "มาก"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"dictionary words", "ไปกินข้าว", []string{"ไป", "กิน", "ข้าว"}},
		{"longest wins", "มากข้าว", []string{"มาก", "ข้าว"}},
		{"greedy even when suboptimal", "มากิน", []string{"มาก", "ิน"}},
		{"space and latin runs", "กิน rice ", []string{"กิน", " ", "rice", " "}},
		{"unknown thai run", "น้ำกิน", []string{"น้ำ", "กิน"}},
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
	d := dict.New([]string{"กิน", "ข้าว"})

	texts := []string{"กินข้าวนอกบ้าน", " กิน\tข้าว ", "abcกิน123"}
	for _, text := range texts {
		if got := strings.Join(Segment(text, d), ""); got != text {
			t.Errorf("concatenated tokens = %q, want original %q", got, text)
		}
	}
}
