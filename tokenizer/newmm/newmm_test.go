package newmm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chriscorrea/thaitok/dict"
)

func TestSegment(t *testing.T) {
	d := dict.New([]string{"ไป", "กิน", "ข้าว", "มา", "มาก", "ตลาด"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"all dictionary words", "ไปกินข้าว", []string{"ไป", "กิน", "ข้าว"}},
		{"longest match wins", "มาก", []string{"มาก"}},
		{"space run is one token", "ไป  กิน", []string{"ไป", "  ", "กิน"}},
		{"latin run is one token", "ไปABCกิน", []string{"ไป", "ABC", "กิน"}},
		{"digit run is one token", "กิน 21 ข้าว", []string{"กิน", " ", "21", " ", "ข้าว"}},
		{"unknown thai run kept verbatim", "ฉันกิน", []string{"ฉัน", "กิน"}},
		{"unknown only", "ฉัน", []string{"ฉัน"}},
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

func TestSegmentClusterConstraint(t *testing.T) {
	// "เกิ" ends inside the cluster "เกิด", so the dictionary entry must be
	// skipped and the whole cluster kept as an unmatched run.
	d := dict.New([]string{"เกิ"})

	got := Segment("เกิด", d)
	want := []string{"เกิด"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment(%q) = %v, want %v (no token may end inside a cluster)", "เกิด", got, want)
	}
}

func TestSegmentReconstruction(t *testing.T) {
	d := dict.New([]string{"ไป", "กิน", "ข้าว", "และ"})

	texts := []string{
		"ไปกินข้าว",
		"ฉันไปกินข้าวและน้ำ",
		" นำหน้าและตามหลัง ",
		"ปนกัน abc 123\nขึ้นบรรทัดใหม่",
	}

	for _, text := range texts {
		if got := strings.Join(Segment(text, d), ""); got != text {
			t.Errorf("concatenated tokens = %q, want original %q", got, text)
		}
	}
}
