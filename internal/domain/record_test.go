package domain

import (
	"testing"
	"time"
)

func TestTastingRecord_IsDeleted(t *testing.T) {
	tests := []struct {
		name    string
		record  TastingRecord
		deleted bool
	}{
		{
			name:    "live record",
			record:  TastingRecord{Memo: "피트향이 강하다"},
			deleted: false,
		},
		{
			name:    "deleted column set",
			record:  TastingRecord{Deleted: true, Memo: "피트향이 강하다"},
			deleted: true,
		},
		{
			name:    "legacy memo marker only",
			record:  TastingRecord{Memo: "[삭제됨 2024-03-01 12:00] 피트향이 강하다"},
			deleted: true,
		},
		{
			name:    "empty memo",
			record:  TastingRecord{},
			deleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.IsDeleted(); got != tt.deleted {
				t.Errorf("IsDeleted() = %v, want %v", got, tt.deleted)
			}
		})
	}
}

func TestTastingRecord_HasMemo(t *testing.T) {
	tests := []struct {
		name string
		memo string
		want bool
	}{
		{"normal memo", "바닐라와 꿀", true},
		{"empty memo", "", false},
		{"deleted marker", "[삭제됨 2024-03-01 12:00] 바닐라와 꿀", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TastingRecord{Memo: tt.memo}
			if got := r.HasMemo(); got != tt.want {
				t.Errorf("HasMemo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkDeletedMemo(t *testing.T) {
	at := time.Date(2024, 5, 1, 3, 30, 0, 0, KST)
	got := MarkDeletedMemo("good dram", at)
	want := "[삭제됨 2024-05-01 03:30] good dram"
	if got != want {
		t.Errorf("MarkDeletedMemo() = %q, want %q", got, want)
	}

	// marked memos must trip both read-side filters
	r := TastingRecord{Memo: got}
	if !r.IsDeleted() {
		t.Error("marked record should be deleted")
	}
	if r.HasMemo() {
		t.Error("marked record should not have an analyzable memo")
	}
}

func TestAppendKeyword(t *testing.T) {
	tests := []struct {
		name      string
		joined    string
		kw        string
		want      string
		wantAdded bool
	}{
		{"empty list", "", "피트", "피트", true},
		{"append", "피트", "바닐라", "피트, 바닐라", true},
		{"duplicate", "피트, 바닐라", "바닐라", "피트, 바닐라", false},
		{"duplicate without space", "피트,바닐라", "바닐라", "피트,바닐라", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, added := AppendKeyword(tt.joined, tt.kw)
			if got != tt.want || added != tt.wantAdded {
				t.Errorf("AppendKeyword(%q, %q) = (%q, %v), want (%q, %v)",
					tt.joined, tt.kw, got, added, tt.want, tt.wantAdded)
			}
		})
	}
}

func TestTastingRecord_Keywords(t *testing.T) {
	r := TastingRecord{Keyword: " 피트, 바닐라 ,,꿀 "}
	got := r.Keywords()
	want := []string{"피트", "바닐라", "꿀"}
	if len(got) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	empty := TastingRecord{}
	if kws := empty.Keywords(); kws != nil {
		t.Errorf("Keywords() on empty column = %v, want nil", kws)
	}
}

func TestNoteToKorean(t *testing.T) {
	if got := NoteToKorean("peaty"); got != "피트" {
		t.Errorf("NoteToKorean(peaty) = %q, want 피트", got)
	}
	if got := NoteToKorean("oaky"); got != "우디" {
		t.Errorf("NoteToKorean(oaky) = %q, want 우디", got)
	}
	// unknown tags pass through
	if got := NoteToKorean("metallic"); got != "metallic" {
		t.Errorf("NoteToKorean(metallic) = %q, want metallic", got)
	}
}

func TestIsValidTasteNote(t *testing.T) {
	for _, note := range TasteNotes {
		if !IsValidTasteNote(note) {
			t.Errorf("expected %q to be a valid taste note", note)
		}
	}
	if IsValidTasteNote("metallic") {
		t.Error("metallic should not be a valid taste note")
	}
	if IsValidTasteNote("") {
		t.Error("empty string should not be a valid taste note")
	}
}
