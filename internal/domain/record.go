package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DeletedMemoPrefix marks a soft-deleted record on its memo field.
// Legacy rows carry only this marker, so every read path must keep
// honoring it alongside the Deleted column.
const DeletedMemoPrefix = "[삭제됨"

// TasteNotes is the fixed tasting-tag vocabulary. Records never carry
// tags outside this set.
var TasteNotes = []string{
	"fruity", "floral", "sweet", "oaky",
	"nutty", "peaty", "smoky", "spicy",
}

var tasteNoteKorean = map[string]string{
	"fruity": "프루티",
	"floral": "플로럴",
	"sweet":  "스윗",
	"oaky":   "우디",
	"nutty":  "너티",
	"peaty":  "피트",
	"smoky":  "스모키",
	"spicy":  "스파이시",
}

// NoteToKorean returns the display name for a taste tag. Unknown tags
// are returned unchanged.
func NoteToKorean(note string) string {
	if ko, ok := tasteNoteKorean[note]; ok {
		return ko
	}
	return note
}

// IsValidTasteNote reports whether tag belongs to the fixed vocabulary.
func IsValidTasteNote(tag string) bool {
	_, ok := tasteNoteKorean[tag]
	return ok
}

// StringArray is a custom type for storing string arrays as JSON in the database.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// TastingRecord is one journal entry: a whiskey, a star rating, the
// taste tags picked by the user, and a free-text memo. The ID doubles
// as the recency key (millisecond timestamp at creation), so newest
// first means ID descending.
type TastingRecord struct {
	ID          string      `gorm:"type:text;primaryKey" json:"id"`
	UserID      string      `gorm:"type:text;not null;index:idx_records_user" json:"user_id"`
	Username    string      `gorm:"type:text" json:"username"`
	WhiskeyName string      `gorm:"type:text;not null;index:idx_records_whiskey" json:"whiskey_name"`
	TasteNotes  StringArray `gorm:"type:text" json:"taste_notes"`
	Rating      int         `json:"rating"`
	Memo        string      `gorm:"type:text" json:"memo"`
	Keyword     string      `gorm:"type:text" json:"keyword,omitempty"`
	TastedAt    string      `gorm:"type:text" json:"date"`
	Deleted     bool        `gorm:"index:idx_records_deleted" json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName returns the database table name for TastingRecord.
func (TastingRecord) TableName() string {
	return "tasting_records"
}

// IsDeleted reports whether the record is soft-deleted, either via the
// Deleted column or the legacy memo marker.
func (r *TastingRecord) IsDeleted() bool {
	return r.Deleted || strings.HasPrefix(r.Memo, DeletedMemoPrefix)
}

// HasMemo reports whether the record carries analyzable memo text.
func (r *TastingRecord) HasMemo() bool {
	return r.Memo != "" && !strings.HasPrefix(r.Memo, DeletedMemoPrefix)
}

// Keywords splits the comma-joined keyword column into a clean list.
func (r *TastingRecord) Keywords() []string {
	return splitKeywords(r.Keyword)
}

func splitKeywords(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// KST is the journal's display timezone; deletion stamps use it.
var KST = time.FixedZone("KST", 9*60*60)

// MarkDeletedMemo prefixes memo with the soft-delete marker and a
// KST deletion stamp, matching the legacy row format.
func MarkDeletedMemo(memo string, at time.Time) string {
	return DeletedMemoPrefix + " " + at.In(KST).Format("2006-01-02 15:04") + "] " + memo
}

// AppendKeyword adds kw to a comma-joined keyword list unless it is
// already present. The second return value reports whether the list
// changed.
func AppendKeyword(joined, kw string) (string, bool) {
	for _, existing := range splitKeywords(joined) {
		if existing == kw {
			return joined, false
		}
	}
	if joined == "" {
		return kw, true
	}
	return joined + ", " + kw, true
}
