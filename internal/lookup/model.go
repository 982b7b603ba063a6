package lookup

import (
	"time"

	"go-lexicon/internal/definition"

	"github.com/google/uuid"
)

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Lookup is the metadata of one definition request. The generated text is not stored.
type Lookup struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Word       string    `gorm:"size:255;index;not null" json:"word"`
	Language   string    `gorm:"size:32" json:"language"`
	Mode       string    `gorm:"size:10;not null" json:"mode"`
	Outcome    string    `gorm:"size:10;not null" json:"outcome"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func FromOutcome(o definition.Outcome) Lookup {
	l := Lookup{
		ID:         uuid.NewString(),
		Word:       o.Word,
		Language:   o.Policy.Code,
		Mode:       string(o.Policy.Mode),
		Outcome:    OutcomeSucceeded,
		DurationMs: o.Duration.Milliseconds(),
		CreatedAt:  o.At,
	}
	if o.Err != nil {
		l.Outcome = OutcomeFailed
		l.Error = o.Err.Error()
	}
	return l
}
