package models

// Word is an owned entity whose lifetime is bound to its concept: a word
// in some language expressing the concept, annotated with pronunciation
// and a usage nuance.
type Word struct {
	// WordID is assigned by the database on creation.
	WordID int64 `json:"id"`

	// ConceptID is the back-reference to the owning concept. The concept
	// owns the word; a word always belongs to exactly one concept.
	ConceptID int64 `json:"-"`

	// Word is the text of the word itself.
	Word string `json:"word"`

	// Language names the language the word belongs to (e.g. "Japanese").
	Language string `json:"language"`

	// IPA is the phonetic transcription.
	IPA string `json:"ipa"`

	// Nuance is a free-text usage note.
	Nuance string `json:"nuance"`
}

// TableName returns the name of the database table
// associated with the Word model.
func (w Word) TableName() string {
	return "words"
}
