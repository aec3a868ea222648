package models

// Concept is the aggregate root of the memo domain: an idea (such as
// "async processing") together with its equivalent words across
// languages. Every concept belongs to exactly one tenant, identified by
// Username, and is always fetched together with its full word list.
type Concept struct {
	// ConceptID is assigned by the database on creation.
	ConceptID int64 `json:"id"`

	// Username is the tenant key. Every read and write at the store layer
	// is filtered by this field; it is never settable by the client.
	Username string `json:"-"`

	// Name is required, non-empty and unique within the owner's concept set.
	Name string `json:"name"`

	// Notes is optional free text describing the concept.
	Notes string `json:"notes"`

	// Words is the owned, ordered collection of word entities. Deleting the
	// concept deletes its words; fetching the concept always populates them.
	Words []Word `json:"words"`
}

// TableName returns the name of the database table
// associated with the Concept model.
func (c Concept) TableName() string {
	return "concepts"
}
