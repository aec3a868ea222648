package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, token, expires_at)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, token, expires_at;`

	findUserByUsername = `SELECT user_id, username, token, expires_at
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT user_id, username, token, expires_at
    FROM users
    WHERE token = $1;`

	reactivateUser = `UPDATE users
    SET token = $2, expires_at = $3
    WHERE username = $1 AND expires_at <= now()
    RETURNING user_id, username, token, expires_at;`

	renewUserByToken = `UPDATE users
    SET expires_at = $2
    WHERE token = $1 AND expires_at > now()
    RETURNING user_id, username, token, expires_at;`

	expireUserByToken = `UPDATE users
    SET expires_at = $2
    WHERE token = $1;`

	createConcept = `INSERT INTO concepts (username, name, notes)
    VALUES ($1, $2, $3)
    RETURNING concept_id, username, name, notes;`

	getConceptByID = `SELECT concept_id, username, name, notes
    FROM concepts
    WHERE username = $1 AND concept_id = $2;`

	getAllConcepts = `SELECT concept_id, username, name, notes
    FROM concepts
    WHERE username = $1
    ORDER BY concept_id;`

	updateConcept = `UPDATE concepts
    SET name = $3, notes = $4
    WHERE username = $1 AND concept_id = $2
    RETURNING concept_id, username, name, notes;`

	deleteConcept = `DELETE FROM concepts
    WHERE username = $1 AND concept_id = $2;`

	// getWordsForConcepts is the batched child fetch of the eager-loading
	// contract: one query covers the whole parent-id set, never one query
	// per concept.
	getWordsForConcepts = `SELECT word_id, concept_id, word, language, ipa, nuance
    FROM words
    WHERE concept_id = ANY($1)
    ORDER BY concept_id, word_id;`

	conceptExists = `SELECT EXISTS (
        SELECT 1 FROM concepts WHERE username = $1 AND concept_id = $2
    );`

	createWord = `INSERT INTO words (concept_id, word, language, ipa, nuance)
    SELECT c.concept_id, $3, $4, $5, $6
    FROM concepts c
    WHERE c.username = $1 AND c.concept_id = $2
    RETURNING word_id, concept_id, word, language, ipa, nuance;`

	getWordsByConcept = `SELECT w.word_id, w.concept_id, w.word, w.language, w.ipa, w.nuance
    FROM words w
    JOIN concepts c ON c.concept_id = w.concept_id
    WHERE c.username = $1 AND w.concept_id = $2
    ORDER BY w.word_id;`

	getWordByID = `SELECT w.word_id, w.concept_id, w.word, w.language, w.ipa, w.nuance
    FROM words w
    JOIN concepts c ON c.concept_id = w.concept_id
    WHERE c.username = $1 AND w.concept_id = $2 AND w.word_id = $3;`

	updateWord = `UPDATE words w
    SET word = $4, language = $5, ipa = $6, nuance = $7
    FROM concepts c
    WHERE c.concept_id = w.concept_id
      AND c.username = $1 AND w.concept_id = $2 AND w.word_id = $3
    RETURNING w.word_id, w.concept_id, w.word, w.language, w.ipa, w.nuance;`

	deleteWord = `DELETE FROM words w
    USING concepts c
    WHERE c.concept_id = w.concept_id
      AND c.username = $1 AND w.concept_id = $2 AND w.word_id = $3;`
)

// buildSearchConceptsQuery assembles the keyword search over a tenant's
// concepts. A concept matches when the keyword is a substring of its name,
// its notes, or the text of any associated word. DISTINCT collapses
// concepts matched by several words into a single row; the word list is
// attached afterwards by the batched child fetch.
func buildSearchConceptsQuery(username, keyword string) (string, []any, error) {
	pattern := "%" + keyword + "%"

	return sq.Select("c.concept_id", "c.username", "c.name", "c.notes").
		Distinct().
		From("concepts c").
		LeftJoin("words w ON w.concept_id = c.concept_id").
		Where(sq.Eq{"c.username": username}).
		Where(sq.Or{
			sq.Like{"c.name": pattern},
			sq.Like{"c.notes": pattern},
			sq.Like{"w.word": pattern},
		}).
		OrderBy("c.concept_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
