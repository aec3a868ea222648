package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registration fails because a live
	// user with the same username already exists. The users.username unique
	// constraint makes this hold under concurrent registrations as well.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrTokenCollision is returned when an insert or reactivation loses
	// against the users.token unique constraint. The odds of two equal
	// 256-bit random tokens are negligible, but the caller retries with a
	// freshly generated token anyway.
	ErrTokenCollision = errors.New("token already exists")

	// ErrUserNotFound is returned when a lookup or a conditional update
	// matched no user row.
	ErrUserNotFound = errors.New("no user was found")

	// ErrDuplicateConcept is returned when a concept insert or rename
	// violates the (username, name) unique constraint.
	ErrDuplicateConcept = errors.New("concept with this name already exists")

	// ErrConceptNotFound is returned when no concept with the requested id
	// belongs to the requesting tenant.
	ErrConceptNotFound = errors.New("concept was not found")

	// ErrWordNotFound is returned when no word with the requested id is
	// reachable through a concept owned by the requesting tenant.
	ErrWordNotFound = errors.New("word was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
