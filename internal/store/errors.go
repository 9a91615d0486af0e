package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDayNotFound is returned when a query targets a schedule day
	// (identified by its ISO date) that does not exist in the database.
	ErrDayNotFound = errors.New("schedule day was not found")

	// ErrBudgetEntryNotFound is returned when an update or delete targets a
	// budget entry that does not exist in the database.
	ErrBudgetEntryNotFound = errors.New("budget entry was not found")

	// ErrJournalEntryNotFound is returned when an update or delete targets a
	// journal entry that does not exist in the database.
	ErrJournalEntryNotFound = errors.New("journal entry was not found")

	// ErrWeatherNotCached is returned when no weather snapshot has ever been
	// stored for the requested location.
	ErrWeatherNotCached = errors.New("no cached weather for location")

	// ErrMetaKeyNotFound is returned when the requested application metadata
	// key has no stored value yet (e.g. on first launch).
	ErrMetaKeyNotFound = errors.New("meta key was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
