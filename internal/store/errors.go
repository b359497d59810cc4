package store

import "errors"

// Sentinel errors returned by [UserStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record matches the requested id
	// or username.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCorruptedStore is returned when the users file exists but does not
	// hold a JSON array of records.
	ErrCorruptedStore = errors.New("users file is corrupted")
)

// Low-level I/O errors. These are wrapped by storage methods when the
// underlying file or database operation fails before any domain logic can
// be applied.
var (
	// ErrReadingStore is returned when the users file cannot be read.
	ErrReadingStore = errors.New("error reading users file")

	// ErrWritingStore is returned when the users file cannot be replaced.
	ErrWritingStore = errors.New("error writing users file")

	// ErrLockingStore is returned when the cross-process file lock cannot be
	// acquired.
	ErrLockingStore = errors.New("error locking users file")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrIDAllocationFailed is returned when every attempt to allocate the
	// next id lost a race with a concurrent writer.
	ErrIDAllocationFailed = errors.New("failed to allocate user id")
)
