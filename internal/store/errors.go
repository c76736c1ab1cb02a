package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotSaved is returned when a write completes without a driver
	// error but the number of affected rows is zero, indicating that the
	// document was not actually persisted.
	ErrDocumentNotSaved = errors.New("configuration document was not saved")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrEncodingDocument is returned when the document cannot be serialised
	// for storage. Persisted state is left intact in this case.
	ErrEncodingDocument = errors.New("failed to encode configuration document")
)
