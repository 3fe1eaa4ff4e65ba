package schema

// Custom string types for type safety.
type (
	// GraphVariant selects the visibility rule used to build graphs.
	GraphVariant string

	// OutputMode represents the format of the output.
	OutputMode string

	// FailureKind buckets per-series failures for reporting.
	FailureKind string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All graph variants supported.
const (
	NaturalVariant    GraphVariant = "natural" // default
	HorizontalVariant GraphVariant = "horizontal"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Failure taxonomy. Every skipped series is recorded under exactly one kind.
const (
	FailureEmptyGraph       FailureKind = "empty_graph"
	FailureInvalidInput     FailureKind = "invalid_input"
	FailureInsufficientData FailureKind = "insufficient_fit_data"
	FailureSourceNotFound   FailureKind = "source_not_found"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllGraphVariants returns a list of all supported graph variants.
var AllGraphVariants = []GraphVariant{NaturalVariant, HorizontalVariant}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidGraphVariants lists all valid graph variants.
var ValidGraphVariants = map[GraphVariant]struct{}{
	NaturalVariant:    {},
	HorizontalVariant: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
