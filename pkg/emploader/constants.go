package emploader

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load completed and names were printed
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // Wrong argument count, bad port or threshold
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid emploader.yaml or flag values
	ExitConnectionError = 11 // Failed to connect to database
	ExitInputFileError  = 15 // Employee file missing or unreadable
	ExitMalformedRecord = 16 // Employee file line could not be parsed
	ExitSchemaFailed    = 17 // Table DDL failed (usually: tables already exist)
	ExitInsertFailed    = 18 // Row insert failed (usually: duplicate eid)
	ExitRoutineFailed   = 19 // getnames could not be created or called
)

const (
	// DefaultPort is the PostgreSQL port used when none is configured.
	DefaultPort = 5432

	// DefaultSSLMode matches libpq's default.
	DefaultSSLMode = "prefer"

	// DefaultAppName is reported to the server as application_name.
	DefaultAppName = "emploader"

	// DefaultTimeout bounds a whole run so a wedged server cannot hang the process.
	DefaultTimeout = 3 * time.Minute

	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// FieldsPerRecord is the number of comma-separated fields on each input line.
	FieldsPerRecord = 4

	// PromptPassword as the password argument asks for the password on the terminal.
	PromptPassword = "-"
)
