// Package records reads the employee input file.
//
// Each line holds exactly four comma-separated fields, in order:
//
//	eid,ename,age,salary
//
// There is no header, no quoting and no whitespace trimming. The numeric
// fields are parsed as exact decimals (pgtype.Numeric) so they reach the
// NUMERIC columns of emp without a floating-point round trip. Any line that
// does not fit this shape is an emploader.ErrMalformedRecord.
package records
