package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// Employee is one parsed line of the input file.
type Employee struct {
	EID    pgtype.Numeric
	Name   string
	Age    pgtype.Numeric
	Salary pgtype.Numeric

	// Line is the 1-based line number the record came from.
	Line int
}

// ParseLine parses a single eid,ename,age,salary line.
func ParseLine(line string, lineNo int) (Employee, error) {
	fields := strings.Split(line, ",")
	if len(fields) != emploader.FieldsPerRecord {
		return Employee{}, fmt.Errorf("%w: line %d: expected %d comma-separated fields, got %d",
			emploader.ErrMalformedRecord, lineNo, emploader.FieldsPerRecord, len(fields))
	}

	eid, err := parseDecimal(fields[0])
	if err != nil {
		return Employee{}, fieldError(lineNo, "eid", fields[0], err)
	}
	age, err := parseDecimal(fields[2])
	if err != nil {
		return Employee{}, fieldError(lineNo, "age", fields[2], err)
	}
	salary, err := parseDecimal(fields[3])
	if err != nil {
		return Employee{}, fieldError(lineNo, "salary", fields[3], err)
	}

	return Employee{
		EID:    eid,
		Name:   fields[1],
		Age:    age,
		Salary: salary,
		Line:   lineNo,
	}, nil
}

// parseDecimal parses s as an exact, finite decimal. Exponent notation
// (1e3, 1.5E-2) is accepted and kept exact.
func parseDecimal(s string) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if s == "" {
		return n, fmt.Errorf("empty value")
	}

	mantissa, exp := s, int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		mantissa = s[:i]
		exp, err = strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil || mantissa == "" {
			return n, fmt.Errorf("invalid exponent")
		}
	}

	if err := n.Scan(mantissa); err != nil {
		return pgtype.Numeric{}, err
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return pgtype.Numeric{}, fmt.Errorf("not a finite number")
	}

	scaled := int64(n.Exp) + exp
	if scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return pgtype.Numeric{}, fmt.Errorf("exponent out of range")
	}
	n.Exp = int32(scaled)
	return n, nil
}

func fieldError(lineNo int, field, value string, err error) error {
	return fmt.Errorf("%w: line %d: %s %q is not a decimal number: %w",
		emploader.ErrMalformedRecord, lineNo, field, value, err)
}
