//go:build !xgbext_no_record

package xgbext

func init() {
	errorSchemas[Record] = errorSchema{
		names: recordErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &RecordError{ErrorHeader: h, Kind: RecordErrorKind(number)}
		},
	}
}

type RecordErrorKind uint8

const RecordBadContext RecordErrorKind = 0

var recordErrorNames = []string{RecordBadContext: "BadContext"}

func (k RecordErrorKind) String() string { return kindName(recordErrorNames, int(k)) }

// RecordError is sent for an invalid record context, whose id is in
// BadValue.
type RecordError struct {
	ErrorHeader
	Kind RecordErrorKind
}

func (err *RecordError) Extension() Extension { return Record }
func (err *RecordError) Error() string        { return err.describe("Record", err.Kind.String()) }
