package errors

import crdb "github.com/cockroachdb/errors"

// Constructors and helpers forwarded from github.com/cockroachdb/errors.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	WithHint = crdb.WithHint
	Mark     = crdb.Mark
	Is       = crdb.Is
	As       = crdb.As
	Unwrap   = crdb.Unwrap
	Join     = crdb.Join
)

// GetAllHints returns the user hints attached anywhere in err's chain.
func GetAllHints(err error) []string {
	return crdb.GetAllHints(err)
}
