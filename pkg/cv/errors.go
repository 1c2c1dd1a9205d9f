package cv

import (
	"fmt"

	"github.com/pkg/errors"
)

// ExportFailure reports which step of a CV export went wrong.
type ExportFailure struct {
	Op  string
	Err error
}

func (f *ExportFailure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("cv export failed: %s", f.Op)
	}
	return fmt.Sprintf("cv export failed: %s: %v", f.Op, f.Err)
}

func (f *ExportFailure) Unwrap() error {
	return f.Err
}

// IsExportFailure reports whether err carries an *ExportFailure.
func IsExportFailure(err error) bool {
	var f *ExportFailure
	return errors.As(err, &f)
}

func fail(op string, err error) error {
	return &ExportFailure{Op: op, Err: err}
}
