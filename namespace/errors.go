package namespace

import "errors"

// Failure kinds. Every error returned by a [FileSystem] operation wraps exactly
// one of these and can be matched with errors.Is.
var (
	ErrNameTooShort          = errors.New("name too short, must be at least one character")
	ErrInvalidCharacter      = errors.New("name contains invalid character")
	ErrNameTooLong           = errors.New("name too long")
	ErrAlreadyExists         = errors.New("name already exists")
	ErrNoSuchEntry           = errors.New("no such file or directory")
	ErrPathNotFound          = errors.New("path not found")
	ErrNotADirectory         = errors.New("not a directory")
	ErrNotAFile              = errors.New("not a file")
	ErrAtRoot                = errors.New("already at root")
	ErrInvalidPathCharacter  = errors.New("path contains invalid character")
	ErrInternalInconsistency = errors.New("internal error: present working directory corrupted")
)

// PathError records the operation and the name or path argument that failed.
type PathError struct {
	Op   string // Operation name i.e. "mkdir"
	Path string // Name or path argument as passed by the caller
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
