package upload

import "errors"

var (
	// ErrNoFile is returned when a file-selection event carries no files.
	ErrNoFile = errors.New("no file selected")
	// ErrUnsupportedExtension is returned when the selected file's extension
	// is not in the allow-list.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	// ErrSessionOpen is returned when a dialog is opened while another
	// session is still live.
	ErrSessionOpen = errors.New("upload session already open")
	// ErrInvalidFields is returned when submit is attempted with failing
	// field rules.
	ErrInvalidFields = errors.New("upload fields are invalid")
	// ErrSubmitBlocked is returned when submit is attempted while submission
	// is disabled.
	ErrSubmitBlocked = errors.New("submission is blocked")
)
