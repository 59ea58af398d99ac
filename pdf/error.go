package pdf

import "fmt"

// Machine-readable error codes distinguishing a failed document build from a
// failed export of a finished document
const (
	CodeGeneration = "PDF_GENERATION_ERROR"
	CodeExport     = "PDF_EXPORT_ERROR"
)

// GenerationError wraps any failure raised while building or exporting a
// report document, retaining the original cause
type GenerationError struct {
	Code    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the original cause
func (e *GenerationError) Unwrap() error {
	return e.Err
}

func generationError(message string, err error) *GenerationError {
	return &GenerationError{Code: CodeGeneration, Message: message, Err: err}
}

func exportError(message string, err error) *GenerationError {
	return &GenerationError{Code: CodeExport, Message: message, Err: err}
}
