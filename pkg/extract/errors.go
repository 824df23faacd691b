package extract

import (
	"errors"
	"fmt"
	"strings"
)

// NotImplementedError marks content types the extractor recognizes but cannot
// process. Files hitting it are stored without text extraction.
type NotImplementedError struct {
	ContentType string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("extraction not implemented for content type %q", e.ContentType)
}

// IsNotImplemented reports whether err is (or wraps) a NotImplementedError.
func IsNotImplemented(err error) bool {
	var nie *NotImplementedError
	return errors.As(err, &nie)
}

// MemoryLimitError marks extraction attempts that exceeded the memory budget.
// The pipeline reacts by re-planning the file into chunks.
type MemoryLimitError struct {
	FileSizeMB int64
	LimitMB    int64
	Cause      error
}

func (e *MemoryLimitError) Error() string {
	msg := fmt.Sprintf("file too large to extract in one pass (%d MB, limit %d MB)", e.FileSizeMB, e.LimitMB)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MemoryLimitError) Unwrap() error { return e.Cause }

// IsMemoryLimit reports whether err is (or wraps) a MemoryLimitError.
func IsMemoryLimit(err error) bool {
	var mle *MemoryLimitError
	return errors.As(err, &mle)
}

// memoryFailurePatterns match runtime failures that indicate the extractor ran
// out of memory rather than hit malformed input.
var memoryFailurePatterns = []string{
	"out of memory",
	"cannot allocate memory",
	"memory limit",
	"signal: killed",
	"runtime: out of memory",
}

// ClassifyFailure wraps err in a MemoryLimitError when its message matches a
// known memory-exhaustion pattern; otherwise returns err unchanged.
func ClassifyFailure(err error, fileSizeMB, limitMB int64) error {
	if err == nil {
		return nil
	}
	lower := strings.ToLower(err.Error())
	for _, pattern := range memoryFailurePatterns {
		if strings.Contains(lower, pattern) {
			return &MemoryLimitError{FileSizeMB: fileSizeMB, LimitMB: limitMB, Cause: err}
		}
	}
	return err
}
