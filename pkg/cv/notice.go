package cv

// NoticeKind is the visual variant of a user-facing notice.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

const genericFailure = "Failed to generate PDF. Please try again."

// Notice is a transient status message shown while a CV export runs.
type Notice struct {
	Kind        NoticeKind `json:"variant"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

// Started is shown when an export begins.
func Started() Notice {
	return Notice{Kind: NoticeInfo, Title: "Generating PDF", Description: "Please wait while we prepare your CV..."}
}

// Succeeded is shown once the document has been delivered.
func Succeeded() Notice {
	return Notice{Kind: NoticeSuccess, Title: "PDF Generated", Description: "Your CV has been downloaded successfully."}
}

// Failed describes err, falling back to a generic message.
func Failed(err error) Notice {
	description := genericFailure
	if err != nil && err.Error() != "" {
		description = err.Error()
	}
	return Notice{Kind: NoticeError, Title: "Error", Description: description}
}
