package controller

import m "github.com/mouse-blink/annogen/internal/model"

// Message types.
type estimationMsg struct {
	total int
	files []fileItem
	err   error
}

type concurrencyMsg struct {
	threads int
	count   int
}

type fileDoneMsg struct {
	result m.FileResult
}

type summaryMsg struct {
	report m.Report
}

// List item types.
type fileItem struct {
	path   string
	count  int
	status m.FileStatus
	detail string
}

func (f fileItem) FilterValue() string {
	return f.path
}

func newFileItem(r m.FileResult) fileItem {
	detail := string(r.Output)
	if r.Status == m.StatusFailed {
		detail = r.Error
	}

	return fileItem{
		path:   string(r.Path),
		count:  blocksAdded(r),
		status: r.Status,
		detail: detail,
	}
}
