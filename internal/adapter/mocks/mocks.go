// Package mocks provides testify doubles for the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/annogen/internal/adapter"
	m "github.com/mouse-blink/annogen/internal/model"
)

// MockSourceFSAdapter is a mock.Mock backed adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

var _ adapter.SourceFSAdapter = (*MockSourceFSAdapter)(nil)

// NewMockSourceFSAdapter creates a mock that asserts its expectations on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mk := &MockSourceFSAdapter{}
	mk.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockSourceFSAdapter) Get(roots []m.Path, extensions []string) ([]m.Path, error) {
	args := mk.Called(roots, extensions)

	paths, _ := args.Get(0).([]m.Path)

	return paths, args.Error(1)
}

func (mk *MockSourceFSAdapter) Walk(root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	return mk.Called(root, recursive, fn).Error(0)
}

func (mk *MockSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	args := mk.Called(path)

	lines, _ := args.Get(0).([]string)

	return lines, args.Error(1)
}

func (mk *MockSourceFSAdapter) WriteLines(path m.Path, lines []string) error {
	return mk.Called(path, lines).Error(0)
}

func (mk *MockSourceFSAdapter) ReadFileList(path m.Path) ([]m.Path, error) {
	args := mk.Called(path)

	paths, _ := args.Get(0).([]m.Path)

	return paths, args.Error(1)
}

func (mk *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	args := mk.Called(path)

	info, _ := args.Get(0).(os.FileInfo)

	return info, args.Error(1)
}

// MockTemplateLoader is a mock.Mock backed adapter.TemplateLoader.
type MockTemplateLoader struct {
	mock.Mock
}

var _ adapter.TemplateLoader = (*MockTemplateLoader)(nil)

// NewMockTemplateLoader creates a mock that asserts its expectations on cleanup.
func NewMockTemplateLoader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTemplateLoader {
	mk := &MockTemplateLoader{}
	mk.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockTemplateLoader) Load(path m.Path) (m.HeaderTemplate, error) {
	args := mk.Called(path)

	tmpl, _ := args.Get(0).(m.HeaderTemplate)

	return tmpl, args.Error(1)
}

// MockReportStore is a mock.Mock backed adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

var _ adapter.ReportStore = (*MockReportStore)(nil)

// NewMockReportStore creates a mock that asserts its expectations on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mk := &MockReportStore{}
	mk.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockReportStore) SaveReport(dir m.Path, report m.Report) error {
	return mk.Called(dir, report).Error(0)
}

func (mk *MockReportStore) LoadReport(dir m.Path) (m.Report, error) {
	args := mk.Called(dir)

	report, _ := args.Get(0).(m.Report)

	return report, args.Error(1)
}
