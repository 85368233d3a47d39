// Package mocks provides testify doubles for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/annogen/internal/controller"
	m "github.com/mouse-blink/annogen/internal/model"
)

// MockUI is a mock.Mock backed controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a mock that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mk := &MockUI{}
	mk.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockUI) Start(options ...controller.StartOption) error {
	return mk.Called(len(options)).Error(0)
}

func (mk *MockUI) Close() {
	mk.Called()
}

func (mk *MockUI) Wait() {
	mk.Called()
}

func (mk *MockUI) DisplayEstimation(results []m.FileResult, err error) error {
	return mk.Called(results, err).Error(0)
}

func (mk *MockUI) DisplayConcurrencyInfo(threads int, count int) {
	mk.Called(threads, count)
}

func (mk *MockUI) DisplayFileResult(result m.FileResult) {
	mk.Called(result)
}

func (mk *MockUI) DisplaySummary(report m.Report) error {
	return mk.Called(report).Error(0)
}

func (mk *MockUI) DisplayDiff(path m.Path, diff string) error {
	return mk.Called(path, diff).Error(0)
}
