// Package mocks provides testify doubles for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/annogen/internal/domain"
)

// MockWorkflow is a mock.Mock backed domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a mock that asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mk := &MockWorkflow{}
	mk.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockWorkflow) Estimate(args domain.EstimateArgs) error {
	return mk.Called(args).Error(0)
}

func (mk *MockWorkflow) Run(args domain.RunArgs) error {
	return mk.Called(args).Error(0)
}

func (mk *MockWorkflow) Diff(args domain.EstimateArgs) error {
	return mk.Called(args).Error(0)
}

func (mk *MockWorkflow) View(args domain.ViewArgs) error {
	return mk.Called(args).Error(0)
}
