package cmd

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resuffix.dev/pkg/resuffix/internal/domain"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// mockWorkflow is a testify mock of domain.Workflow for command tests.
type mockWorkflow struct {
	mock.Mock
}

func (mw *mockWorkflow) Run(ctx context.Context, args domain.RunArgs) (m.RunSummary, error) {
	callArgs := mw.Called(ctx, args)

	return callArgs.Get(0).(m.RunSummary), callArgs.Error(1)
}

func (mw *mockWorkflow) Preview(ctx context.Context, args domain.PreviewArgs) error {
	return mw.Called(ctx, args).Error(0)
}
