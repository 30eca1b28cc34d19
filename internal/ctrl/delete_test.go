package ctrl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/codestore-go/internal/ctrl"
	mock "github.com/tjjh89017/codestore-go/internal/ctrl/mock"
	"github.com/tjjh89017/codestore-go/internal/store"
	"go.uber.org/mock/gomock"
)

func TestDeleteController_Execute(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()
	ctx := context.Background()

	gomock.InOrder(
		mockStore.EXPECT().DeleteContent(ctx, "a").Return(nil),
		mockStore.EXPECT().DeleteContent(ctx, "b").Return(nil),
	)

	controller := ctrl.NewDeleteController(mockStore, &logger)
	if err := controller.Execute(ctx, "a", "b"); err != nil {
		t.Errorf("Execute() error = %v, want nil", err)
	}
}

func TestDeleteController_Execute_StopsAtFirstError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()
	ctx := context.Background()

	// "c" must never be attempted
	gomock.InOrder(
		mockStore.EXPECT().DeleteContent(ctx, "a").Return(nil),
		mockStore.EXPECT().DeleteContent(ctx, "b").Return(store.ErrTransport),
	)

	controller := ctrl.NewDeleteController(mockStore, &logger)
	err := controller.Execute(ctx, "a", "b", "c")
	if !errors.Is(err, store.ErrTransport) {
		t.Errorf("Execute() error = %v, want ErrTransport", err)
	}
}

func TestDeleteController_Execute_NoKeys(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()

	controller := ctrl.NewDeleteController(mockStore, &logger)
	if err := controller.Execute(context.Background()); !errors.Is(err, ctrl.ErrNoKeys) {
		t.Errorf("Execute() error = %v, want ErrNoKeys", err)
	}
}
