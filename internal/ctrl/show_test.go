package ctrl_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/codestore-go/internal/ctrl"
	mock "github.com/tjjh89017/codestore-go/internal/ctrl/mock"
	"github.com/tjjh89017/codestore-go/internal/store"
	"go.uber.org/mock/gomock"
)

func TestShowController_Execute_SingleKey(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()

	mockStore.EXPECT().GetContent(gomock.Any(), "x").Return("graph TD;", nil)

	var out bytes.Buffer
	controller := ctrl.NewShowController(mockStore, &logger)
	if err := controller.Execute(context.Background(), &out, "x"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := out.String(); got != "graph TD;" {
		t.Errorf("Execute() output = %q, want verbatim content", got)
	}
}

func TestShowController_Execute_MultipleKeysKeepOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()

	mockStore.EXPECT().GetContent(gomock.Any(), "b").Return("second\n", nil)
	mockStore.EXPECT().GetContent(gomock.Any(), "a").Return("first", nil)

	var out bytes.Buffer
	controller := ctrl.NewShowController(mockStore, &logger)
	if err := controller.Execute(context.Background(), &out, "a", "b"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "==> a <==\nfirst\n\n==> b <==\nsecond\n"
	if got := out.String(); got != want {
		t.Errorf("Execute() output = %q, want %q", got, want)
	}
}

func TestShowController_Execute_NotFound(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()

	mockStore.EXPECT().GetContent(gomock.Any(), "missing").Return("", store.ErrNotFound)
	mockStore.EXPECT().GetContent(gomock.Any(), "x").Return("graph TD;", nil).AnyTimes()

	var out bytes.Buffer
	controller := ctrl.NewShowController(mockStore, &logger)
	err := controller.Execute(context.Background(), &out, "x", "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}

	if out.Len() != 0 {
		t.Errorf("Execute() should not write partial output, got %q", out.String())
	}
}

func TestShowController_Execute_NoKeys(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := mock.NewMockCodeStore(mockCtrl)
	logger := zerolog.Nop()

	controller := ctrl.NewShowController(mockStore, &logger)
	if err := controller.Execute(context.Background(), &bytes.Buffer{}); !errors.Is(err, ctrl.ErrNoKeys) {
		t.Errorf("Execute() error = %v, want ErrNoKeys", err)
	}
}
