//go:generate mockgen -destination=./mock/mock_store.go -package=mock_ctrl . CodeStore

package ctrl

import (
	"context"

	"github.com/tjjh89017/codestore-go/internal/entity"
	"github.com/tjjh89017/codestore-go/internal/store"
)

var _ CodeStore = &store.RemoteCodeStore{}

type CodeStore interface {
	ListCodes(ctx context.Context) (entity.Codes, error)
	GetContent(ctx context.Context, key string) (string, error)
	PutCode(ctx context.Context, key string, content string) (*store.Response, error)
	DeleteContent(ctx context.Context, key string) error
}
