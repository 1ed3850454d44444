package input

import (
	"context"

	"i18ncheck/internal/domain"
)

type KeyCheckUseCase interface {
	Check(ctx context.Context) (domain.Result, error)
}
