package service

import (
	"context"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	"golang.org/x/sync/errgroup"
)

// paginate запрашивает страницу и общее количество параллельно.
func paginate[T any](
	ctx context.Context,
	req entities.PageRequest,
	list func(ctx context.Context, page entities.PageRequest) ([]T, error),
	count func(ctx context.Context) (int, error),
) (entities.Page[T], error) {
	req = req.Normalize()

	var (
		items []T
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = list(gctx, req)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return entities.Page[T]{}, err
	}
	return entities.NewPage(items, total, req), nil
}
