package usecase

import (
	"context"
	"errors"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/tag"
	"github.com/nglume/nglume/internal/tag/repository"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip tag.GetInput) ([]model.Tag, error) {
	tags, err := uc.repo.Get(ctx, sc, repository.GetOptions{Search: ip.Search})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tag.usecase.Get: %v", err)
		return nil, err
	}

	return tags, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip tag.CreateInput) (model.Tag, error) {
	// Tag names are unique case-insensitively.
	if _, err := uc.repo.GetOneByName(ctx, sc, ip.Tag); err == nil {
		return model.Tag{}, tag.ErrTagExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.tag.usecase.Create.GetOneByName: %v", err)
		return model.Tag{}, err
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Tag: model.Tag{
			ID:  ip.ID,
			Tag: ip.Tag,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tag.usecase.Create: %v", err)
		return model.Tag{}, err
	}

	return created, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tag.ErrTagNotFound
		}
		uc.l.Errorf(ctx, "internal.tag.usecase.Delete: %v", err)
		return err
	}

	return nil
}
