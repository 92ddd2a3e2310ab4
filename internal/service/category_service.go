package service

import (
	"context"

	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/internal/repository"
)

type CategoryService interface {
	GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error)
}

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func CreateNewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

// The synthetic "All" entry the form selectors show is prepended
// client-side, so it is deliberately not part of this listing.
func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error) {
	data, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.CategoryResponse, 0, len(data))
	for _, category := range data {
		resp = append(resp, dto.CategoryResponse{
			Label: category.Label,
			Icon:  category.Icon,
		})
	}

	return resp, nil
}
