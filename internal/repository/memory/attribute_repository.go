package memory

import (
	"context"
	"sort"
	"time"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AttributeRepository struct {
	store *Store
}

func (r *AttributeRepository) matches(a *entity.Attribute, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.ByAttributeKey:
			if a.Key != s.Key {
				return false
			}
		}
	}
	return true
}

func (r *AttributeRepository) Create(ctx context.Context, attribute *entity.Attribute) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.attributes {
		if existing.Key == attribute.Key {
			return apperrors.DuplicateWrite("attribute %q already exists", attribute.Key)
		}
	}
	if attribute.Id == uuid.Nil {
		attribute.Id = uuid.New()
	}
	if attribute.CreatedAt.IsZero() {
		attribute.CreatedAt = time.Now()
	}
	copied := *attribute
	r.store.attributes = append(r.store.attributes, &copied)
	return nil
}

func (r *AttributeRepository) UpdateLevels(ctx context.Context, key string, levels []entity.AttributeLevel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.attributes {
		if existing.Key == key {
			existing.Levels = append([]entity.AttributeLevel(nil), levels...)
			return nil
		}
	}
	return apperrors.NotFound("attribute %q not found", key)
}

func (r *AttributeRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Attribute, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.attributes {
		if r.matches(a, specs) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *AttributeRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attribute, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.Attribute
	for _, a := range r.store.attributes {
		if r.matches(a, specs) {
			copied := *a
			result = append(result, &copied)
		}
	}
	opts := parseOptions(specs)
	if opts.orderField == "position" {
		sort.SliceStable(result, func(i, j int) bool {
			if opts.orderDesc {
				return result[i].Position > result[j].Position
			}
			return result[i].Position < result[j].Position
		})
	}
	return paginate(result, opts), nil
}

func (r *AttributeRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, a := range r.store.attributes {
		if r.matches(a, specs) {
			count++
		}
	}
	return count, nil
}
