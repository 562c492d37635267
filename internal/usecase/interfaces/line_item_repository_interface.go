package interfaces

import (
	"context"

	"crm_pipeline/internal/domain/entities"
)

// ILineItemRepository is the contract shared by the four line-item stores
// (products, licenses, rentals, payments). Implementations are kind-scoped:
// the same repository type is instantiated once per sub-collection.
//
// Contract notes:
//   - BatchReplace has replace semantics: it deletes every item of
//     (parentID, parentType) and inserts the given list verbatim, stripping
//     client-supplied ids. An empty list clears the collection. It is the
//     only sanctioned whole-set mutation and is not atomic across the
//     delete+insert pair.
//   - CloneForParent strips ids and timestamps, re-tags with newPipelineRef
//     when non-empty, and resets IsPaid on payment clones.
//   - Update and Delete return entities.ErrNotFound when the id does not
//     resolve; they never upsert.

type ILineItemRepository interface {
	Kind() entities.ItemKind
	FindByParent(ctx context.Context, parentID string, parentType entities.ParentType) ([]entities.LineItem, error)
	Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	Update(ctx context.Context, id string, item entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, id string) error
	BatchReplace(ctx context.Context, parentID string, parentType entities.ParentType, pipelineRef string, items []entities.LineItem) ([]entities.LineItem, error)
	CloneForParent(ctx context.Context, sourceParentID string, sourceType entities.ParentType, targetParentID string, targetType entities.ParentType, newPipelineRef string) ([]entities.LineItem, error)
	DeleteByParent(ctx context.Context, parentID string, parentType entities.ParentType) (int, error)
	AggregateSaleTotal(ctx context.Context, parentIDs []string) (float64, error)
}
