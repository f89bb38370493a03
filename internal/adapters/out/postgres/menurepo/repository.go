package menurepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// NextID draws the next value of the menu_items id sequence.
func (r *GormMenuRepository) NextID(ctx context.Context) (menu.ItemID, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('menu_items', 'id'))").
		Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return menu.ItemID(id), nil
}

func (r *GormMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every mutable column. A map is used so a stock of zero is
// written too.
func (r *GormMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":        dto.Name,
		"price":       dto.Price,
		"stock":       dto.Stock,
		"category":    dto.Category,
		"description": dto.Description,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", dto.ID)
	}
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate takes a row lock (SELECT ... FOR UPDATE) held until the
// surrounding transaction ends.
func (r *GormMenuRepository) GetForUpdate(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormMenuRepository) get(ctx context.Context, db *gorm.DB, id menu.ItemID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}
