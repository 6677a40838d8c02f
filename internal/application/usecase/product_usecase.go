package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
	"github.com/jhoicas/commodities-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. Es la autoridad de validación:
// el repositorio acepta lo que se le entregue.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log.Component("products")}
}

// List devuelve todos los productos en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("products: listar: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Get devuelve un producto. domain.ErrNotFound si el id no existe.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("products: obtener: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(*product)
	return &out, nil
}

// Create valida y crea un producto. Unit vacía toma entity.DefaultUnit.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Quantity:    in.Quantity,
		Unit:        entity.Unit(strings.TrimSpace(in.Unit)),
		Price:       in.Price,
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
	}
	if product.Unit == "" {
		product.Unit = entity.DefaultUnit
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("products: crear: %w", err)
	}
	uc.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("producto creado")
	out := toProductResponse(*created)
	return &out, nil
}

// Update aplica una actualización parcial. Los campos presentes se validan igual que en Create.
// domain.ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewMissingFieldError("id")
	}
	patch, err := toPatch(in)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("products: actualizar %s: %w", id, err)
	}
	uc.log.Info().Str("product_id", id).Msg("producto actualizado")
	out := toProductResponse(*updated)
	return &out, nil
}

// Delete elimina un producto. domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewMissingFieldError("id")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("products: eliminar %s: %w", id, err)
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// ── Validación ───────────────────────────────────────────────────────────────

func validateProduct(p entity.Product) error {
	if p.Name == "" {
		return domain.NewMissingFieldError("name")
	}
	if p.Category == "" {
		return domain.NewMissingFieldError("category")
	}
	if err := validateAmount("quantity", p.Quantity); err != nil {
		return err
	}
	if err := validateAmount("price", p.Price); err != nil {
		return err
	}
	if !p.Unit.Valid() {
		return domain.NewValidationError("unit", fmt.Sprintf("unidad no soportada %q", p.Unit))
	}
	return nil
}

func validateAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return domain.NewValidationError(field, "no puede ser negativo")
	}
	return nil
}

func toPatch(in dto.UpdateProductRequest) (entity.ProductPatch, error) {
	var patch entity.ProductPatch
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return patch, domain.NewValidationError("name", "no puede estar vacío")
		}
		patch.Name = &name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return patch, domain.NewValidationError("category", "no puede estar vacía")
		}
		patch.Category = &category
	}
	if in.Quantity != nil {
		if err := validateAmount("quantity", *in.Quantity); err != nil {
			return patch, err
		}
		patch.Quantity = in.Quantity
	}
	if in.Price != nil {
		if err := validateAmount("price", *in.Price); err != nil {
			return patch, err
		}
		patch.Price = in.Price
	}
	if in.Unit != nil {
		unit := entity.Unit(strings.TrimSpace(*in.Unit))
		if !unit.Valid() {
			return patch, domain.NewValidationError("unit", fmt.Sprintf("unidad no soportada %q", unit))
		}
		patch.Unit = &unit
	}
	patch.Description = in.Description
	return patch, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Unit:        string(p.Unit),
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
