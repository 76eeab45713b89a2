package services

import (
	"fmt"
	"strings"

	"babylone/entity"
	"babylone/pkg/money"
	"babylone/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(r *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: r}
}

// CategoryView is the read-only grouped catalog the storefront renders.
type CategoryView struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Items []entity.MenuItem `json:"items"`
}

// Catalog groups items by category, preserving the catalog's stable order.
func (s *MenuService) Catalog() ([]CategoryView, error) {
	items, err := s.Repo.ListItems()
	if err != nil {
		return nil, err
	}

	var cats []CategoryView
	index := map[string]int{}
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(cats)
			index[it.Category] = i
			cats = append(cats, CategoryView{ID: categorySlug(it.Category), Name: it.Category})
		}
		cats[i].Items = append(cats[i].Items, it)
	}
	return cats, nil
}

func categorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func (s *MenuService) Item(id string) (*entity.MenuItem, error) {
	return s.Repo.GetItem(id)
}

type AddItemIn struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	IsPopular   bool        `json:"isPopular"`
}

// AddItem creates a fresh catalog row. Name, price and category are required;
// on a missing field nothing is committed.
func (s *MenuService) AddItem(in *AddItemIn) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price <= 0 || strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: veuillez remplir tous les champs obligatoires (nom, prix, catégorie)", ErrValidation)
	}

	id := in.ID
	if id == "" {
		id = categorySlug(in.Name)
	}
	item := &entity.MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		IsPopular:   in.IsPopular,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

type UpdateItemIn struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *money.Cents `json:"price"`
	Category    *string      `json:"category"`
	Image       *string      `json:"image"`
	IsPopular   *bool        `json:"isPopular"`
}

func (s *MenuService) UpdateItem(id string, in *UpdateItemIn) error {
	fields := map[string]any{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("%w: le nom est obligatoire", ErrValidation)
		}
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return fmt.Errorf("%w: le prix doit être positif", ErrValidation)
		}
		fields["price"] = *in.Price
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return fmt.Errorf("%w: la catégorie est obligatoire", ErrValidation)
		}
		fields["category"] = *in.Category
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.IsPopular != nil {
		fields["is_popular"] = *in.IsPopular
	}
	if len(fields) == 0 {
		return nil
	}
	return s.Repo.UpdateItem(id, fields)
}

func (s *MenuService) DeleteItem(id string) error {
	return s.Repo.DeleteItem(id)
}

func (s *MenuService) Ingredients() ([]entity.Ingredient, error) {
	return s.Repo.ListIngredients()
}

func (s *MenuService) Addons() ([]entity.Addon, error) {
	return s.Repo.ListAddons()
}
