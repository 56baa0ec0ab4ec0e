package domain

import (
	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// Category — закрытое перечисление категорий продукта.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// String возвращает каноническое имя члена перечисления.
func (c Category) String() string {
	name, ok := categoryNames[c]
	if !ok {
		return categoryNames[CategoryUnknown]
	}
	return name
}

// IsValid проверяет, что значение входит в перечисление.
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory разбирает каноническое имя категории.
// Сравнение точное, регистрозависимое; неизвестное имя — ошибка валидации.
func ParseCategory(name string) (Category, error) {
	c, ok := categoryByName[name]
	if !ok {
		return CategoryUnknown, e.Wrap(name, e.ErrInvalidCategory)
	}
	return c, nil
}

// Categories возвращает все члены перечисления в фиксированном порядке.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}
