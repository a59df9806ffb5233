package domain

// Category описывает категорию продукта
type Category string

const (
	CategoryFurniture Category = "furniture"
	CategoryHandbag   Category = "handbag"
	CategoryBooks     Category = "books"
	CategoryTech      Category = "tech"
	CategorySneakers  Category = "sneakers"
	CategoryTravel    Category = "travel"
)

// Categories возвращает полный список категорий каталога.
func Categories() []Category {
	return []Category{
		CategoryFurniture,
		CategoryHandbag,
		CategoryBooks,
		CategoryTech,
		CategorySneakers,
		CategoryTravel,
	}
}

// Valid проверяет, что категория входит в фиксированный список.
func (c Category) Valid() bool {
	switch c {
	case CategoryFurniture, CategoryHandbag, CategoryBooks,
		CategoryTech, CategorySneakers, CategoryTravel:
		return true
	}
	return false
}
