package model

import "github.com/shopspring/decimal"

// MenuCategory groups menu items.
type MenuCategory string

const (
	CategoryMainCourse MenuCategory = "Prato Principal"
	CategoryDessert    MenuCategory = "Sobremesa"
	CategoryDrink      MenuCategory = "Bebida"
)

// MenuItem is a catalog entry. Orders copy its fields, so edits never change
// past orders.
type MenuItem struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Category    MenuCategory    `json:"tipo" gorm:"size:50;not null;index"`
	Title       string          `json:"titulo" gorm:"size:255;not null"`
	Description string          `json:"descricao" gorm:"type:text"`
	UnitPrice   decimal.Decimal `json:"valor" gorm:"type:decimal(10,2);not null"`
}

// DefaultMenu is the fixed catalog inserted into an empty store.
func DefaultMenu() []MenuItem {
	item := func(id int, c MenuCategory, title, desc, price string) MenuItem {
		return MenuItem{ID: id, Category: c, Title: title, Description: desc, UnitPrice: decimal.RequireFromString(price)}
	}
	return []MenuItem{
		item(1, CategoryMainCourse, "Bife Acebolado Completo", "Arroz branco, feijão preto, bife acebolado e salada fresca", "25.50"),
		item(2, CategoryMainCourse, "Macarrão com Almôndegas", "Macarrão ao molho sugo com almôndegas artesanais e queijo parmesão ralado", "32.00"),
		item(3, CategoryMainCourse, "Hambúrguer Artesanal", "Hambúrguer artesanal com queijo cheddar, alface, tomate e maionese especial", "18.90"),
		item(4, CategoryMainCourse, "Frango Grelhado com Legumes", "Frango grelhado com legumes sauté e arroz integral", "28.75"),
		item(5, CategoryMainCourse, "Peixe Assado com Purê", "Peixe assado com ervas finas, purê de batatas e legumes cozidos", "35.90"),
		item(6, CategoryMainCourse, "Escondidinho de Carne Seca", "Escondidinho de carne seca com purê de mandioca e queijo gratinado", "30.00"),
		item(7, CategoryMainCourse, "Risoto de Cogumelos", "Risoto de cogumelos com parmesão e toque de vinho branco", "33.50"),
		item(8, CategoryDessert, "Pudim de Leite Condensado", "Pudim de leite condensado com calda de caramelo", "12.00"),
		item(9, CategoryDessert, "Torta de Maçã", "Torta de maçã com canela e cobertura crocante", "14.50"),
		item(10, CategoryDessert, "Mousse de Chocolate", "Mousse de chocolate meio amargo com raspas de laranja", "11.00"),
		item(11, CategoryDessert, "Brownie com Sorvete", "Brownie de chocolate com sorvete de creme", "13.75"),
		item(12, CategoryDrink, "Suco Natural de Laranja", "Suco natural de laranja espremido na hora", "8.50"),
		item(13, CategoryDrink, "Café Expresso Cremoso", "Café expresso com leite vaporizado e espuma cremosa", "7.00"),
		item(14, CategoryDrink, "Refrigerante Lata", "Refrigerante lata (diversos sabores)", "6.00"),
		item(15, CategoryDrink, "Chá Gelado de Limão", "Chá gelado de limão com hortelã", "7.50"),
	}
}
