package store

import "github.com/rosered/backend/internal/models"

// DefaultProducts seeds the catalog on first access. The data is shared
// with the storefront, image paths included.
var DefaultProducts = []models.Product{
	{ID: "1", Title: "Gourmet Truffle Oil Set", Category: "Gourmet", Price: 80, Image: "img/Picutre.png", Description: "Набор ароматного трюфельного масла для изысканных блюд."},
	{ID: "2", Title: "Artisanal Chocolate Collection", Category: "Dessert", Price: 62.5, Image: "img/Picutre.png", Description: "Ремесленные шоколадные конфеты в подарочной упаковке."},
	{ID: "3", Title: "Fine Dining Cookware Set", Category: "Tableware", Price: 279, Image: "img/Picutre.png", Description: "Премиальный набор посуды для сервировки в ресторанном стиле."},
	{ID: "4", Title: "Vintage Crystal Wine Glasses (Set of 4)", Category: "Tableware", Price: 120, Image: "img/Picutre.png", Description: "Набор винных бокалов из хрусталя в винтажном стиле."},
	{ID: "5", Title: "Signature Espresso Blend", Category: "Beverages", Price: 24, Image: "img/Picutre.png", Description: "Фирменная смесь кофейных зёрен для насыщенного эспрессо."},
	{ID: "6", Title: "Handcrafted Herbal Tea Selection", Category: "Beverages", Price: 32, Image: "img/Picutre.png", Description: "Ассорти авторских травяных чаёв в шёлковых пакетиках."},
	{ID: "7", Title: "Gourmet Sea Salt Trio", Category: "Gourmet", Price: 28.5, Image: "img/Picutre.png", Description: "Три вида морской соли: копчёная, с пряностями и с цитрусами."},
	{ID: "8", Title: "Aged Balsamic Vinegar Reserve", Category: "Gourmet", Price: 54, Image: "img/Picutre.png", Description: "Выдержанный бальзамический уксус для салатов и десертов."},
	{ID: "9", Title: "Macaron Gift Assortment", Category: "Dessert", Price: 45, Image: "img/Picutre.png", Description: "Набор французских макарон с разными вкусами."},
	{ID: "10", Title: "Caramelized Nut Praline Box", Category: "Dessert", Price: 38, Image: "img/Picutre.png", Description: "Ассорти орехов в карамели и пралине, идеальный к кофе."},
	{ID: "11", Title: "Luxury Cheese Board Set", Category: "Tableware", Price: 150, Image: "img/Picutre.png", Description: "Деревянная доска с ножами для подачи сыра и закусок."},
	{ID: "12", Title: "Spice Library Collection", Category: "Gourmet", Price: 89, Image: "img/Picutre.png", Description: "Коллекция редких специй в стеклянных баночках."},
	{ID: "13", Title: "Gold-Rimmed Dessert Plates (Set of 6)", Category: "Tableware", Price: 96, Image: "img/Picutre.png", Description: "Набор десертных тарелок с золотым кантом."},
	{ID: "14", Title: "House Signature Sauce Trio", Category: "Gourmet", Price: 52, Image: "img/Picutre.png", Description: "Три фирменных соуса ресторана: острый, пряный и сливочный."},
	{ID: "15", Title: "Dark Chocolate & Orange Marmalade Gift Set", Category: "Dessert", Price: 58, Image: "img/Picutre.png", Description: "Набор тёмного шоколада и цитрусового конфитюра в подарочной коробке."},
}
