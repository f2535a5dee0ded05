package stubapi

import "github.com/fernandoemejia/ecommerce-frontend/internal/domain"

func (s *Server) seed() {
	s.categories = []domain.Category{
		{ID: 1, Name: "Electronics", Active: true},
		{ID: 2, Name: "Audio", ParentID: 1, ParentName: "Electronics", Active: true},
		{ID: 3, Name: "Books", Active: true},
	}

	s.products = []domain.Product{
		{
			ID: 1, Name: "Wireless Headphones", Price: 79.99, EffectivePrice: 79.99,
			StockQuantity: 25, CategoryID: 2, CategoryName: "Audio",
			Active: true, Featured: true, InStock: true, SKU: "AUD-001",
		},
		{
			ID: 2, Name: "Bluetooth Speaker", Price: 49.99, DiscountPrice: 39.99, EffectivePrice: 39.99,
			StockQuantity: 10, CategoryID: 2, CategoryName: "Audio",
			Active: true, Featured: false, InStock: true, SKU: "AUD-002",
		},
		{
			ID: 3, Name: "USB-C Charger", Price: 19.99, EffectivePrice: 19.99,
			StockQuantity: 100, CategoryID: 1, CategoryName: "Electronics",
			Active: true, Featured: true, InStock: true, SKU: "ELE-001",
		},
		{
			ID: 4, Name: "Go Programming", Price: 34.99, EffectivePrice: 34.99,
			StockQuantity: 0, CategoryID: 3, CategoryName: "Books",
			Active: true, Featured: false, InStock: false, SKU: "BOK-001",
		},
	}

	s.nextUserID = 1
	s.addAccount(domain.User{
		Username: "demo", Email: "demo@example.com",
		FirstName: "Demo", LastName: "Customer",
		Address: "1 Demo Street", Role: domain.RoleCustomer, Enabled: true,
	}, "password123")
	s.addAccount(domain.User{
		Username: "admin", Email: "admin@example.com",
		Role: domain.RoleAdmin, Enabled: true,
	}, "admin123")
}

func (s *Server) addAccount(user domain.User, password string) {
	user.ID = s.nextUserID
	s.nextUserID++
	s.accounts[user.Email] = &account{user: user, password: password}
}
