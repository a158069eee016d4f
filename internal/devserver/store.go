package devserver

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartbytes/canteen/app/models"
)

// account is a stored user plus its password hash.
type account struct {
	models.User
	hash []byte
}

// memory is the in-process dataset behind the dev server.
type memory struct {
	mu sync.Mutex

	users    map[int64]*account
	food     map[int64]*models.FoodItem
	orders   map[int64]*models.Order
	payments map[int64]*models.Payment

	nextUser    int64
	nextFood    int64
	nextOrder   int64
	nextPayment int64
	nextItem    int64
}

func newMemory() *memory {
	m := &memory{
		users:    make(map[int64]*account),
		food:     make(map[int64]*models.FoodItem),
		orders:   make(map[int64]*models.Order),
		payments: make(map[int64]*models.Payment),
	}
	m.seed()
	return m
}

// seed loads a demo admin, one account per role and a small menu.
func (m *memory) seed() {
	m.addUser("admin", "admin@smartbytes.local", "ROLE_ADMIN", "admin123")
	m.addUser("manager", "manager@smartbytes.local", "ROLE_CANTEEN_MANAGER", "manager123")
	m.addUser("student", "student@smartbytes.local", "ROLE_STUDENT", "student123")
	m.addUser("ngo", "ngo@smartbytes.local", "ROLE_NGO", "ngo123")

	menu := []models.FoodItem{
		{Name: "Masala Dosa", Description: "Crisp dosa with potato filling", Price: 60, AvailableToday: true},
		{Name: "Veg Thali", Description: "Rice, dal, two sabzis and roti", Price: 120, AvailableToday: true},
		{Name: "Samosa", Description: "Two pieces with chutney", Price: 25, AvailableToday: true},
		{Name: "Cold Coffee", Description: "With ice cream", Price: 80, AvailableToday: false},
	}
	for i := range menu {
		m.nextFood++
		item := menu[i]
		item.ID = m.nextFood
		m.food[item.ID] = &item
	}
}

func (m *memory) addUser(username, email, role, password string) *account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	now := time.Now()

	m.nextUser++
	acct := &account{
		User: models.User{
			ID:        m.nextUser,
			Username:  username,
			Email:     email,
			Role:      role,
			CreatedAt: &now,
			UpdatedAt: &now,
		},
		hash: hash,
	}
	m.users[acct.ID] = acct
	return acct
}

func (m *memory) findUser(username string) *account {
	for _, acct := range m.users {
		if acct.Username == username {
			return acct
		}
	}
	return nil
}
