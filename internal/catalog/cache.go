package catalog

import (
	"sync"
	"time"

	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"
)

// menuCache evita golpear la BD en cada pantalla del kiosco; el front
// original cacheaba productos y categorías en memoria de la misma forma.
type menuCache struct {
	mu         sync.Mutex
	products   []models.Product
	categories []models.Category
	loadedAt   time.Time
}

const menuCacheTTL = 60 * time.Second

var cache menuCache

// Menu devuelve productos activos y categorías, cacheados por 60 segundos.
func Menu() ([]models.Product, []models.Category, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.products != nil && time.Since(cache.loadedAt) < menuCacheTTL {
		return cache.products, cache.categories, nil
	}

	var products []models.Product
	if err := database.DB.Where("active = ?", true).Order("name asc").Find(&products).Error; err != nil {
		return nil, nil, err
	}

	var categories []models.Category
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		return nil, nil, err
	}

	cache.products = products
	cache.categories = categories
	cache.loadedAt = time.Now()

	return products, categories, nil
}

// InvalidateMenu se llama después de cada escritura al catálogo.
func InvalidateMenu() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.products = nil
	cache.categories = nil
}
