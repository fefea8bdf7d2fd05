package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache двухуровневый кэш объектов: локальный ccache и опционально memcached
// Наружу всегда отдаются копии, закэшированный объект не изменяется
type Cache struct {
	local  *ccache.Cache[*domain.Property]
	remote *memcache.Client
	ttl    time.Duration
	logger Logger
}

// New создает кэш; пустой memcacheServers отключает удаленный уровень
func New(maxSize int64, ttl time.Duration, memcacheServers []string, logger Logger) *Cache {
	c := &Cache{
		local:  ccache.New(ccache.Configure[*domain.Property]().MaxSize(maxSize)),
		ttl:    ttl,
		logger: logger,
	}
	if len(memcacheServers) > 0 {
		c.remote = memcache.New(memcacheServers...)
	}
	return c
}

// Get ищет объект сначала локально, затем в memcached
func (c *Cache) Get(id int64) (*domain.Property, bool) {
	key := cacheKey(id)

	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value().Clone(), true
	}

	if c.remote == nil {
		return nil, false
	}

	item, err := c.remote.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			c.logger.Warn("PropertyCache: memcached get failed: key=%s, error=%v", key, err)
		}
		return nil, false
	}

	var cached cachedProperty
	if err := json.Unmarshal(item.Value, &cached); err != nil {
		c.logger.Warn("PropertyCache: corrupted memcached entry: key=%s, error=%v", key, err)
		return nil, false
	}

	p := cached.toDomain()
	c.local.Set(key, p, c.ttl)

	return p.Clone(), true
}

// Set кладет объект в оба уровня
func (c *Cache) Set(p *domain.Property) {
	if p == nil {
		return
	}
	key := cacheKey(p.ID)
	c.local.Set(key, p.Clone(), c.ttl)

	if c.remote == nil {
		return
	}

	data, err := json.Marshal(fromDomain(p))
	if err != nil {
		c.logger.Warn("PropertyCache: marshal failed: key=%s, error=%v", key, err)
		return
	}

	if err := c.remote.Set(&memcache.Item{Key: key, Value: data, Expiration: int32(c.ttl.Seconds())}); err != nil {
		c.logger.Warn("PropertyCache: memcached set failed: key=%s, error=%v", key, err)
	}
}

// Delete инвалидирует объект в обоих уровнях
func (c *Cache) Delete(id int64) {
	key := cacheKey(id)
	c.local.Delete(key)

	if c.remote == nil {
		return
	}

	if err := c.remote.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		c.logger.Warn("PropertyCache: memcached delete failed: key=%s, error=%v", key, err)
	}
}

// Close останавливает фоновые горутины ccache
func (c *Cache) Close() {
	c.local.Stop()
}

func cacheKey(id int64) string {
	return fmt.Sprintf("property:%d", id)
}

// cachedProperty формат хранения в memcached
type cachedProperty struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PricePerNight string    `json:"price_per_night"`
	Location      string    `json:"location"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Area          string    `json:"area"`
	IsFeatured    bool      `json:"is_featured"`
	IsAvailable   bool      `json:"is_available"`
	Image         *string   `json:"image,omitempty"`
	Gallery       []string  `json:"gallery"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func fromDomain(p *domain.Property) cachedProperty {
	return cachedProperty{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		PricePerNight: p.PricePerNight.String(),
		Location:      p.Location,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Area:          p.Area.String(),
		IsFeatured:    p.IsFeatured,
		IsAvailable:   p.IsAvailable,
		Image:         p.Image,
		Gallery:       p.Gallery,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (c cachedProperty) toDomain() *domain.Property {
	// Невалидное число дает ноль; запись в кэш пишется только из fromDomain
	price, _ := decimal.NewFromString(c.PricePerNight)
	area, _ := decimal.NewFromString(c.Area)

	return &domain.Property{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		PricePerNight: price,
		Location:      c.Location,
		Bedrooms:      c.Bedrooms,
		Bathrooms:     c.Bathrooms,
		Area:          area,
		IsFeatured:    c.IsFeatured,
		IsAvailable:   c.IsAvailable,
		Image:         c.Image,
		Gallery:       c.Gallery,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// NopCache используется при выключенном кэше
type NopCache struct{}

func (NopCache) Get(int64) (*domain.Property, bool) { return nil, false }
func (NopCache) Set(*domain.Property)               {}
func (NopCache) Delete(int64)                       {}
func (NopCache) Close()                             {}
