package tokens

import (
	"time"

	"github.com/karlseguin/ccache/v3"
)

// RevocationList отозванные JWT (по jti) до истечения их срока
// Хранится в памяти процесса, после рестарта список пуст
type RevocationList struct {
	cache *ccache.Cache[struct{}]
	now   func() time.Time
}

func NewRevocationList(maxSize int64) *RevocationList {
	return &RevocationList{
		cache: ccache.New(ccache.Configure[struct{}]().MaxSize(maxSize)),
		now:   time.Now,
	}
}

// Revoke отзывает токен до момента until; уже истекшие токены не сохраняются
func (l *RevocationList) Revoke(tokenID string, until time.Time) {
	ttl := until.Sub(l.now())
	if tokenID == "" || ttl <= 0 {
		return
	}
	l.cache.Set(tokenID, struct{}{}, ttl)
}

func (l *RevocationList) IsRevoked(tokenID string) bool {
	item := l.cache.Get(tokenID)
	return item != nil && !item.Expired()
}

func (l *RevocationList) Close() {
	l.cache.Stop()
}
