// Package vehiclelock предоставляет эксклюзивные блокировки с гранулярностью
// "одна единица транспорта". Операция reserve/return выполняет свою
// последовательность проверка-изменение-запись целиком под замком ключа,
// поэтому на один транспорт никогда не приходится больше одного активного
// бронирования, в каком бы количестве горутин ни обрабатывались запросы.
package vehiclelock

import (
	"context"
	"sync"
)

// Locker набор именованных мьютексов, создаваемых по требованию.
// Мьютексы не удаляются: парк транспорта мал и живёт до конца процесса.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New создает новый Locker
func New() *Locker {
	return &Locker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Do выполняет fn под эксклюзивной блокировкой ключа.
// Блокировка удерживается до возврата fn, включая запись в журнал.
func (l *Locker) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lock := l.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	return fn(ctx)
}

func (l *Locker) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	return lock
}
