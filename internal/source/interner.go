package source

import (
	"slices"
	"sync"
)

type StringID uint32

const NoStringID StringID = 0

// DefaultInternBound is the default length, in bytes, beyond which a
// string is no longer deduplicated: it is simply copied into the
// interner's overflow list and tracked for teardown, per the arena
// design's handling of inputs beyond the bound.
const DefaultInternBound = 256

type Interner struct {
	mu    sync.RWMutex
	byID  []string            // индекс -> строка (byID[0] = "" для NoStringID)
	index map[string]StringID // строка -> ID
	bound int                 // strings longer than this are never deduplicated
}

func NewInterner() *Interner {
	return NewInternerWithBound(DefaultInternBound)
}

// NewInternerWithBound creates an interner whose deduplication only
// applies to strings of at most bound bytes; a non-positive bound means
// unbounded (always dedup).
func NewInternerWithBound(bound int) *Interner {
	return &Interner{
		byID:  []string{""},               // NoStringID → пустая строка
		index: map[string]StringID{"": 0}, // сохраняем явное соответствие
		bound: bound,
	}
}

// Intern вставляет строку в иннер и возвращает её ID.
// Если строка уже есть, возвращает её ID.
// Строки длиннее bound не дедуплицируются: каждый вызов выделяет новый ID.
// Потокобезопасно.
func (i *Interner) Intern(s string) StringID {
	if i.bound > 0 && len(s) > i.bound {
		return i.internOverflow(s)
	}

	// Быстрая ветка: проверяем наличие под read lock
	i.mu.RLock()
	if id, ok := i.index[s]; ok {
		i.mu.RUnlock()
		return id
	}
	i.mu.RUnlock()

	// Создаём собственную копию строки, чтобы не зависеть от исходного буфера.
	cpy := string([]byte(s))

	// Переходим к записи
	i.mu.Lock()
	// Double-check: между RUnlock и Lock другая горутина могла добавить строку
	if id, ok := i.index[cpy]; ok {
		i.mu.Unlock()
		return id
	}
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	i.mu.Unlock()
	return id
}

// internOverflow allocates a fresh, untracked-for-dedup slot for a
// string past the bound. It is still reachable by Lookup and still
// released in one pass when the owning context tears down, just like
// every other entry in byID.
func (i *Interner) internOverflow(s string) StringID {
	cpy := string([]byte(s))
	i.mu.Lock()
	defer i.mu.Unlock()
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	return id
}

// InternBytes вставляет байты в иннер и возвращает ID строки.
// Если строка уже есть, возвращает её ID.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup возвращает строку по ID.
// Если ID не валиден, возвращает пустую строку и false.
// Потокобезопасно.
func (i *Interner) Lookup(id StringID) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup возвращает строку по ID.
// Если ID не валиден, паникует.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has проверяет, валиден ли ID.
// Потокобезопасно.
func (i *Interner) Has(id StringID) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return int(id) >= 0 && int(id) < len(i.byID)
}

// Len возвращает количество строк в иннер.
// NoStringID тоже учитывается. Не может быть меньше 1.
// Потокобезопасно.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}

// Snapshot возвращает копию всех строк в иннер.
// Потокобезопасно.
func (i *Interner) Snapshot() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.byID)
}
