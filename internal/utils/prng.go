// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandSource — источник случайности для систем. Тесты подставляют фиксированные значения.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
// У каждого игрового мира свой экземпляр, он не потокобезопасен.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range равномерно выбирает значение из [lo, hi]; для вырожденного диапазона возвращает lo.
func Range(r RandSource, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance сообщает, выпало ли значение из [0,1) меньше p.
func Chance(r RandSource, p float64) bool {
	return r.Float64() < p
}
