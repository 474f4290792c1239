package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

func NewHealth(v float64) *Health {
	return &Health{Value: v, Max: v}
}

// Fraction возвращает Value/Max, ограниченное отрезком [0,1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Value / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
