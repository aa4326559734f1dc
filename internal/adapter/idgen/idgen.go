package idgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
)

// Generator issues business numbers of the form <prefix><timestamp><random>.
// Order numbers carry six random digits, payment numbers three. A unique
// index on each number column backstops the small collision window.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func New() *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

var _ port.NumberSource = (*Generator)(nil)

func (g *Generator) OrderNumber() domain.OrderNumber {
	return domain.OrderNumber(g.next("ORD", 6))
}

func (g *Generator) PaymentNumber() domain.PaymentNumber {
	return domain.PaymentNumber(g.next("PAY", 3))
}

func (g *Generator) next(prefix string, digits int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now().Format("20060102150405")
	limit := 1
	for i := 0; i < digits; i++ {
		limit *= 10
	}
	return fmt.Sprintf("%s%s%0*d", prefix, ts, digits, g.rnd.Intn(limit))
}
