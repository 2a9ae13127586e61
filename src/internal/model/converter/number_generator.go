package converter

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NumberGenerator produces externally-visible order numbers. It is injected
// so tests can substitute a deterministic sequence.
type NumberGenerator interface {
	Next() string
}

// OrderNumberPrefix and the generated format: ORDER-<unix millis>-<8 hex>.
const OrderNumberPrefix = "ORDER-"

type orderNumberGenerator struct{}

func NewNumberGenerator() NumberGenerator {
	return orderNumberGenerator{}
}

func (orderNumberGenerator) Next() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d-%s", OrderNumberPrefix, time.Now().UnixMilli(), random)
}
