package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ProductEventsProducer = (*ProductEventsProducer)(nil)

// A ProductEventsProducer publishes catalog changes keyed by product id, so
// the events of one product stay ordered within a partition.
type ProductEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewProductEventsProducer(
	opts ...ProducerOpt,
) (ProductEventsProducer, error) {
	const op = "NewProductEventsProducer"

	if len(opts) != 2 {
		return ProductEventsProducer{}, fmt.Errorf("%s: %w", op, ErrTooFewOpts)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ProductEventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ProductEventsProducer{options.cl, options.encoder}, nil
}

func (p ProductEventsProducer) Close() {
	const op = "ProductEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ProductEventsProducer) ProduceProductEvent(
	ctx context.Context, evt domain.ProductEvent,
) error {
	const op = "ProductEventsProducer.ProduceProductEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s := toSchema(evt)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r := &kgo.Record{Key: []byte(s.ProductID), Value: v}
	if err := p.cl.ProduceSync(ctx, r).FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func toSchema(evt domain.ProductEvent) schema.ProductEventV1 {
	p := evt.Product
	s := schema.ProductEventV1{
		EventType:  string(evt.Type),
		ProductID:  p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Images:     p.Images,
		IsNew:      p.IsNew,
		IsFeatured: p.IsFeatured,
		TotalStock: p.TotalStock(),
		OccurredAt: evt.OccurredAt.UnixMilli(),
	}

	if s.Images == nil {
		s.Images = []string{}
	}

	vs := p.Variations.Variations()
	s.Variations = make([]schema.VariationV1, len(vs))
	for i, v := range vs {
		s.Variations[i] = schema.VariationV1(v)
	}
	return s
}
