package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var ErrTooFewOpts = errors.New("too few options")

// A Serde frames avro payloads with the schema registry header
// (magic byte and schema id).
type Serde struct {
	id    int
	inner *sr.Serde
}

// ID is the registry id written into every encoded payload.
func (s Serde) ID() int {
	return s.id
}

func (s Serde) Encode(v any) ([]byte, error) {
	return s.inner.Encode(v)
}

func (s Serde) Decode(data []byte, v any) error {
	return s.inner.Decode(data, v)
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject    string
	identifier SchemaIdentifier
}

func (o serdeOpts) complete() bool {
	return o.subject != "" && o.identifier != nil
}

func SubjectOpt(subject string) Opt {
	return func(o *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		o.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(o *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		o.identifier = si
		return nil
	}
}

// NewSerdeProductEventV1 registers the product event schema under the
// subject and returns a serde bound to the resulting id. Both options are
// required.
func NewSerdeProductEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeProductEventV1"

	s, err := newSerde(ctx, ProductEventSchemaTextV1, ProductEventV1{}, opts)
	if err != nil {
		return Serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func newSerde(
	ctx context.Context, schemaText string, example any, opts []Opt,
) (Serde, error) {
	var o serdeOpts
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return Serde{}, err
		}
	}
	if !o.complete() {
		return Serde{}, ErrTooFewOpts
	}

	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return Serde{}, err
	}

	id, err := o.identifier.DetermineID(ctx, o.subject, schemaText)
	if err != nil {
		return Serde{}, err
	}

	inner := new(sr.Serde)
	inner.Register(
		id,
		example,
		sr.EncodeFn(AvroEncodeFn(avroSchema)),
		sr.DecodeFn(AvroDecodeFn(avroSchema)),
	)
	return Serde{id: id, inner: inner}, nil
}
