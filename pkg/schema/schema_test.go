package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

func TestProductEventV1(t *testing.T) {
	var s avro.Schema
	require.NotPanics(t, func() {
		s = ProductEventV1Avro()
	})

	v1 := ProductEventV1{
		EventType:  "deleted",
		ProductID:  "testProductID",
		Name:       "testName",
		Images:     []string{},
		Variations: []VariationV1{},
		OccurredAt: 1,
	}

	data, err := AvroEncodeFn(s)(v1)
	require.NoError(t, err)

	var v2 ProductEventV1
	require.NoError(t, AvroDecodeFn(s)(data, &v2))
	assert.Equal(t, v1.EventType, v2.EventType)
	assert.Equal(t, v1.ProductID, v2.ProductID)
	assert.Empty(t, v2.Variations)
}

type mockRegistry struct {
	mock.Mock
}

func (m *mockRegistry) CreateSchema(
	ctx context.Context, subject string, s sr.Schema,
) (sr.SubjectSchema, error) {
	args := m.Called(ctx, subject, s)
	return args.Get(0).(sr.SubjectSchema), args.Error(1)
}

func TestRegistryIdentifier(t *testing.T) {
	t.Run("NoURLs", func(t *testing.T) {
		_, err := NewRegistryIdentifier(nil)
		assert.Error(t, err)
	})

	t.Run("Registered", func(t *testing.T) {
		reg := new(mockRegistry)
		want := sr.Schema{Schema: ProductEventSchemaTextV1, Type: sr.TypeAvro}
		reg.On("CreateSchema", t.Context(), "testSubject", want).
			Return(sr.SubjectSchema{ID: 7}, nil)

		id, err := RegistryIdentifier{reg}.DetermineID(
			t.Context(), "testSubject", ProductEventSchemaTextV1,
		)
		require.NoError(t, err)
		assert.Equal(t, 7, id)
	})

	t.Run("RegistryError", func(t *testing.T) {
		reg := new(mockRegistry)
		errRegistry := errors.New("registry is down")
		reg.On("CreateSchema", mock.Anything, mock.Anything, mock.Anything).
			Return(sr.SubjectSchema{}, errRegistry)

		_, err := RegistryIdentifier{reg}.DetermineID(t.Context(), "s", "text")
		assert.ErrorIs(t, err, errRegistry)
	})
}
