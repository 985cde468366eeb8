package schema

const ProductEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product_event",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "images", "type": {"type": "array", "items": "string"}},
		{"name": "is_new", "type": "boolean"},
		{"name": "is_featured", "type": "boolean"},
		{
			"name": "variations",
			"type": {
				"type": "array",
				"items": {
					"type": "record",
					"name": "variation",
					"fields": [
						{"name": "size", "type": "string"},
						{"name": "color", "type": "string"},
						{"name": "stock", "type": "int"}
					]
				}
			}
		},
		{"name": "total_stock", "type": "int"},
		{"name": "occurred_at", "type": "long"}
	]
}`

type (
	// ProductEventV1 is the catalog change record. OccurredAt holds unix
	// milliseconds.
	ProductEventV1 struct {
		EventType  string        `avro:"event_type"`
		ProductID  string        `avro:"product_id"`
		Name       string        `avro:"name"`
		Category   string        `avro:"category"`
		Price      float64       `avro:"price"`
		Images     []string      `avro:"images"`
		IsNew      bool          `avro:"is_new"`
		IsFeatured bool          `avro:"is_featured"`
		Variations []VariationV1 `avro:"variations"`
		TotalStock int           `avro:"total_stock"`
		OccurredAt int64         `avro:"occurred_at"`
	}

	VariationV1 struct {
		Size  string `avro:"size"`
		Color string `avro:"color"`
		Stock int    `avro:"stock"`
	}
)
