package sfapi

// Transform rewrites a field value on its way into the payload.
type Transform func(interface{}) interface{}

// Field maps one optional named argument into an entity payload key. When Key
// is empty the argument name is used as-is. Presence is decided by map
// containment, never by truthiness: an explicit zero (already_paid = 0)
// reaches the wire, an absent argument never does.
type Field struct {
	Arg       string
	Key       string
	Transform Transform
}

// SubEntity attaches a caller-supplied nested object or list wholesale under
// its own entity key. Sub-entities are never field-mapped.
type SubEntity struct {
	Arg    string
	Entity string
}

// EntitySchema describes how one mutation operation's arguments flatten into
// a nested entity payload.
type EntitySchema struct {
	// Entity is the payload key of the main object ("Invoice", "Client", ...).
	Entity string
	// Fields are applied in declaration order.
	Fields []Field
	// SubEntities are merged after all scalar fields.
	SubEntities []SubEntity
}

// Build flattens args into the nested entity payload. The required map seeds
// the main entity object (callers default these upstream); optional fields
// follow in schema order; sub-entities are attached last. Absent arguments
// are omitted entirely, never emitted as null or a default.
func (s EntitySchema) Build(required map[string]interface{}, args Args) map[string]interface{} {
	entity := make(map[string]interface{}, len(required)+len(s.Fields))
	for key, value := range required {
		entity[key] = value
	}

	for _, field := range s.Fields {
		value, ok := args[field.Arg]
		if !ok {
			continue
		}

		if field.Transform != nil {
			value = field.Transform(value)
		}

		key := field.Key
		if key == "" {
			key = field.Arg
		}

		entity[key] = value
	}

	payload := map[string]interface{}{s.Entity: entity}

	for _, sub := range s.SubEntities {
		if value, ok := args[sub.Arg]; ok {
			payload[sub.Entity] = value
		}
	}

	return payload
}

// MergeID folds an id into a pre-shaped partial payload already keyed by
// entity name, without disturbing caller-supplied nested collections under
// other entity keys. The input map is not mutated.
func MergeID(payload map[string]interface{}, entity string, id int64) map[string]interface{} {
	merged := make(map[string]interface{}, len(payload)+1)
	for key, value := range payload {
		merged[key] = value
	}

	entityObj := make(map[string]interface{})

	if existing, ok := merged[entity].(map[string]interface{}); ok {
		for key, value := range existing {
			entityObj[key] = value
		}
	}

	entityObj["id"] = id
	merged[entity] = entityObj

	return merged
}
