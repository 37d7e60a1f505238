package gazetteer

// Entity is a tagged osm object: an address point, a street or a boundary.
// Tags are never mutated in place, every derivation works on a copy.
type Entity struct {
	ID   string            `json:"id" msgpack:"id" validate:"required"`
	Tags map[string]string `json:"tags" msgpack:"tags"`
}

func NewEntity(id string, tags map[string]string) Entity {
	return Entity{
		ID:   id,
		Tags: tags,
	}
}

// Tag returns the value of key and whether the key is present at all.
// An empty value is still a present key.
func (e Entity) Tag(key string) (string, bool) {
	v, ok := e.Tags[key]
	return v, ok
}

func copyTags(tags map[string]string) map[string]string {
	cp := make(map[string]string, len(tags)+1)
	for k, v := range tags {
		cp[k] = v
	}
	return cp
}
