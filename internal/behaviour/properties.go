package behaviour

// Properties are the loosely typed key/value pairs a component is configured
// with in a scene file
type Properties map[string]interface{}

// Float32 returns the named number or def
func (p Properties) Float32(key string, def float32) float32 {
	switch v := p[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	case int64:
		return float32(v)
	}
	return def
}

// Int64 returns the named integer or def
func (p Properties) Int64(key string, def int64) int64 {
	switch v := p[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return def
}

func (p Properties) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

func (p Properties) String(key string, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Vec3 reads a three element list of numbers
func (p Properties) Vec3(key string, def [3]float32) [3]float32 {
	list, ok := p[key].([]interface{})
	if !ok || len(list) != 3 {
		return def
	}
	var out [3]float32
	for i, item := range list {
		n := Properties{"v": item}.Float32("v", def[i])
		out[i] = n
	}
	return out
}
