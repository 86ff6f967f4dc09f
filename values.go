package transmog

// Named is the API shape for values addressed by name: priorities, versions,
// and the elements of user and group arrays.
type Named struct {
	Name string `json:"name"`
}

// Option is the API shape for enumerated option values.
type Option struct {
	Value string `json:"value"`
}
